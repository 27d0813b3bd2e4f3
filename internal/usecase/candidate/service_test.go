package candidate

import (
	"context"
	"errors"
	"testing"

	"github.com/kailas-cloud/cvdex/internal/domain"
	domcand "github.com/kailas-cloud/cvdex/internal/domain/candidate"
)

type mockRepo struct {
	stored     *domcand.Record
	getRecord  domcand.Record
	getErr     error
	deleteErr  error
	listLimit  int
	listResult []domcand.Record
	listTotal  int
}

func (m *mockRepo) Upsert(_ context.Context, rec *domcand.Record) error {
	m.stored = rec
	return nil
}

func (m *mockRepo) Get(_ context.Context, _ string) (domcand.Record, error) {
	return m.getRecord, m.getErr
}

func (m *mockRepo) Delete(_ context.Context, _ string) error { return m.deleteErr }

func (m *mockRepo) List(_ context.Context, _, limit int) ([]domcand.Record, int, error) {
	m.listLimit = limit
	return m.listResult, m.listTotal, nil
}

type mockEmbedder struct {
	err error
}

func (m *mockEmbedder) Embed(_ context.Context, _ string) (domain.EmbeddingResult, error) {
	if m.err != nil {
		return domain.EmbeddingResult{}, m.err
	}
	return domain.EmbeddingResult{Embedding: []float32{0.1, 0.2}}, nil
}

func TestStoreNormalizesMetadata(t *testing.T) {
	repo := &mockRepo{}
	svc := New(repo, &mockEmbedder{})

	id, err := svc.Store(context.Background(),
		"senior engineer cv text", "cv.pdf", "files/cv.pdf",
		RawMetadata{
			FullName: " Ayesha Khan ",
			Skills:   "Golang, ReactJS | Docker",
			Location: "Lahore, Pakistan",
			Education: map[string]any{
				"degree":     "BS",
				"university": "FAST",
			},
		})
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	if id == "" {
		t.Fatal("empty id assigned")
	}
	if repo.stored == nil {
		t.Fatal("record not persisted")
	}

	md := repo.stored.Metadata()
	if md.FullName != "Ayesha Khan" {
		t.Errorf("fullName = %q", md.FullName)
	}
	if len(md.Skills) != 3 {
		t.Errorf("raw skills = %v", md.Skills)
	}
	want := map[string]bool{"go": true, "react": true, "docker": true}
	for _, s := range md.SkillsNormalized {
		if !want[s] {
			t.Errorf("unexpected normalized skill %q in %v", s, md.SkillsNormalized)
		}
	}
	if md.LocationNormalized != "lahore, pakistan" {
		t.Errorf("locationNormalized = %q", md.LocationNormalized)
	}
	if md.Education == "" {
		t.Error("education not formatted")
	}
}

func TestStoreRejectsEmptyText(t *testing.T) {
	svc := New(&mockRepo{}, &mockEmbedder{})
	if _, err := svc.Store(context.Background(), "  ", "cv.pdf", "", RawMetadata{}); !errors.Is(err, domain.ErrInvalidRequest) {
		t.Fatalf("want ErrInvalidRequest, got %v", err)
	}
}

func TestStoreEmbedFailure(t *testing.T) {
	svc := New(&mockRepo{}, &mockEmbedder{err: errors.New("provider down")})
	if _, err := svc.Store(context.Background(), "cv text", "cv.pdf", "", RawMetadata{}); err == nil {
		t.Fatal("expected error when embedding fails")
	}
}

func TestListCapsPageSize(t *testing.T) {
	repo := &mockRepo{}
	svc := New(repo, &mockEmbedder{})

	if _, _, err := svc.List(context.Background(), 0, 500); err != nil {
		t.Fatalf("List: %v", err)
	}
	if repo.listLimit != 100 {
		t.Errorf("limit = %d, want capped at 100", repo.listLimit)
	}

	if _, _, err := svc.List(context.Background(), 0, 0); err != nil {
		t.Fatalf("List: %v", err)
	}
	if repo.listLimit != 20 {
		t.Errorf("limit = %d, want default 20", repo.listLimit)
	}
}

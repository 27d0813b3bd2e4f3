package candidate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kailas-cloud/cvdex/internal/domain"
	domcand "github.com/kailas-cloud/cvdex/internal/domain/candidate"
	"github.com/kailas-cloud/cvdex/internal/normalize"
)

// RawMetadata is the unnormalized candidate metadata as produced by a CV
// parser. Skills and Education are deliberately untyped: upstream parsers
// deliver them as a string, a list, or an object depending on the CV.
type RawMetadata struct {
	FullName        string
	Email           string
	Phone           string
	Skills          any
	YearsExperience *int
	Education       any
	Location        string
}

// Service handles candidate ingestion and CRUD with automatic vectorization.
type Service struct {
	repo            Repository
	embed           Embedder
	defaultPageSize int
	maxPageSize     int
}

// New creates a candidate service.
func New(repo Repository, embed Embedder) *Service {
	return &Service{
		repo:            repo,
		embed:           embed,
		defaultPageSize: 20,
		maxPageSize:     100,
	}
}

// Store normalizes, vectorizes, and persists a candidate CV. The same
// normalization functions run here as at query time; matching silently
// breaks if the two sides ever diverge. Returns the assigned candidate id.
func (s *Service) Store(ctx context.Context, fullText, filename, storedFile string, raw RawMetadata) (string, error) {
	if strings.TrimSpace(fullText) == "" {
		return "", fmt.Errorf("%w: empty CV text", domain.ErrInvalidRequest)
	}

	embResult, err := s.embed.Embed(ctx, domain.TruncateForEmbedding(fullText))
	if err != nil {
		return "", fmt.Errorf("vectorize cv: %w", err)
	}

	md := normalizeMetadata(raw)

	id := uuid.NewString()
	rec, err := domcand.New(id, fullText, embResult.Embedding, filename, storedFile, time.Now().UTC(), md)
	if err != nil {
		return "", fmt.Errorf("build record: %w", err)
	}

	if err := s.repo.Upsert(ctx, &rec); err != nil {
		return "", fmt.Errorf("store candidate: %w", err)
	}
	return id, nil
}

// Get returns a candidate by ID.
func (s *Service) Get(ctx context.Context, id string) (domcand.Record, error) {
	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		return domcand.Record{}, fmt.Errorf("get candidate: %w", err)
	}
	return rec, nil
}

// Delete removes a candidate.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete candidate: %w", err)
	}
	return nil
}

// List returns candidates with offset pagination plus the total count.
func (s *Service) List(ctx context.Context, offset, limit int) ([]domcand.Record, int, error) {
	if limit <= 0 {
		limit = s.defaultPageSize
	}
	if limit > s.maxPageSize {
		limit = s.maxPageSize
	}
	records, total, err := s.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list candidates: %w", err)
	}
	return records, total, nil
}

// normalizeMetadata converts raw parser output into the canonical stored
// shape: raw skill strings kept for display, normalized ids for filtering,
// location canonicalized through the gazetteer.
func normalizeMetadata(raw RawMetadata) domcand.Metadata {
	md := domcand.Metadata{
		FullName:        strings.TrimSpace(raw.FullName),
		Email:           strings.TrimSpace(raw.Email),
		Phone:           strings.TrimSpace(raw.Phone),
		YearsExperience: raw.YearsExperience,
		Location:        strings.TrimSpace(raw.Location),
	}

	md.Skills = normalize.StringList(raw.Skills)
	md.SkillsNormalized = normalize.SkillList(raw.Skills)

	if edu := normalize.Education(raw.Education); edu != "" {
		md.Education = edu
	}
	if md.Location != "" {
		md.LocationNormalized = normalize.Location(md.Location)
	}

	return md
}

package candidate

import (
	"context"

	"github.com/kailas-cloud/cvdex/internal/domain"
	domcand "github.com/kailas-cloud/cvdex/internal/domain/candidate"
)

// Repository defines the storage contract for candidate records.
type Repository interface {
	Upsert(ctx context.Context, rec *domcand.Record) error
	Get(ctx context.Context, id string) (domcand.Record, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, offset, limit int) ([]domcand.Record, int, error)
}

// Embedder vectorizes text into embeddings.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}

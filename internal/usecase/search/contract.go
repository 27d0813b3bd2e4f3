package search

import (
	"context"

	"github.com/kailas-cloud/cvdex/internal/domain"
	domcand "github.com/kailas-cloud/cvdex/internal/domain/candidate"
	"github.com/kailas-cloud/cvdex/internal/domain/search/filter"
)

// Index defines the vector-index contract for candidate retrieval.
type Index interface {
	Query(ctx context.Context, vector []float32, filters filter.Expression, k int) ([]domcand.Hit, error)
}

// Embedder vectorizes text into embeddings.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}

package domain

import "context"

// MaxEmbedChars caps the text sent to the embedding provider.
// Longer inputs are truncated before the call; CV relevance signal
// concentrates in the opening sections anyway.
const MaxEmbedChars = 6000

// Embedder is the shared text vectorization contract between layers.
// Implementations must return a typed error rather than a zero vector on failure.
type Embedder interface {
	Embed(ctx context.Context, text string) (EmbeddingResult, error)
}

// HealthChecker verifies embedding provider availability.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// EmbeddingResult carries the embedding vector and token usage through the decorator chain.
type EmbeddingResult struct {
	Embedding    []float32
	PromptTokens int
	TotalTokens  int
}

// TruncateForEmbedding clips text to MaxEmbedChars.
func TruncateForEmbedding(text string) string {
	if len(text) <= MaxEmbedChars {
		return text
	}
	return text[:MaxEmbedChars]
}

package domain

import "errors"

var (
	// ErrEmptyQuery signals a blank search query, rejected before any upstream call.
	ErrEmptyQuery = errors.New("empty query")
	// ErrInvalidRequest signals malformed search or ingest parameters.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrCandidateNotFound signals a missing candidate record.
	ErrCandidateNotFound = errors.New("candidate not found")
	// ErrMalformedCandidate signals a stored record whose metadata cannot be interpreted.
	ErrMalformedCandidate = errors.New("malformed candidate record")
	// ErrVectorDimMismatch signals a vector dimension mismatch.
	ErrVectorDimMismatch = errors.New("vector dimension mismatch")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
	// ErrUpstreamUnavailable signals that the vector index failed or timed out.
	// Searches fail whole on upstream errors; partial results are never returned.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

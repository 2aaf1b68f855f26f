package embedding

import "context"

// Dimensions is the fixed embedding width shared by every supported provider
// (Gemini text-embedding-004 and nomic-embed-text both emit 768 dimensions).
// The knowledge store column is declared with the same width, so a provider
// producing anything else fails at insert rather than corrupting searches.
const Dimensions = 768

// EmbeddingProvider turns text into a fixed-length dense vector.
// Implementations must be deterministic for identical input and model version.
type EmbeddingProvider interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

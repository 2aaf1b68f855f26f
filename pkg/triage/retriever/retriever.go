// Package retriever orchestrates query embedding, nearest-neighbor search and
// similarity thresholding into a formatted knowledge base context block.
package retriever

import (
	"context"
	"fmt"
	"log"
	"strings"

	"ai-tickettriage-be/pkg/embedding"
	"ai-tickettriage-be/pkg/triage"
	"ai-tickettriage-be/pkg/triage/vector"
)

// SimilaritySearcher is the store boundary the retriever needs: up to limit
// entries ordered by ascending cosine distance. A limit beyond the catalog
// size returns the whole catalog.
type SimilaritySearcher interface {
	SearchNearest(ctx context.Context, embedding []float32, limit int) ([]*triage.ScoredEntry, error)
}

// Retriever degrades gracefully: any embedding or store failure yields "no
// context" rather than an error, so retrieval never blocks the pipeline.
type Retriever struct {
	embedder embedding.EmbeddingProvider
	searcher SimilaritySearcher
	cache    ContextCache // nil disables caching
	logger   *log.Logger
}

func New(embedder embedding.EmbeddingProvider, searcher SimilaritySearcher, cache ContextCache, logger *log.Logger) *Retriever {
	if logger == nil {
		logger = log.Default()
	}
	return &Retriever{
		embedder: embedder,
		searcher: searcher,
		cache:    cache,
		logger:   logger,
	}
}

// RelevantContext returns the formatted context block for a query, or
// ("", false) when nothing clears the threshold or retrieval degraded.
//
// The store orders candidates by raw distance; each candidate is re-scored
// here against the threshold independently, since ordering and thresholding
// are separate steps.
func (r *Retriever) RelevantContext(ctx context.Context, query string, maxResults int, threshold float64) (string, bool) {
	if strings.TrimSpace(query) == "" {
		return "", false
	}

	key := CacheKey(query, maxResults, threshold)
	if r.cache != nil {
		if cached, found := r.cache.Get(ctx, key); found {
			return cached, true
		}
	}

	queryEmbedding, err := r.embedder.Embed(ctx, query)
	if err != nil {
		r.logger.Printf("[WARN] context retrieval skipped, embedding failed: %v", err)
		return "", false
	}

	candidates, err := r.searcher.SearchNearest(ctx, queryEmbedding, maxResults)
	if err != nil {
		r.logger.Printf("[WARN] context retrieval skipped, knowledge search failed: %v", err)
		return "", false
	}

	matches := make([]*triage.ScoredEntry, 0, len(candidates))
	for _, candidate := range candidates {
		if vector.Similarity(candidate.Distance) >= threshold {
			matches = append(matches, candidate)
		}
	}

	if len(matches) == 0 {
		return "", false
	}

	rendered := formatContext(matches)
	if r.cache != nil {
		r.cache.Set(ctx, key, rendered)
	}

	return rendered, true
}

// formatContext renders matches, most similar first, into a single block the
// prompt builder injects verbatim.
func formatContext(matches []*triage.ScoredEntry) string {
	var b strings.Builder
	b.WriteString("Based on our knowledge base:\n\n")
	for _, match := range matches {
		b.WriteString(fmt.Sprintf("Customer complaint: %s\n", match.Complaint))
		b.WriteString(fmt.Sprintf("Reply: %s\n\n", match.Reply))
	}
	return strings.TrimSpace(b.String())
}

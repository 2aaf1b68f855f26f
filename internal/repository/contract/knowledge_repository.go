package contract

import (
	"context"

	"ai-tickettriage-be/internal/entity"
	"ai-tickettriage-be/internal/repository/specification"

	"github.com/google/uuid"
)

// NearestKnowledgeEntry wraps a knowledge entry with its raw cosine distance
// to the query vector. Distance is what pgvector's <=> operator returns;
// similarity scoring against a threshold is the caller's concern.
type NearestKnowledgeEntry struct {
	Entry    *entity.KnowledgeEntry
	Distance float64
}

type KnowledgeRepository interface {
	Create(ctx context.Context, entry *entity.KnowledgeEntry) error
	CreateBulk(ctx context.Context, entries []*entity.KnowledgeEntry) error
	Update(ctx context.Context, entry *entity.KnowledgeEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KnowledgeEntry, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeEntry, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// SearchNearest returns the limit closest entries for the sector, ordered
	// by ascending cosine distance.
	SearchNearest(ctx context.Context, embedding []float32, limit int, sector string) ([]*NearestKnowledgeEntry, error)
}

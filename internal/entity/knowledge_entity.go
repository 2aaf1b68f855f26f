package entity

import (
	"time"

	"github.com/google/uuid"
)

// KnowledgeEntry is one resolved complaint/reply pair from the support
// knowledge base, together with the embedding of its complaint text.
type KnowledgeEntry struct {
	Id        uuid.UUID
	Complaint string
	Reply     string
	Category  string
	Tags      []string
	Sector    string
	Embedding []float32
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}

package dto

import (
	"time"

	"github.com/google/uuid"
)

type AddKnowledgeEntryRequest struct {
	Complaint string   `json:"complaint" validate:"required"`
	Reply     string   `json:"reply" validate:"required"`
	Category  string   `json:"category,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	Sector    string   `json:"sector,omitempty"`
}

type AddKnowledgeEntryResponse struct {
	Id uuid.UUID `json:"id"`
	// Created is false when an entry with the same complaint already exists.
	Created bool `json:"created"`
}

// IngestKnowledgeEntryMessage is the payload published for asynchronous
// knowledge base ingestion.
type IngestKnowledgeEntryMessage struct {
	Complaint string   `json:"complaint"`
	Reply     string   `json:"reply"`
	Category  string   `json:"category,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	Sector    string   `json:"sector,omitempty"`
}

type IngestKnowledgeEntriesRequest struct {
	Entries []AddKnowledgeEntryRequest `json:"entries" validate:"required,min=1,dive"`
}

type IngestKnowledgeEntriesResponse struct {
	Queued int `json:"queued"`
}

type KnowledgeEntryResponse struct {
	Id        uuid.UUID  `json:"id"`
	Complaint string     `json:"complaint"`
	Reply     string     `json:"reply"`
	Category  string     `json:"category,omitempty"`
	Tags      []string   `json:"tags,omitempty"`
	Sector    string     `json:"sector"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type ListKnowledgeEntriesRequest struct {
	Sector   string `query:"sector"`
	Category string `query:"category"`
	Limit    int    `query:"limit"`
	Offset   int    `query:"offset"`
}

type ListKnowledgeEntriesResponse struct {
	Entries []KnowledgeEntryResponse `json:"entries"`
	Total   int64                    `json:"total"`
}

package mapper

import (
	"encoding/json"
	"time"

	"ai-tickettriage-be/internal/entity"
	"ai-tickettriage-be/internal/model"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type KnowledgeMapper struct{}

func NewKnowledgeMapper() *KnowledgeMapper {
	return &KnowledgeMapper{}
}

func (m *KnowledgeMapper) ToEntity(e *model.KnowledgeEntry) *entity.KnowledgeEntry {
	if e == nil {
		return nil
	}

	var deletedAt *time.Time
	if e.DeletedAt.Valid {
		t := e.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !e.UpdatedAt.IsZero() {
		t := e.UpdatedAt
		updatedAt = &t
	}

	var tags []string
	if len(e.Tags) > 0 {
		// malformed tags are dropped rather than failing the whole row
		_ = json.Unmarshal(e.Tags, &tags)
	}

	return &entity.KnowledgeEntry{
		Id:        e.Id,
		Complaint: e.Complaint,
		Reply:     e.Reply,
		Category:  e.Category,
		Tags:      tags,
		Sector:    e.Sector,
		Embedding: e.Embedding.Slice(),
		CreatedAt: e.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
		IsDeleted: e.DeletedAt.Valid,
	}
}

func (m *KnowledgeMapper) ToModel(e *entity.KnowledgeEntry) *model.KnowledgeEntry {
	if e == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if e.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *e.DeletedAt, Valid: true}
	} else if e.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	var tags datatypes.JSON
	if len(e.Tags) > 0 {
		raw, err := json.Marshal(e.Tags)
		if err == nil {
			tags = datatypes.JSON(raw)
		}
	}

	return &model.KnowledgeEntry{
		Id:        e.Id,
		Complaint: e.Complaint,
		Reply:     e.Reply,
		Category:  e.Category,
		Tags:      tags,
		Sector:    e.Sector,
		Embedding: pgvector.NewVector(e.Embedding),
		CreatedAt: e.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
	}
}

func (m *KnowledgeMapper) ToEntities(entries []*model.KnowledgeEntry) []*entity.KnowledgeEntry {
	entities := make([]*entity.KnowledgeEntry, len(entries))
	for i, e := range entries {
		entities[i] = m.ToEntity(e)
	}
	return entities
}

func (m *KnowledgeMapper) ToModels(entries []*entity.KnowledgeEntry) []*model.KnowledgeEntry {
	models := make([]*model.KnowledgeEntry, len(entries))
	for i, e := range entries {
		models[i] = m.ToModel(e)
	}
	return models
}

package mapper

import (
	"testing"
	"time"

	"ai-tickettriage-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnowledgeMapperRoundTrip(t *testing.T) {
	m := NewKnowledgeMapper()

	src := &entity.KnowledgeEntry{
		Id:        uuid.New(),
		Complaint: "I was charged twice for one order",
		Reply:     "We have refunded the duplicate charge.",
		Category:  "billing",
		Tags:      []string{"refund", "billing"},
		Sector:    "general",
		Embedding: []float32{0.1, -0.2, 0.3},
		CreatedAt: time.Now().Truncate(time.Second),
	}

	model := m.ToModel(src)
	require.NotNil(t, model)
	assert.Equal(t, src.Complaint, model.Complaint)
	assert.Equal(t, src.Sector, model.Sector)
	assert.JSONEq(t, `["refund","billing"]`, string(model.Tags))

	back := m.ToEntity(model)
	require.NotNil(t, back)
	assert.Equal(t, src.Id, back.Id)
	assert.Equal(t, src.Reply, back.Reply)
	assert.Equal(t, src.Tags, back.Tags)
	assert.Equal(t, src.Embedding, back.Embedding)
	assert.False(t, back.IsDeleted)
}

func TestKnowledgeMapperNilSafe(t *testing.T) {
	m := NewKnowledgeMapper()

	assert.Nil(t, m.ToEntity(nil))
	assert.Nil(t, m.ToModel(nil))
}

func TestKnowledgeMapperNoTags(t *testing.T) {
	m := NewKnowledgeMapper()

	model := m.ToModel(&entity.KnowledgeEntry{
		Id:        uuid.New(),
		Complaint: "App keeps crashing",
		Reply:     "Please update to the latest version.",
	})
	assert.Empty(t, model.Tags)

	back := m.ToEntity(model)
	assert.Nil(t, back.Tags)
}

func TestKnowledgeMapperSoftDelete(t *testing.T) {
	m := NewKnowledgeMapper()

	deletedAt := time.Now()
	model := m.ToModel(&entity.KnowledgeEntry{
		Id:        uuid.New(),
		Complaint: "Old entry",
		Reply:     "Old reply",
		DeletedAt: &deletedAt,
	})
	require.True(t, model.DeletedAt.Valid)

	back := m.ToEntity(model)
	assert.True(t, back.IsDeleted)
	require.NotNil(t, back.DeletedAt)
	assert.WithinDuration(t, deletedAt, *back.DeletedAt, time.Second)
}

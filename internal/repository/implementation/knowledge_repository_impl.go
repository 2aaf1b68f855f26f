package implementation

import (
	"context"
	"errors"

	"ai-tickettriage-be/internal/entity"
	"ai-tickettriage-be/internal/mapper"
	"ai-tickettriage-be/internal/model"
	"ai-tickettriage-be/internal/repository/contract"
	"ai-tickettriage-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type KnowledgeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.KnowledgeMapper
}

func NewKnowledgeRepository(db *gorm.DB) contract.KnowledgeRepository {
	return &KnowledgeRepositoryImpl{
		db:     db,
		mapper: mapper.NewKnowledgeMapper(),
	}
}

func (r *KnowledgeRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *KnowledgeRepositoryImpl) Create(ctx context.Context, entry *entity.KnowledgeEntry) error {
	m := r.mapper.ToModel(entry)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*entry = *r.mapper.ToEntity(m)
	return nil
}

func (r *KnowledgeRepositoryImpl) CreateBulk(ctx context.Context, entries []*entity.KnowledgeEntry) error {
	if len(entries) == 0 {
		return nil
	}
	models := make([]*model.KnowledgeEntry, len(entries))
	for i, e := range entries {
		models[i] = r.mapper.ToModel(e)
	}

	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}

	for i, m := range models {
		*entries[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *KnowledgeRepositoryImpl) Update(ctx context.Context, entry *entity.KnowledgeEntry) error {
	m := r.mapper.ToModel(entry)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*entry = *r.mapper.ToEntity(m)
	return nil
}

func (r *KnowledgeRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.KnowledgeEntry{}, id).Error
}

func (r *KnowledgeRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KnowledgeEntry, error) {
	var m model.KnowledgeEntry
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *KnowledgeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeEntry, error) {
	var models []*model.KnowledgeEntry
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *KnowledgeRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.KnowledgeEntry{}).Count(&count).Error
	return count, err
}

// SearchNearest orders by pgvector cosine distance (embedding <=> query) and
// returns the raw distance alongside each row.
func (r *KnowledgeRepositoryImpl) SearchNearest(ctx context.Context, embedding []float32, limit int, sector string) ([]*contract.NearestKnowledgeEntry, error) {
	if limit <= 0 {
		limit = 5
	}

	type result struct {
		model.KnowledgeEntry
		Distance float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	query := r.db.WithContext(ctx).
		Table("knowledge_entries").
		Select("knowledge_entries.*, embedding <=> ? as distance", queryVector).
		Where("knowledge_entries.deleted_at IS NULL")
	if sector != "" {
		query = query.Where("sector = ?", sector)
	}

	err := query.
		Order("distance ASC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	nearest := make([]*contract.NearestKnowledgeEntry, len(results))
	for i, res := range results {
		nearest[i] = &contract.NearestKnowledgeEntry{
			Entry:    r.mapper.ToEntity(&res.KnowledgeEntry),
			Distance: res.Distance,
		}
	}
	return nearest, nil
}

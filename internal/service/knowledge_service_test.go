package service

import (
	"context"
	"errors"
	"testing"

	"ai-tickettriage-be/internal/dto"
	"ai-tickettriage-be/internal/entity"
	"ai-tickettriage-be/internal/repository/contract"
	"ai-tickettriage-be/internal/repository/specification"
	"ai-tickettriage-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeKnowledgeRepo struct {
	entries []*entity.KnowledgeEntry
	nearest []*contract.NearestKnowledgeEntry
	failure error
}

func (r *fakeKnowledgeRepo) Create(_ context.Context, entry *entity.KnowledgeEntry) error {
	if r.failure != nil {
		return r.failure
	}
	r.entries = append(r.entries, entry)
	return nil
}

func (r *fakeKnowledgeRepo) CreateBulk(ctx context.Context, entries []*entity.KnowledgeEntry) error {
	for _, e := range entries {
		if err := r.Create(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeKnowledgeRepo) Update(_ context.Context, _ *entity.KnowledgeEntry) error {
	return r.failure
}

func (r *fakeKnowledgeRepo) Delete(_ context.Context, _ uuid.UUID) error {
	return r.failure
}

func (r *fakeKnowledgeRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.KnowledgeEntry, error) {
	if r.failure != nil {
		return nil, r.failure
	}
	for _, spec := range specs {
		if byComplaint, ok := spec.(specification.ByComplaint); ok {
			for _, e := range r.entries {
				if e.Complaint == byComplaint.Complaint {
					return e, nil
				}
			}
		}
	}
	return nil, nil
}

func (r *fakeKnowledgeRepo) FindAll(_ context.Context, _ ...specification.Specification) ([]*entity.KnowledgeEntry, error) {
	return r.entries, r.failure
}

func (r *fakeKnowledgeRepo) Count(_ context.Context, _ ...specification.Specification) (int64, error) {
	return int64(len(r.entries)), r.failure
}

func (r *fakeKnowledgeRepo) SearchNearest(_ context.Context, _ []float32, _ int, _ string) ([]*contract.NearestKnowledgeEntry, error) {
	return r.nearest, r.failure
}

type fakeUnitOfWork struct {
	repo *fakeKnowledgeRepo
}

func (u *fakeUnitOfWork) Begin(_ context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                 { return nil }
func (u *fakeUnitOfWork) Rollback() error               { return nil }
func (u *fakeUnitOfWork) KnowledgeRepository() contract.KnowledgeRepository {
	return u.repo
}

type fakeUowFactory struct {
	repo *fakeKnowledgeRepo
}

func (f *fakeUowFactory) NewUnitOfWork(_ context.Context) unitofwork.UnitOfWork {
	return &fakeUnitOfWork{repo: f.repo}
}

type stubEmbedder struct {
	vec []float32
	err error
}

func (s *stubEmbedder) Embed(_ context.Context, _ string) ([]float32, error) {
	return s.vec, s.err
}

type capturePublisher struct {
	payloads [][]byte
	err      error
}

func (p *capturePublisher) Publish(_ context.Context, payload []byte) error {
	if p.err != nil {
		return p.err
	}
	p.payloads = append(p.payloads, payload)
	return nil
}

func TestAddEntryCreates(t *testing.T) {
	repo := &fakeKnowledgeRepo{}
	svc := NewKnowledgeService(&fakeUowFactory{repo: repo}, &capturePublisher{}, &stubEmbedder{vec: []float32{0.5, 0.5}}, nil, "general")

	res, err := svc.AddEntry(context.Background(), &dto.AddKnowledgeEntryRequest{
		Complaint: "Package arrived damaged",
		Reply:     "We will ship a replacement immediately.",
		Category:  "shipping",
	})
	require.NoError(t, err)
	assert.True(t, res.Created)
	require.Len(t, repo.entries, 1)
	assert.Equal(t, "general", repo.entries[0].Sector)
	assert.Equal(t, []float32{0.5, 0.5}, repo.entries[0].Embedding)
}

func TestAddEntrySkipsDuplicate(t *testing.T) {
	existing := &entity.KnowledgeEntry{Id: uuid.New(), Complaint: "Package arrived damaged"}
	repo := &fakeKnowledgeRepo{entries: []*entity.KnowledgeEntry{existing}}
	svc := NewKnowledgeService(&fakeUowFactory{repo: repo}, &capturePublisher{}, &stubEmbedder{vec: []float32{1}}, nil, "general")

	res, err := svc.AddEntry(context.Background(), &dto.AddKnowledgeEntryRequest{
		Complaint: "Package arrived damaged",
		Reply:     "Different reply",
	})
	require.NoError(t, err)
	assert.False(t, res.Created)
	assert.Equal(t, existing.Id, res.Id)
	assert.Len(t, repo.entries, 1)
}

func TestAddEntryEmbeddingFailure(t *testing.T) {
	repo := &fakeKnowledgeRepo{}
	svc := NewKnowledgeService(&fakeUowFactory{repo: repo}, &capturePublisher{}, &stubEmbedder{err: errors.New("provider down")}, nil, "general")

	_, err := svc.AddEntry(context.Background(), &dto.AddKnowledgeEntryRequest{
		Complaint: "Cannot log in",
		Reply:     "Reset your password.",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "embedding failed")
	assert.Empty(t, repo.entries)
}

func TestIngestEntriesQueuesAll(t *testing.T) {
	pub := &capturePublisher{}
	svc := NewKnowledgeService(&fakeUowFactory{repo: &fakeKnowledgeRepo{}}, pub, &stubEmbedder{vec: []float32{1}}, nil, "general")

	res, err := svc.IngestEntries(context.Background(), &dto.IngestKnowledgeEntriesRequest{
		Entries: []dto.AddKnowledgeEntryRequest{
			{Complaint: "a", Reply: "b"},
			{Complaint: "c", Reply: "d"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Queued)
	assert.Len(t, pub.payloads, 2)
}

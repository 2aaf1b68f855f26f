package service

import (
	"context"

	"ai-tickettriage-be/internal/repository/unitofwork"
	"ai-tickettriage-be/pkg/triage"
	"ai-tickettriage-be/pkg/triage/retriever"
)

// knowledgeSearcher adapts the knowledge repository to the retriever's
// similarity search contract, pinned to one sector.
type knowledgeSearcher struct {
	uowFactory unitofwork.RepositoryFactory
	sector     string
}

func NewKnowledgeSearcher(uowFactory unitofwork.RepositoryFactory, sector string) retriever.SimilaritySearcher {
	return &knowledgeSearcher{
		uowFactory: uowFactory,
		sector:     sector,
	}
}

func (s *knowledgeSearcher) SearchNearest(ctx context.Context, embedding []float32, limit int) ([]*triage.ScoredEntry, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	nearest, err := uow.KnowledgeRepository().SearchNearest(ctx, embedding, limit, s.sector)
	if err != nil {
		return nil, err
	}

	entries := make([]*triage.ScoredEntry, len(nearest))
	for i, n := range nearest {
		entries[i] = &triage.ScoredEntry{
			Complaint: n.Entry.Complaint,
			Reply:     n.Entry.Reply,
			Category:  n.Entry.Category,
			Tags:      n.Entry.Tags,
			Sector:    n.Entry.Sector,
			Distance:  n.Distance,
		}
	}
	return entries, nil
}

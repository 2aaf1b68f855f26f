package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ai-tickettriage-be/internal/dto"
	"ai-tickettriage-be/internal/entity"
	"ai-tickettriage-be/internal/repository/specification"
	"ai-tickettriage-be/internal/repository/unitofwork"
	"ai-tickettriage-be/pkg/embedding"
	"ai-tickettriage-be/pkg/events"
	pktNats "ai-tickettriage-be/pkg/nats"
	"ai-tickettriage-be/pkg/triage"

	"github.com/google/uuid"
)

type IKnowledgeService interface {
	AddEntry(ctx context.Context, req *dto.AddKnowledgeEntryRequest) (*dto.AddKnowledgeEntryResponse, error)
	IngestEntries(ctx context.Context, req *dto.IngestKnowledgeEntriesRequest) (*dto.IngestKnowledgeEntriesResponse, error)
	List(ctx context.Context, req *dto.ListKnowledgeEntriesRequest) (*dto.ListKnowledgeEntriesResponse, error)
}

type knowledgeService struct {
	uowFactory        unitofwork.RepositoryFactory
	publisherService  IPublisherService
	embeddingProvider embedding.EmbeddingProvider
	eventPublisher    *pktNats.Publisher
	defaultSector     string
}

func NewKnowledgeService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	embeddingProvider embedding.EmbeddingProvider,
	eventPublisher *pktNats.Publisher,
	defaultSector string,
) IKnowledgeService {
	return &knowledgeService{
		uowFactory:        uowFactory,
		publisherService:  publisherService,
		embeddingProvider: embeddingProvider,
		eventPublisher:    eventPublisher,
		defaultSector:     defaultSector,
	}
}

// AddEntry embeds and stores one complaint/reply pair. An entry whose
// complaint already exists (case-insensitive) is skipped, reported via
// Created=false.
func (s *knowledgeService) AddEntry(ctx context.Context, req *dto.AddKnowledgeEntryRequest) (*dto.AddKnowledgeEntryResponse, error) {
	sector := req.Sector
	if sector == "" {
		sector = s.defaultSector
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.KnowledgeRepository().FindOne(ctx, specification.ByComplaint{Complaint: req.Complaint})
	if err != nil {
		return nil, &triage.StoreError{Err: err}
	}
	if existing != nil {
		return &dto.AddKnowledgeEntryResponse{Id: existing.Id, Created: false}, nil
	}

	// The stored vector embeds the complaint as it appears in retrieval
	// queries, prefixed with the speaker role.
	vec, err := s.embeddingProvider.Embed(ctx, "customer : "+req.Complaint)
	if err != nil {
		return nil, &triage.EmbeddingError{Err: err}
	}

	entry := entity.KnowledgeEntry{
		Id:        uuid.New(),
		Complaint: req.Complaint,
		Reply:     req.Reply,
		Category:  req.Category,
		Tags:      req.Tags,
		Sector:    sector,
		Embedding: vec,
		CreatedAt: time.Now(),
	}

	if err := uow.KnowledgeRepository().Create(ctx, &entry); err != nil {
		return nil, &triage.StoreError{Err: err}
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.KnowledgeEntryAdded,
			Data: map[string]interface{}{
				"entry_id": entry.Id,
				"sector":   entry.Sector,
				"category": entry.Category,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish %s event: %v\n", events.KnowledgeEntryAdded, err)
		}
	}

	return &dto.AddKnowledgeEntryResponse{Id: entry.Id, Created: true}, nil
}

// IngestEntries queues a batch for asynchronous ingestion; each entry is
// embedded and stored by the consumer.
func (s *knowledgeService) IngestEntries(ctx context.Context, req *dto.IngestKnowledgeEntriesRequest) (*dto.IngestKnowledgeEntriesResponse, error) {
	queued := 0
	for _, entry := range req.Entries {
		msg := dto.IngestKnowledgeEntryMessage{
			Complaint: entry.Complaint,
			Reply:     entry.Reply,
			Category:  entry.Category,
			Tags:      entry.Tags,
			Sector:    entry.Sector,
		}
		payload, err := json.Marshal(msg)
		if err != nil {
			return nil, err
		}
		if err := s.publisherService.Publish(ctx, payload); err != nil {
			return nil, err
		}
		queued++
	}
	return &dto.IngestKnowledgeEntriesResponse{Queued: queued}, nil
}

func (s *knowledgeService) List(ctx context.Context, req *dto.ListKnowledgeEntriesRequest) (*dto.ListKnowledgeEntriesResponse, error) {
	limit := req.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	specs := []specification.Specification{}
	if req.Sector != "" {
		specs = append(specs, specification.BySector{Sector: req.Sector})
	}
	if req.Category != "" {
		specs = append(specs, specification.ByCategory{Category: req.Category})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	total, err := uow.KnowledgeRepository().Count(ctx, specs...)
	if err != nil {
		return nil, err
	}

	listSpecs := append(specs,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: req.Offset},
	)
	entries, err := uow.KnowledgeRepository().FindAll(ctx, listSpecs...)
	if err != nil {
		return nil, err
	}

	res := dto.ListKnowledgeEntriesResponse{
		Entries: make([]dto.KnowledgeEntryResponse, len(entries)),
		Total:   total,
	}
	for i, e := range entries {
		res.Entries[i] = dto.KnowledgeEntryResponse{
			Id:        e.Id,
			Complaint: e.Complaint,
			Reply:     e.Reply,
			Category:  e.Category,
			Tags:      e.Tags,
			Sector:    e.Sector,
			CreatedAt: e.CreatedAt,
			UpdatedAt: e.UpdatedAt,
		}
	}
	return &res, nil
}

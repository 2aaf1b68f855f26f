package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"ai-tickettriage-be/internal/dto"
	"ai-tickettriage-be/internal/entity"
	"ai-tickettriage-be/internal/repository/specification"
	"ai-tickettriage-be/internal/repository/unitofwork"
	"ai-tickettriage-be/pkg/embedding"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	defaultSector     string
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	defaultSector string,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		defaultSector:     defaultSector,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.IngestKnowledgeEntryMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal ingestion message: %v", err)
		msg.Ack() // invalid payloads are never retriable
		return
	}

	if payload.Complaint == "" || payload.Reply == "" {
		log.Printf("[ERROR] Ingestion message missing complaint or reply, skipping")
		msg.Ack()
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.KnowledgeRepository().FindOne(ctx, specification.ByComplaint{Complaint: payload.Complaint})
	if err != nil {
		log.Printf("[ERROR] Duplicate check failed for %q: %v", payload.Complaint, err)
		msg.Nack()
		return
	}
	if existing != nil {
		log.Printf("[INFO] Knowledge entry already exists, skipping: %q", payload.Complaint)
		msg.Ack()
		return
	}

	vec, err := cs.embeddingProvider.Embed(ctx, "customer : "+payload.Complaint)
	if err != nil {
		log.Printf("[ERROR] Failed to embed complaint %q: %v", payload.Complaint, err)
		msg.Nack() // provider may recover, retry
		return
	}

	sector := payload.Sector
	if sector == "" {
		sector = cs.defaultSector
	}

	entry := entity.KnowledgeEntry{
		Id:        uuid.New(),
		Complaint: payload.Complaint,
		Reply:     payload.Reply,
		Category:  payload.Category,
		Tags:      payload.Tags,
		Sector:    sector,
		Embedding: vec,
		CreatedAt: time.Now(),
	}

	if err := uow.KnowledgeRepository().Create(ctx, &entry); err != nil {
		log.Printf("[ERROR] Failed to store knowledge entry %q: %v", payload.Complaint, err)
		msg.Nack()
		return
	}

	log.Printf("[INFO] Ingested knowledge entry %s (%q)", entry.Id, payload.Complaint)
	msg.Ack()
}

package service

import (
	"context"
	"time"

	"ai-tickettriage-be/internal/dto"
	"ai-tickettriage-be/internal/pkg/logger"
	"ai-tickettriage-be/internal/pkg/mailer"
	"ai-tickettriage-be/pkg/events"
	pktNats "ai-tickettriage-be/pkg/nats"
	"ai-tickettriage-be/pkg/triage"
	"ai-tickettriage-be/pkg/triage/pipeline"
)

type ITriageService interface {
	Classify(ctx context.Context, req *dto.ClassifyTicketRequest) (*dto.ClassifyTicketResponse, error)
	DraftReply(ctx context.Context, req *dto.DraftReplyRequest) (*dto.DraftReplyResponse, error)
	SimpleReply(ctx context.Context, req *dto.SimpleReplyRequest) (*dto.DraftReplyResponse, error)
}

type triageService struct {
	pipeline       *pipeline.Pipeline
	eventPublisher *pktNats.Publisher
	emailService   mailer.IEmailService
	logger         logger.ILogger
	defaultSector  string
}

func NewTriageService(
	pipeline *pipeline.Pipeline,
	eventPublisher *pktNats.Publisher,
	emailService mailer.IEmailService,
	sysLogger logger.ILogger,
	defaultSector string,
) ITriageService {
	return &triageService{
		pipeline:       pipeline,
		eventPublisher: eventPublisher,
		emailService:   emailService,
		logger:         sysLogger,
		defaultSector:  defaultSector,
	}
}

func (s *triageService) Classify(ctx context.Context, req *dto.ClassifyTicketRequest) (*dto.ClassifyTicketResponse, error) {
	sector := req.Sector
	if sector == "" {
		sector = s.defaultSector
	}

	result := s.pipeline.Classify(ctx, req.Subject, req.Content, req.Departments, sector)

	s.publishEvent(ctx, events.TicketClassified, map[string]interface{}{
		"subject":    req.Subject,
		"sector":     sector,
		"category":   deref(result.Category),
		"priority":   deref(result.Priority),
		"department": deref(result.AssignedDepartmentName),
	})

	return &dto.ClassifyTicketResponse{
		Category:               result.Category,
		AiSolvablePrediction:   result.AiSolvablePrediction,
		Priority:               result.Priority,
		Sentiment:              result.Sentiment,
		AssignedDepartmentName: result.AssignedDepartmentName,
	}, nil
}

func (s *triageService) DraftReply(ctx context.Context, req *dto.DraftReplyRequest) (*dto.DraftReplyResponse, error) {
	ticketCtx := &triage.TicketContext{
		Subject:      req.Subject,
		Interactions: make([]triage.Interaction, len(req.Interactions)),
	}
	for i, in := range req.Interactions {
		ticketCtx.Interactions[i] = triage.Interaction{
			Type:    in.Type,
			Content: in.Content,
		}
	}

	result := s.pipeline.Reply(ctx, ticketCtx, req.Tone)

	s.publishEvent(ctx, events.TicketReplyDrafted, map[string]interface{}{
		"subject":     req.Subject,
		"ok":          result.Ok,
		"token_count": result.TokenCount,
	})

	// Delivery is auxiliary; a mail failure never degrades the drafted reply.
	if result.Ok && req.NotifyEmail != "" && s.emailService != nil {
		if err := s.emailService.SendDraftedReply(req.NotifyEmail, req.Subject, result.Text); err != nil {
			s.logger.Warn("triage", "Failed to email drafted reply", map[string]interface{}{
				"error":   err.Error(),
				"subject": req.Subject,
			})
		}
	}

	return &dto.DraftReplyResponse{
		Reply:         result.Text,
		TokenCount:    result.TokenCount,
		Ok:            result.Ok,
		FailureReason: result.FailureReason,
	}, nil
}

func (s *triageService) SimpleReply(ctx context.Context, req *dto.SimpleReplyRequest) (*dto.DraftReplyResponse, error) {
	result := s.pipeline.SimpleReply(ctx, req.Subject, req.Message, req.Tone)

	return &dto.DraftReplyResponse{
		Reply:         result.Text,
		TokenCount:    result.TokenCount,
		Ok:            result.Ok,
		FailureReason: result.FailureReason,
	}, nil
}

func (s *triageService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("triage", "Failed to publish event", map[string]interface{}{
			"event": eventType,
			"error": err.Error(),
		})
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

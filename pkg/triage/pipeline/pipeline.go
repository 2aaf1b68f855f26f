// Package pipeline composes retrieval, prompting, generation and parsing into
// the three triage entry points: classify, reply and simple reply.
//
// The external contract is "never fails": every entry point terminates with a
// well-formed typed result. Internal stages return typed errors; this boundary
// collapses any of them into the documented fallback value.
package pipeline

import (
	"context"
	"log"
	"strings"

	"ai-tickettriage-be/pkg/llm"
	"ai-tickettriage-be/pkg/triage"
	"ai-tickettriage-be/pkg/triage/parser"
	"ai-tickettriage-be/pkg/triage/prompt"
)

// ReplyFallback is returned when full reply generation degrades. Callers may
// still match this literal, but ReplyResult.Ok is the authoritative signal.
const ReplyFallback = "I apologize, but I am unable to generate a response at this time. Please have a human agent review this ticket."

// SimpleReplyFallback is the degraded result of the single-message path,
// worded differently so callers can tell the two paths apart.
const SimpleReplyFallback = "I apologize, but an internal error occurred while generating a response."

// ContextRetriever supplies the optional knowledge base context block.
type ContextRetriever interface {
	RelevantContext(ctx context.Context, query string, maxResults int, threshold float64) (string, bool)
}

// Config carries the generation and retrieval parameters, loaded once from
// the environment-backed configuration.
type Config struct {
	Sector              string
	SimilarityThreshold float64
	MaxContextEntries   int
	Temperature         float64
	TopP                float64
	MaxNewTokens        int
}

// Pipeline is stateless across invocations; each call is an independent
// one-shot flow, safe to run concurrently.
type Pipeline struct {
	retriever   ContextRetriever
	llmProvider llm.LLMProvider
	cfg         Config
	logger      *log.Logger
}

func New(retriever ContextRetriever, llmProvider llm.LLMProvider, cfg Config, logger *log.Logger) *Pipeline {
	if logger == nil {
		logger = log.Default()
	}
	return &Pipeline{
		retriever:   retriever,
		llmProvider: llmProvider,
		cfg:         cfg,
		logger:      logger,
	}
}

// Classify produces a five-field classification for a ticket. Any failure in
// retrieval, generation or parsing yields a result with all fields absent.
// A successful classification missing only the priority gets the Medium
// default; no other field is ever defaulted.
func (p *Pipeline) Classify(ctx context.Context, subject, content string, departmentNames []string, sector string) *triage.ClassificationResult {
	retrieved, _ := p.retrieve(ctx, subject+" "+content)

	promptText := prompt.BuildClassificationPrompt(subject, content, retrieved, departmentNames, sector)

	completion, err := p.generate(ctx, promptText)
	if err != nil {
		p.logger.Printf("[WARN] classification degraded, generation failed: %v", err)
		return &triage.ClassificationResult{}
	}

	result, err := parser.ParseClassification(completion.Text)
	if err != nil {
		p.logger.Printf("[WARN] classification degraded, parse failed: %v", err)
		return &triage.ClassificationResult{}
	}

	if result.Priority == nil {
		medium := triage.PriorityMedium
		result.Priority = &medium
	}

	return result
}

// Reply drafts a response to a full ticket conversation. Retrieval is keyed
// on the subject plus the first customer message; a degraded run returns the
// fixed apology with Ok=false so the caller can escalate to a human agent.
func (p *Pipeline) Reply(ctx context.Context, ticketCtx *triage.TicketContext, tone string) *triage.ReplyResult {
	if tone == "" {
		tone = triage.DefaultTone
	}

	searchText := strings.TrimSpace(ticketCtx.Subject + " " + ticketCtx.FirstCustomerMessage())
	retrieved, _ := p.retrieve(ctx, searchText)

	promptText := prompt.BuildReplyPrompt(ticketCtx.Subject, ticketCtx.Interactions, tone, retrieved)

	completion, err := p.generate(ctx, promptText)
	if err != nil {
		p.logger.Printf("[WARN] reply degraded, generation failed: %v", err)
		return &triage.ReplyResult{
			Text:          ReplyFallback,
			TokenCount:    0,
			Ok:            false,
			FailureReason: err.Error(),
		}
	}

	return &triage.ReplyResult{
		Text:       parser.ParseReply(completion),
		TokenCount: completion.TokensUsed,
		Ok:         true,
	}
}

// SimpleReply drafts a response from a single message with no prior history.
func (p *Pipeline) SimpleReply(ctx context.Context, subject, message, tone string) *triage.ReplyResult {
	if tone == "" {
		tone = triage.DefaultTone
	}

	searchText := strings.TrimSpace(subject + " " + message)
	retrieved, _ := p.retrieve(ctx, searchText)

	promptText := prompt.BuildSimpleReplyPrompt(subject, message, tone, retrieved)

	completion, err := p.generate(ctx, promptText)
	if err != nil {
		p.logger.Printf("[WARN] simple reply degraded, generation failed: %v", err)
		return &triage.ReplyResult{
			Text:          SimpleReplyFallback,
			TokenCount:    0,
			Ok:            false,
			FailureReason: err.Error(),
		}
	}

	return &triage.ReplyResult{
		Text:       parser.ParseReply(completion),
		TokenCount: completion.TokensUsed,
		Ok:         true,
	}
}

func (p *Pipeline) retrieve(ctx context.Context, query string) (string, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", false
	}
	return p.retriever.RelevantContext(ctx, query, p.cfg.MaxContextEntries, p.cfg.SimilarityThreshold)
}

func (p *Pipeline) generate(ctx context.Context, promptText string) (*llm.Completion, error) {
	completion, err := p.llmProvider.Generate(ctx, promptText,
		llm.WithTemperature(p.cfg.Temperature),
		llm.WithTopP(p.cfg.TopP),
		llm.WithMaxTokens(p.cfg.MaxNewTokens),
	)
	if err != nil {
		return nil, &triage.GenerationError{Err: err}
	}
	return completion, nil
}

// Package events defines the envelope published to the NATS bus whenever the
// triage pipeline produces something downstream systems care about.
package events

import "time"

// Event types emitted by this service.
const (
	TicketClassified    = "TICKET_CLASSIFIED"
	TicketReplyDrafted  = "TICKET_REPLY_DRAFTED"
	KnowledgeEntryAdded = "KNOWLEDGE_ENTRY_ADDED"
)

// Event is the contract every published event satisfies.
type Event interface {
	// EventType returns the event code, one of the constants above.
	EventType() string

	// Payload returns the event data.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the standard implementation; construct it inline with the
// fields set rather than subtyping.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

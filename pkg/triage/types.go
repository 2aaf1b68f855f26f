package triage

// Priority levels assignable to a ticket. Mirrors the priority_enum used by the
// ticket management collaborator.
const (
	PriorityCritical = "Critical"
	PriorityHigh     = "High"
	PriorityMedium   = "Medium"
	PriorityLow      = "Low"
)

// Interaction types. Only customer-originated types contribute to reply prompts.
const (
	InteractionCustomerComplaint = "customer_complaint"
	InteractionCustomerReply     = "customer_reply"
	InteractionAIReply           = "ai_reply"
	InteractionAdminReply        = "admin_reply"
)

// DepartmentUnassigned is a sentinel department name, not an absence: the model
// explicitly chose "no department fits".
const DepartmentUnassigned = "Unassigned"

// DefaultTone is used when the caller does not supply one.
const DefaultTone = "polite"

// Interaction is a single turn in a ticket conversation.
type Interaction struct {
	Type    string
	Content string
}

// TicketContext carries the conversation a reply is generated for.
// Constructed fresh per call, never persisted.
type TicketContext struct {
	Subject      string
	Interactions []Interaction
}

// FirstCustomerMessage returns the content of the earliest customer-originated
// interaction, or "" if there is none.
func (t *TicketContext) FirstCustomerMessage() string {
	for _, in := range t.Interactions {
		if in.Type == InteractionCustomerComplaint || in.Type == InteractionCustomerReply {
			return in.Content
		}
	}
	return ""
}

// ClassificationResult holds the classifier output. Nil fields mean the model
// did not produce that field; "Unassigned" as a department name is a produced
// value, not an absence.
type ClassificationResult struct {
	Category               *string
	AiSolvablePrediction   *bool
	Priority               *string
	Sentiment              *string
	AssignedDepartmentName *string
}

// ReplyResult is the outcome of a reply generation.
// Ok is authoritative for failure detection; the fallback text is kept for
// callers that still match on it.
type ReplyResult struct {
	Text          string
	TokenCount    int
	Ok            bool
	FailureReason string
}

// ScoredEntry is a knowledge base candidate returned by a similarity search,
// carrying the raw cosine distance reported by the store.
type ScoredEntry struct {
	Complaint string
	Reply     string
	Category  string
	Tags      []string
	Sector    string
	Distance  float64
}

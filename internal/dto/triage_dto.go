package dto

type InteractionDTO struct {
	Type    string `json:"type" validate:"required,oneof=customer_complaint customer_reply ai_reply admin_reply"`
	Content string `json:"content" validate:"required"`
}

type ClassifyTicketRequest struct {
	Subject     string   `json:"subject" validate:"required"`
	Content     string   `json:"content" validate:"required"`
	Departments []string `json:"departments" validate:"required,min=1,dive,required"`
	Sector      string   `json:"sector,omitempty"`
}

type ClassifyTicketResponse struct {
	Category               *string `json:"category"`
	AiSolvablePrediction   *bool   `json:"ai_solvable_prediction"`
	Priority               *string `json:"priority"`
	Sentiment              *string `json:"sentiment"`
	AssignedDepartmentName *string `json:"assigned_department_name"`
}

type DraftReplyRequest struct {
	Subject      string           `json:"subject" validate:"required"`
	Interactions []InteractionDTO `json:"interactions" validate:"required,min=1,dive"`
	Tone         string           `json:"tone,omitempty"`
	// When set, the drafted reply is also emailed to this address.
	NotifyEmail string `json:"notify_email,omitempty" validate:"omitempty,email"`
}

type SimpleReplyRequest struct {
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
	Tone    string `json:"tone,omitempty"`
}

type DraftReplyResponse struct {
	Reply         string `json:"reply"`
	TokenCount    int    `json:"token_count"`
	Ok            bool   `json:"ok"`
	FailureReason string `json:"failure_reason,omitempty"`
}

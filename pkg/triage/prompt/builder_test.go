package prompt

import (
	"strings"
	"testing"

	"ai-tickettriage-be/pkg/triage"
)

func TestBuildClassificationPrompt(t *testing.T) {
	got := BuildClassificationPrompt(
		"Login broken",
		"I cannot log in since yesterday",
		"Based on our knowledge base:\n\nCustomer complaint: login fails\nReply: reset your password",
		[]string{"Support", "Finance"},
		"saas",
	)

	for _, want := range []string{
		"Login broken",
		"I cannot log in since yesterday",
		"'Support', 'Finance'",
		"'Unassigned'",
		"'saas'",
		`"category"`,
		`"ai_solvable_prediction"`,
		`"priority"`,
		`"sentiment"`,
		`"assigned_department_name"`,
		"reset your password",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("classification prompt missing %q", want)
		}
	}
}

func TestBuildClassificationPromptNoDepartments(t *testing.T) {
	got := BuildClassificationPrompt("s", "c", "", nil, "general")

	if !strings.Contains(got, "No specific departments found") {
		t.Error("expected no-departments wording")
	}
	if !strings.Contains(got, "'Unassigned'") {
		t.Error("expected Unassigned sentinel to be offered")
	}
	if strings.Contains(got, "Relevant Knowledge Base Information") {
		t.Error("empty context should not produce a knowledge base section")
	}
}

func TestBuildReplyPromptFiltersInteractions(t *testing.T) {
	interactions := []triage.Interaction{
		{Type: triage.InteractionCustomerComplaint, Content: "My invoice is wrong"},
		{Type: triage.InteractionAIReply, Content: "We are looking into it"},
		{Type: triage.InteractionCustomerReply, Content: "Still wrong today"},
		{Type: triage.InteractionAdminReply, Content: "internal note"},
	}

	got := BuildReplyPrompt("Invoice issue", interactions, "friendly", "")

	if !strings.Contains(got, "Customer: My invoice is wrong") {
		t.Error("missing first customer turn")
	}
	if !strings.Contains(got, "Customer: Still wrong today") {
		t.Error("missing second customer turn")
	}
	if strings.Contains(got, "We are looking into it") {
		t.Error("AI turn must not appear in the communications block")
	}
	if strings.Contains(got, "internal note") {
		t.Error("admin turn must not appear in the communications block")
	}
	if !strings.Contains(got, "friendly") {
		t.Error("tone adjective missing")
	}
}

func TestBuildSimpleReplyPrompt(t *testing.T) {
	got := BuildSimpleReplyPrompt("Refund", "Where is my refund?", "polite", "ctx block")

	for _, want := range []string{"Refund", "Where is my refund?", "polite", "ctx block"} {
		if !strings.Contains(got, want) {
			t.Errorf("simple reply prompt missing %q", want)
		}
	}
}

func TestFormatInteractionsEmpty(t *testing.T) {
	if got := FormatInteractions(nil); got != "" {
		t.Errorf("FormatInteractions(nil) = %q, want empty", got)
	}
}

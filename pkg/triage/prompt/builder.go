// Package prompt renders ticket data, retrieved knowledge base context and
// instructions into model-ready prompts. Pure templating: no I/O, no state.
package prompt

import (
	"fmt"
	"strings"

	"ai-tickettriage-be/pkg/triage"
)

// BuildClassificationPrompt produces the prompt for ticket classification.
// The model is instructed to answer with only a JSON object carrying exactly
// the five classification fields. Department names are enumerated as an
// explicit choice with "Unassigned" as the sentinel for no-fit.
func BuildClassificationPrompt(subject, content, retrievedContext string, departmentNames []string, sector string) string {
	var b strings.Builder

	b.WriteString("Classify the following ticket based on its subject and content.\n")
	b.WriteString(fmt.Sprintf("Ticket Subject: %s\n", subject))
	b.WriteString(fmt.Sprintf("Ticket Content: %s\n", content))
	if retrievedContext != "" {
		b.WriteString(fmt.Sprintf("Relevant Knowledge Base Information: %s\n", retrievedContext))
	}

	if len(departmentNames) == 0 {
		b.WriteString(fmt.Sprintf("No specific departments found for this branch. You can suggest '%s'.", triage.DepartmentUnassigned))
	} else {
		quoted := make([]string, len(departmentNames))
		for i, name := range departmentNames {
			quoted[i] = fmt.Sprintf("'%s'", name)
		}
		b.WriteString(fmt.Sprintf(
			"Available departments for this branch are: [%s]. Choose one, or '%s' if none fit.",
			strings.Join(quoted, ", "),
			triage.DepartmentUnassigned,
		))
	}
	b.WriteString(fmt.Sprintf(" The sector for this company is '%s'.\n", sector))

	b.WriteString("\nRespond strictly in the following JSON format (do not include any explanations or extra text):\n\n")
	b.WriteString("{\n")
	b.WriteString("    \"category\": \"Category Name\",\n")
	b.WriteString("    \"ai_solvable_prediction\": true or false,\n")
	b.WriteString("    \"priority\": \"Priority Level\",\n")
	b.WriteString("    \"sentiment\": \"Sentiment\",\n")
	b.WriteString("    \"assigned_department_name\": \"Suggested Department Name\"\n")
	b.WriteString("}\n")

	return b.String()
}

// BuildReplyPrompt produces the prompt for drafting a full ticket reply from
// the conversation history. Only customer-originated turns are included in
// the communications block; the tone flows in as a free-text adjective.
func BuildReplyPrompt(subject string, interactions []triage.Interaction, tone, retrievedContext string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("As a customer support agent, generate a helpful and %s response to the customer's issue.\n\n", tone))
	b.WriteString(fmt.Sprintf("Ticket Subject: %s\n\n", subject))
	b.WriteString("Customer Communications:\n")
	b.WriteString(FormatInteractions(interactions))
	b.WriteString("\n")

	if retrievedContext != "" {
		b.WriteString(fmt.Sprintf("\nRelevant Knowledge Base Information:\n%s\n", retrievedContext))
	}

	b.WriteString("\nGenerate a professional response that:")
	b.WriteString("\n- Addresses the customer's concerns")
	b.WriteString(fmt.Sprintf("\n- Maintains a %s and professional tone", tone))
	b.WriteString("\n- Provides clear and actionable solutions")
	b.WriteString("\n- Is concise yet thorough")

	return b.String()
}

// BuildSimpleReplyPrompt produces the prompt for a single-message reply with
// no prior conversation history.
func BuildSimpleReplyPrompt(subject, message, tone, retrievedContext string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Generate a simple and %s reply to the following query based on the ticket's subject and the latest message.\n", tone))
	b.WriteString(fmt.Sprintf("Ticket Subject: %s\n", subject))
	b.WriteString(fmt.Sprintf("Latest Message: %s\n", message))

	if retrievedContext != "" {
		b.WriteString(fmt.Sprintf("\nRelevant Knowledge Base Information:\n%s", retrievedContext))
	}

	return b.String()
}

// FormatInteractions renders the customer-originated turns of a conversation
// into a readable block. AI, admin and system turns are skipped.
func FormatInteractions(interactions []triage.Interaction) string {
	var b strings.Builder
	for _, interaction := range interactions {
		if interaction.Type == triage.InteractionCustomerComplaint || interaction.Type == triage.InteractionCustomerReply {
			b.WriteString(fmt.Sprintf("Customer: %s\n\n", interaction.Content))
		}
	}
	return strings.TrimSpace(b.String())
}

package parser

import (
	"errors"
	"testing"

	"ai-tickettriage-be/pkg/triage"
)

func TestParseClassificationWellFormed(t *testing.T) {
	raw := `{"category":"Billing","ai_solvable_prediction":true,"priority":"High","sentiment":"Negative","assigned_department_name":"Finance"}`

	result, err := ParseClassification(raw)
	if err != nil {
		t.Fatalf("ParseClassification() error = %v", err)
	}

	if result.Category == nil || *result.Category != "Billing" {
		t.Errorf("Category = %v, want Billing", result.Category)
	}
	if result.AiSolvablePrediction == nil || *result.AiSolvablePrediction != true {
		t.Errorf("AiSolvablePrediction = %v, want true", result.AiSolvablePrediction)
	}
	if result.Priority == nil || *result.Priority != "High" {
		t.Errorf("Priority = %v, want High", result.Priority)
	}
	if result.Sentiment == nil || *result.Sentiment != "Negative" {
		t.Errorf("Sentiment = %v, want Negative", result.Sentiment)
	}
	if result.AssignedDepartmentName == nil || *result.AssignedDepartmentName != "Finance" {
		t.Errorf("AssignedDepartmentName = %v, want Finance", result.AssignedDepartmentName)
	}
}

func TestParseClassificationRecovery(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantCategory string
	}{
		{
			name:         "json code fence",
			raw:          "```json\n{\"category\":\"Billing\"}\n```",
			wantCategory: "Billing",
		},
		{
			name:         "bare code fence",
			raw:          "```\n{\"category\":\"Shipping\"}\n```",
			wantCategory: "Shipping",
		},
		{
			name:         "surrounding prose",
			raw:          `Here is the result: {"category":"Billing"} Thanks.`,
			wantCategory: "Billing",
		},
		{
			name:         "prose with multiline json",
			raw:          "Sure! The classification:\n{\n  \"category\": \"Account\"\n}\nLet me know.",
			wantCategory: "Account",
		},
		{
			name:         "fence with leading prose",
			raw:          "The answer is:\n```json\n{\"category\":\"Refunds\"}\n```\ndone",
			wantCategory: "Refunds",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseClassification(tt.raw)
			if err != nil {
				t.Fatalf("ParseClassification() error = %v", err)
			}
			if result.Category == nil || *result.Category != tt.wantCategory {
				t.Errorf("Category = %v, want %q", result.Category, tt.wantCategory)
			}
		})
	}
}

func TestParseClassificationPartialFields(t *testing.T) {
	result, err := ParseClassification(`{"category":"Billing","sentiment":null}`)
	if err != nil {
		t.Fatalf("ParseClassification() error = %v", err)
	}

	if result.Category == nil {
		t.Error("Category should be present")
	}
	if result.Sentiment != nil {
		t.Errorf("Sentiment = %v, want nil for explicit null", *result.Sentiment)
	}
	if result.Priority != nil {
		t.Errorf("Priority = %v, want nil for missing key", *result.Priority)
	}
	if result.AiSolvablePrediction != nil {
		t.Error("AiSolvablePrediction should be nil for missing key")
	}
}

func TestParseClassificationStringBool(t *testing.T) {
	result, err := ParseClassification(`{"ai_solvable_prediction":"true"}`)
	if err != nil {
		t.Fatalf("ParseClassification() error = %v", err)
	}
	if result.AiSolvablePrediction == nil || *result.AiSolvablePrediction != true {
		t.Errorf("AiSolvablePrediction = %v, want true", result.AiSolvablePrediction)
	}
}

func TestParseClassificationUnparseable(t *testing.T) {
	raws := []string{
		"I cannot classify this ticket.",
		"",
		"category: Billing, priority: High",
	}

	for _, raw := range raws {
		_, err := ParseClassification(raw)
		if err == nil {
			t.Errorf("ParseClassification(%q) expected error", raw)
			continue
		}
		var parseErr *triage.ParseError
		if !errors.As(err, &parseErr) {
			t.Errorf("ParseClassification(%q) error type = %T, want *triage.ParseError", raw, err)
		}
		if parseErr != nil && parseErr.Raw != raw {
			t.Errorf("ParseError.Raw = %q, want %q", parseErr.Raw, raw)
		}
	}
}

package parser

import (
	"encoding/json"
	"fmt"
	"strings"

	"ai-tickettriage-be/pkg/triage"
)

// ParseClassification extracts a ClassificationResult from raw model output.
// Models frequently wrap the JSON in markdown fences or surround it with
// prose, so parsing runs as an ordered fallback chain:
//
//  1. strip one fenced code block (```json or ```) if present
//  2. strict JSON parse
//  3. extract the first {...} span (greedy across newlines) and retry
//  4. give up with a ParseError carrying the raw text
//
// Fields absent from the JSON stay nil; defaulting is a pipeline policy,
// not a parser one.
func ParseClassification(raw string) (*triage.ClassificationResult, error) {
	text := stripCodeFence(strings.TrimSpace(raw))

	payload, err := decodeClassification(text)
	if err == nil {
		return payload, nil
	}

	if span := extractJSONSpan(text); span != "" {
		if payload, err2 := decodeClassification(span); err2 == nil {
			return payload, nil
		}
	}

	return nil, &triage.ParseError{Raw: raw, Err: err}
}

// stripCodeFence removes a single markdown code fence wrapper, keeping the
// content between the first pair of fences.
func stripCodeFence(text string) string {
	if idx := strings.Index(text, "```json"); idx != -1 {
		rest := text[idx+len("```json"):]
		if end := strings.Index(rest, "```"); end != -1 {
			return strings.TrimSpace(rest[:end])
		}
		return strings.TrimSpace(rest)
	}
	if idx := strings.Index(text, "```"); idx != -1 {
		rest := text[idx+len("```"):]
		if end := strings.Index(rest, "```"); end != -1 {
			return strings.TrimSpace(rest[:end])
		}
		return strings.TrimSpace(rest)
	}
	return text
}

// extractJSONSpan returns the widest {...} span in the text, or "" when no
// braces pair up.
func extractJSONSpan(text string) string {
	startIdx := strings.Index(text, "{")
	endIdx := strings.LastIndex(text, "}")

	if startIdx == -1 || endIdx == -1 || endIdx <= startIdx {
		return ""
	}

	return text[startIdx : endIdx+1]
}

func decodeClassification(text string) (*triage.ClassificationResult, error) {
	var fields map[string]interface{}
	if err := json.Unmarshal([]byte(text), &fields); err != nil {
		return nil, err
	}

	result := &triage.ClassificationResult{
		Category:               readString(fields, "category"),
		AiSolvablePrediction:   readBool(fields, "ai_solvable_prediction"),
		Priority:               readString(fields, "priority"),
		Sentiment:              readString(fields, "sentiment"),
		AssignedDepartmentName: readString(fields, "assigned_department_name"),
	}
	return result, nil
}

// readString returns a pointer to the field value when the key is present
// and holds a non-empty value. Non-string scalars are stringified rather
// than discarded, since models occasionally emit bare numbers for priority.
func readString(fields map[string]interface{}, key string) *string {
	raw, ok := fields[key]
	if !ok || raw == nil {
		return nil
	}

	var value string
	switch v := raw.(type) {
	case string:
		value = strings.TrimSpace(v)
	default:
		value = strings.TrimSpace(fmt.Sprint(v))
	}

	if value == "" {
		return nil
	}
	return &value
}

// readBool tolerates booleans serialized as strings ("true"/"false"),
// which some models produce despite the prompt asking for a bare boolean.
func readBool(fields map[string]interface{}, key string) *bool {
	raw, ok := fields[key]
	if !ok || raw == nil {
		return nil
	}

	switch v := raw.(type) {
	case bool:
		return &v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true":
			b := true
			return &b
		case "false":
			b := false
			return &b
		}
	}
	return nil
}

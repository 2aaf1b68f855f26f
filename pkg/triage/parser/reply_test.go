package parser

import (
	"testing"

	"ai-tickettriage-be/pkg/llm"
)

type fakeEnvelope struct {
	content string
}

func (f fakeEnvelope) MessageContent() string { return f.content }

func TestParseReply(t *testing.T) {
	tests := []struct {
		name string
		raw  interface{}
		want string
	}{
		{
			name: "plain string",
			raw:  "  Hello, how can I help?  ",
			want: "Hello, how can I help?",
		},
		{
			name: "completion pointer",
			raw:  &llm.Completion{Text: "Please reset your password."},
			want: "Please reset your password.",
		},
		{
			name: "completion value",
			raw:  llm.Completion{Text: "Done."},
			want: "Done.",
		},
		{
			name: "message-like envelope",
			raw:  fakeEnvelope{content: "Thanks for reaching out."},
			want: "Thanks for reaching out.",
		},
		{
			name: "list of string parts",
			raw:  []string{"Hello", "there"},
			want: "Hello there",
		},
		{
			name: "list of mixed parts",
			raw:  []interface{}{"part one", "part two"},
			want: "part one part two",
		},
		{
			name: "mapping with text key",
			raw:  map[string]interface{}{"type": "text", "text": "inner value"},
			want: "inner value",
		},
		{
			name: "python dict string",
			raw:  "{'text': 'hello'}",
			want: "hello",
		},
		{
			name: "python dict string with type",
			raw:  "{'type': 'text', 'text': 'the real reply'}",
			want: "the real reply",
		},
		{
			name: "json dict string",
			raw:  `{"text": "json inner"}`,
			want: "json inner",
		},
		{
			name: "nil",
			raw:  nil,
			want: "",
		},
		{
			name: "nil completion",
			raw:  (*llm.Completion)(nil),
			want: "",
		},
		{
			name: "brace-prefixed prose stays intact",
			raw:  "{almost a dict but not quite",
			want: "{almost a dict but not quite",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseReply(tt.raw)
			if got != tt.want {
				t.Errorf("ParseReply() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseReplyUnknownShape(t *testing.T) {
	// Unrecoverable shapes fall back to their stringification, never panic.
	got := ParseReply(struct{ X int }{X: 7})
	if got == "" {
		t.Error("ParseReply of unknown shape should not be empty")
	}
}

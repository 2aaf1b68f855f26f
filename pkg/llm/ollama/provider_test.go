package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ai-tickettriage-be/pkg/llm"
)

func TestGenerateReturnsTextAndTokenCount(t *testing.T) {
	var gotReq ollamaChatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(ollamaChatResponse{
			Model:     "llama3",
			Message:   ollamaMessage{Role: "assistant", Content: "Here is your answer."},
			Done:      true,
			EvalCount: 37,
		})
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "llama3")
	completion, err := p.Generate(context.Background(), "hello",
		llm.WithTemperature(0.2),
		llm.WithMaxTokens(128),
	)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if completion.Text != "Here is your answer." {
		t.Errorf("text = %q", completion.Text)
	}
	if completion.TokensUsed != 37 {
		t.Errorf("tokens = %d", completion.TokensUsed)
	}
	if gotReq.Stream {
		t.Error("expected stream=false")
	}
	if gotReq.Options == nil || gotReq.Options.NumPredict != 128 {
		t.Errorf("options = %+v", gotReq.Options)
	}
}

func TestChatMapsModelRoleToAssistant(t *testing.T) {
	var gotReq ollamaChatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotReq)
		json.NewEncoder(w).Encode(ollamaChatResponse{
			Message: ollamaMessage{Role: "assistant", Content: "ok"},
			Done:    true,
		})
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "llama3")
	_, err := p.Chat(context.Background(), []llm.Message{
		{Role: "user", Content: "hi"},
		{Role: "model", Content: "hello"},
	})
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}

	if len(gotReq.Messages) != 2 || gotReq.Messages[1].Role != "assistant" {
		t.Errorf("messages = %+v", gotReq.Messages)
	}
}

func TestGenerateErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "missing")
	if _, err := p.Generate(context.Background(), "hello"); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}

package retriever

import (
	"context"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"ai-tickettriage-be/pkg/triage"
)

type fakeEmbedder struct {
	vec []float32
	err error
}

func (f *fakeEmbedder) Embed(_ context.Context, _ string) ([]float32, error) {
	return f.vec, f.err
}

type fakeSearcher struct {
	entries []*triage.ScoredEntry
	err     error
	calls   int
}

func (f *fakeSearcher) SearchNearest(_ context.Context, _ []float32, _ int) ([]*triage.ScoredEntry, error) {
	f.calls++
	return f.entries, f.err
}

func quietLogger() *log.Logger {
	return log.New(&strings.Builder{}, "", 0)
}

func TestRelevantContextAboveThreshold(t *testing.T) {
	searcher := &fakeSearcher{
		entries: []*triage.ScoredEntry{
			// distance 0.1 -> similarity 0.9
			{Complaint: "login fails", Reply: "reset your password", Distance: 0.1},
		},
	}
	r := New(&fakeEmbedder{vec: []float32{1, 0}}, searcher, nil, quietLogger())

	got, found := r.RelevantContext(context.Background(), "login fails", 3, 0.7)
	if !found {
		t.Fatal("expected context to be found")
	}
	if !strings.Contains(got, "login fails") {
		t.Error("complaint text missing from context")
	}
	if !strings.Contains(got, "reset your password") {
		t.Error("reply text missing from context")
	}
	if !strings.HasPrefix(got, "Based on our knowledge base:") {
		t.Errorf("context header missing, got %q", got)
	}
	if strings.TrimSpace(got) != got {
		t.Error("context should be trimmed")
	}
}

func TestRelevantContextBelowThreshold(t *testing.T) {
	searcher := &fakeSearcher{
		entries: []*triage.ScoredEntry{
			// distance 0.5 -> similarity 0.5, below threshold 0.7
			{Complaint: "slow shipping", Reply: "check tracking", Distance: 0.5},
		},
	}
	r := New(&fakeEmbedder{vec: []float32{1, 0}}, searcher, nil, quietLogger())

	if _, found := r.RelevantContext(context.Background(), "where is my parcel", 3, 0.7); found {
		t.Error("expected no context when nothing clears the threshold")
	}
}

func TestRelevantContextMixedCandidates(t *testing.T) {
	searcher := &fakeSearcher{
		entries: []*triage.ScoredEntry{
			{Complaint: "good match", Reply: "keep", Distance: 0.05},
			{Complaint: "weak match", Reply: "drop", Distance: 0.6},
		},
	}
	r := New(&fakeEmbedder{vec: []float32{1, 0}}, searcher, nil, quietLogger())

	got, found := r.RelevantContext(context.Background(), "q", 5, 0.7)
	if !found {
		t.Fatal("expected context")
	}
	if !strings.Contains(got, "good match") {
		t.Error("qualifying candidate missing")
	}
	if strings.Contains(got, "weak match") {
		t.Error("candidate below threshold leaked into the context")
	}
}

func TestRelevantContextEmbeddingFailure(t *testing.T) {
	searcher := &fakeSearcher{}
	r := New(&fakeEmbedder{err: errors.New("model unreachable")}, searcher, nil, quietLogger())

	if _, found := r.RelevantContext(context.Background(), "q", 3, 0.7); found {
		t.Error("embedding failure must degrade to no context, not error")
	}
	if searcher.calls != 0 {
		t.Error("search must not run when embedding failed")
	}
}

func TestRelevantContextSearchFailure(t *testing.T) {
	searcher := &fakeSearcher{err: errors.New("store down")}
	r := New(&fakeEmbedder{vec: []float32{1, 0}}, searcher, nil, quietLogger())

	if _, found := r.RelevantContext(context.Background(), "q", 3, 0.7); found {
		t.Error("store failure must degrade to no context")
	}
}

func TestRelevantContextEmptyQuery(t *testing.T) {
	r := New(&fakeEmbedder{vec: []float32{1, 0}}, &fakeSearcher{}, nil, quietLogger())
	if _, found := r.RelevantContext(context.Background(), "   ", 3, 0.7); found {
		t.Error("blank query should yield no context")
	}
}

func TestRelevantContextCaching(t *testing.T) {
	searcher := &fakeSearcher{
		entries: []*triage.ScoredEntry{
			{Complaint: "c", Reply: "r", Distance: 0.1},
		},
	}
	cache := NewMemoryCache(time.Minute)
	r := New(&fakeEmbedder{vec: []float32{1, 0}}, searcher, cache, quietLogger())

	first, found := r.RelevantContext(context.Background(), "same query", 3, 0.7)
	if !found {
		t.Fatal("expected context on first call")
	}
	second, found := r.RelevantContext(context.Background(), "same query", 3, 0.7)
	if !found {
		t.Fatal("expected context on second call")
	}
	if first != second {
		t.Error("cached context differs from original")
	}
	if searcher.calls != 1 {
		t.Errorf("search calls = %d, want 1 (second call served from cache)", searcher.calls)
	}
}

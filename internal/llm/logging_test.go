package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/skillmatch/skillmatch/internal/logger"
	"github.com/skillmatch/skillmatch/internal/store"
)

type recordingRepo struct {
	store.EventRepo
	mu     sync.Mutex
	events []store.LLMRequestEventData
	err    error
}

func (r *recordingRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, data)
	return r.err
}

func TestLogging_RecordsSuccessfulCall(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"score":70}`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 4},
	})
	repo := &recordingRepo{}
	p := WithLogging(mock, "gemini", repo, logger.Nop())

	ctx := WithPurpose(context.Background(), "evaluation")
	_, err := p.Generate(ctx, Request{
		System:   "sys",
		Messages: []Message{{Role: RoleUser, Content: "Question 1: ..."}},
		Schema:   &Schema{Name: "s", Definition: map[string]any{"type": "object"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	e := repo.events[0]
	if e.Provider != "gemini" || e.Model != "mock" || e.Purpose != "evaluation" {
		t.Fatalf("unexpected event labels: %+v", e)
	}
	if !e.Success || e.InputTokens != 12 || e.OutputTokens != 4 {
		t.Fatalf("unexpected event metrics: %+v", e)
	}
	if !strings.Contains(e.RequestBody, "[system]\nsys") || !strings.Contains(e.RequestBody, "[schema: s]") {
		t.Fatalf("request body not serialized: %q", e.RequestBody)
	}
	if e.ResponseBody != `{"score":70}` {
		t.Fatalf("response body = %q", e.ResponseBody)
	}
}

func TestLogging_RecordsFailureAndKeepsError(t *testing.T) {
	boom := &ErrProviderUnavailable{Err: errors.New("503")}
	mock := NewMockProvider(MockResponse{Err: boom})
	repo := &recordingRepo{err: errors.New("disk full")}

	var buf bytes.Buffer
	p := WithLogging(mock, "openai", repo, logger.New(&buf, zerolog.DebugLevel))

	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, boom) {
		t.Fatalf("expected provider error, got %v", err)
	}
	if len(repo.events) != 1 || repo.events[0].Success || repo.events[0].ErrorMessage == "" {
		t.Fatalf("expected failed event, got %+v", repo.events)
	}
	if !strings.Contains(buf.String(), "failed to record LLM request event") {
		t.Fatalf("expected repo failure to be logged, got %q", buf.String())
	}
}

func TestLogging_NilRepo(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, "mock", nil, nil)
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLogging_TagsAttemptID(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	var buf bytes.Buffer
	p := WithLogging(mock, "mock", nil, logger.New(&buf, zerolog.InfoLevel))

	ctx := WithAttempt(WithPurpose(context.Background(), "evaluation"), "att-42")
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), `"attempt_id":"att-42"`) {
		t.Fatalf("expected attempt_id in log line, got %q", buf.String())
	}
}

package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"kv", "llm_request_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.KV().Set(ctx, "k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	got, ok, err := s.KV().Get(ctx, "k")
	if err != nil || !ok || got != "v" {
		t.Fatalf("get after reopen = (%q, %v, %v), want (v, true, nil)", got, ok, err)
	}
}

func TestLLMEventAppendAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "gemini",
		Model:        "gemini-2.5-flash",
		Purpose:      "evaluation",
		InputTokens:  120,
		OutputTokens: 40,
		LatencyMs:    850,
		Success:      true,
		RequestBody:  `{"role":"Backend Engineer"}`,
		ResponseBody: `{"score":80}`,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}

	e, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil {
		t.Fatal("expected event")
	}
	if e.Model != "gemini-2.5-flash" || e.Purpose != "evaluation" || !e.Success {
		t.Errorf("unexpected event: %+v", e)
	}
	if e.ResponseBody != `{"score":80}` {
		t.Errorf("response body = %q", e.ResponseBody)
	}
	if time.Since(e.Timestamp) > time.Minute {
		t.Errorf("timestamp %v is not recent", e.Timestamp)
	}
}

func TestGetLLMEventMissing(t *testing.T) {
	s := openTestStore(t)
	e, err := s.EventRepo().GetLLMEvent(context.Background(), 999)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e != nil {
		t.Fatalf("expected nil, got %+v", e)
	}
}

func TestQueryLLMEventsNewestFirstWithLimitAndPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	purposes := []string{"evaluation", "evaluation", "other", "evaluation"}
	for i, p := range purposes {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "mock", Model: "mock", Purpose: p, InputTokens: i, Success: true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	if events[0].ID <= events[1].ID {
		t.Errorf("expected newest first, got ids %d, %d", events[0].ID, events[1].ID)
	}

	evals, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "evaluation"})
	if err != nil {
		t.Fatalf("query purpose: %v", err)
	}
	if len(evals) != 3 {
		t.Errorf("evaluation events = %d, want 3", len(evals))
	}
}

func TestQueryLLMEventsFailedOnly(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, ok := range []bool{false, true, true, false, true} {
		data := LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "evaluation", Success: ok}
		if !ok {
			data.ErrorMessage = "rate limited"
		}
		if err := repo.AppendLLMRequest(ctx, data); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	failed, err := repo.QueryLLMEvents(ctx, QueryOpts{Failed: true, Limit: 2})
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(failed) != 2 {
		t.Fatalf("failed events = %d, want 2", len(failed))
	}
	for _, e := range failed {
		if e.Success {
			t.Errorf("event %d is successful", e.ID)
		}
	}
}

func TestLLMUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "evaluation", InputTokens: 100, OutputTokens: 10, LatencyMs: 100, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "evaluation", InputTokens: 200, OutputTokens: 20, LatencyMs: 300, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "other", InputTokens: 50, OutputTokens: 5, LatencyMs: 50, Success: false},
	}
	for _, d := range data {
		if err := repo.AppendLLMRequest(ctx, d); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("purposes = %d, want 2", len(byPurpose))
	}
	top := byPurpose[0]
	if top.Purpose != "evaluation" || top.Calls != 2 || top.InputTokens != 300 || top.OutputTokens != 30 {
		t.Errorf("unexpected evaluation usage: %+v", top)
	}
	if top.AvgLatencyMs != 200 {
		t.Errorf("avg latency = %d, want 200", top.AvgLatencyMs)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("by model: %v", err)
	}
	if len(byModel) != 2 || byModel[0].Model != "gemini-2.5-flash" || byModel[0].Calls != 2 {
		t.Errorf("unexpected model usage: %+v", byModel)
	}
}

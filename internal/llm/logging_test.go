package llm

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
)

func TestRequestLog_AppendAndRead(t *testing.T) {
	log := NewRequestLog(filepath.Join(t.TempDir(), "llm.log.jsonl"))

	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"ok":true}`), Usage: Usage{InputTokens: 100, OutputTokens: 50}},
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	p := WithLogging(mock, log)

	ctx := WithPurpose(context.Background(), "quiz-generation")
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := p.Generate(ctx, Request{}); err == nil {
		t.Fatal("expected provider error to pass through")
	}

	entries, err := log.Entries()
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	if entries[0].Purpose != "quiz-generation" || !entries[0].Success {
		t.Fatalf("first entry = %+v, want successful quiz-generation", entries[0])
	}
	if entries[0].InputTokens != 100 || entries[0].OutputTokens != 50 {
		t.Fatalf("first entry tokens = %d/%d, want 100/50", entries[0].InputTokens, entries[0].OutputTokens)
	}
	if entries[1].Success || entries[1].Error == "" {
		t.Fatalf("second entry = %+v, want failure with message", entries[1])
	}
}

func TestRequestLog_MissingFileIsEmpty(t *testing.T) {
	log := NewRequestLog(filepath.Join(t.TempDir(), "absent.jsonl"))
	entries, err := log.Entries()
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}
}

func TestModelCost(t *testing.T) {
	c := ModelCost{InputPerMTok: 1, OutputPerMTok: 5}
	if got := c.Cost(1_000_000, 1_000_000); got != 6 {
		t.Fatalf("Cost = %v, want 6", got)
	}
	if LookupCost("gpt-4o-mini") == nil {
		t.Fatal("expected pricing for gpt-4o-mini")
	}
	if LookupCost("not-a-model") != nil {
		t.Fatal("expected no pricing for unknown model")
	}
}

package llm

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// Entry is one logged LLM request, a single line in the request log.
type Entry struct {
	Time         time.Time `json:"time"`
	Purpose      string    `json:"purpose"`
	Model        string    `json:"model"`
	LatencyMs    int64     `json:"latency_ms"`
	InputTokens  int       `json:"input_tokens"`
	OutputTokens int       `json:"output_tokens"`
	CostUSD      float64   `json:"cost_usd,omitempty"`
	Success      bool      `json:"success"`
	Error        string    `json:"error,omitempty"`
}

// RequestLog is an append-only JSONL file of LLM request entries.
type RequestLog struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

// NewRequestLog creates a log that appends to the file at path. The
// file is created on first append.
func NewRequestLog(path string) *RequestLog {
	return &RequestLog{path: path, now: time.Now}
}

// Append writes one entry as a JSON line.
func (l *RequestLog) Append(e Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	line, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal log entry: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open request log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("append request log: %w", err)
	}
	return nil
}

// Entries reads every entry in the log, oldest first. A missing file
// yields an empty slice; malformed lines are skipped.
func (l *RequestLog) Entries() ([]Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open request log: %w", err)
	}
	defer f.Close()

	var entries []Entry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var e Entry
		if json.Unmarshal(sc.Bytes(), &e) != nil {
			continue
		}
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read request log: %w", err)
	}
	return entries, nil
}

// LoggingProvider is a decorator that records every LLM request in the
// request log.
type LoggingProvider struct {
	inner Provider
	log   *RequestLog
}

// WithLogging wraps a Provider with request logging.
func WithLogging(p Provider, log *RequestLog) Provider {
	return &LoggingProvider{inner: p, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := l.log.now()

	resp, err := l.inner.Generate(ctx, req)

	e := Entry{
		Time:      start,
		Purpose:   PurposeFrom(ctx),
		Model:     l.inner.ModelID(),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		e.Model = resp.Model
		e.InputTokens = resp.Usage.InputTokens
		e.OutputTokens = resp.Usage.OutputTokens
		if c := LookupCost(e.Model); c != nil {
			e.CostUSD = c.Cost(e.InputTokens, e.OutputTokens)
		}
	}
	if err != nil {
		e.Error = err.Error()
	}

	// Logging failures never fail the request itself.
	if logErr := l.log.Append(e); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

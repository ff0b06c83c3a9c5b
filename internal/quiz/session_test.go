package quiz

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/abhisek/learnix/internal/mastery"
	"github.com/abhisek/learnix/internal/quizbank"
)

func threeQuestions() []quizbank.Question {
	return []quizbank.Question{
		{
			Kind:    quizbank.KindMultipleChoice,
			Prompt:  "What is 2+2?",
			Options: []string{"A) 3", "B) 4", "C) 5", "D) 22"},
			Correct: "B",
		},
		{
			Kind:    quizbank.KindTrueFalse,
			Prompt:  "7 is prime.",
			Options: []string{"True", "False"},
			Correct: "True",
		},
		{
			Kind:    quizbank.KindMultipleChoice,
			Prompt:  "What is 3*3?",
			Options: []string{"A) 6", "B) 9", "C) 12", "D) 33"},
			Correct: "B",
		},
	}
}

type recordCall struct {
	topic   string
	score   float64
	minutes int
}

type fakeRecorder struct {
	calls []recordCall
	err   error
}

func (f *fakeRecorder) RecordActivity(topic string, score *float64, minutes int) error {
	if f.err != nil {
		return f.err
	}
	f.calls = append(f.calls, recordCall{topic, *score, minutes})
	return nil
}

func startedSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession("Arithmetic", mastery.LevelBeginner, threeQuestions())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if s.Phase() != PhaseCreated {
		t.Fatalf("Phase = %d, want created", s.Phase())
	}
	s.Start(time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC))
	return s
}

func TestSession_TwoOfThreeCorrect(t *testing.T) {
	s := startedSession(t)

	answers := []struct {
		input   string
		correct bool
	}{
		{"b", true},
		{"F", false}, // wrong on purpose
		{"B", true},
	}
	for i, a := range answers {
		ans, err := s.Submit(a.input)
		if err != nil {
			t.Fatalf("Submit(%q): %v", a.input, err)
		}
		if ans.Correct != a.correct {
			t.Errorf("answer %d Correct = %v, want %v", i, ans.Correct, a.correct)
		}
	}

	if s.Phase() != PhaseCompleted {
		t.Fatalf("Phase = %d, want completed", s.Phase())
	}
	if got := s.Score(); math.Abs(got-66.666666) > 0.001 {
		t.Errorf("Score = %v, want 66.67 (2/3)", got)
	}
	if got := s.EstimatedMinutes(); got != 6 {
		t.Errorf("EstimatedMinutes = %d, want 6", got)
	}

	rec := &fakeRecorder{}
	if err := s.Record(rec); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := s.Record(rec); err != nil {
		t.Fatalf("second Record: %v", err)
	}
	if len(rec.calls) != 1 {
		t.Fatalf("recorded %d activities, want exactly 1", len(rec.calls))
	}
	call := rec.calls[0]
	if call.topic != "Arithmetic" || call.minutes != 6 {
		t.Errorf("recorded (%s, %d min), want (Arithmetic, 6 min)", call.topic, call.minutes)
	}
	if math.Abs(call.score-s.Score()) > 1e-9 {
		t.Errorf("recorded score %v, want %v", call.score, s.Score())
	}
}

func TestSession_InvalidAnswerDoesNotAdvance(t *testing.T) {
	s := startedSession(t)

	for _, input := range []string{"", "E", "42", "yes"} {
		if _, err := s.Submit(input); !errors.Is(err, ErrInvalidAnswer) {
			t.Errorf("Submit(%q) err = %v, want ErrInvalidAnswer", input, err)
		}
	}
	if s.Index() != 0 {
		t.Errorf("Index = %d after invalid input, want 0", s.Index())
	}
	if s.CorrectCount() != 0 {
		t.Errorf("CorrectCount = %d after invalid input, want 0", s.CorrectCount())
	}

	// A valid answer still works on the same question.
	ans, err := s.Submit("B")
	if err != nil {
		t.Fatalf("Submit after invalid input: %v", err)
	}
	if !ans.Correct {
		t.Error("valid answer after invalid input graded wrong")
	}
}

func TestSession_AbandonRecordsNothing(t *testing.T) {
	s := startedSession(t)
	if _, err := s.Submit("B"); err != nil {
		t.Fatal(err)
	}
	s.Abandon()

	if s.Phase() != PhaseAbandoned {
		t.Fatalf("Phase = %d, want abandoned", s.Phase())
	}
	rec := &fakeRecorder{}
	if err := s.Record(rec); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if len(rec.calls) != 0 {
		t.Errorf("abandoned session recorded %d activities, want 0", len(rec.calls))
	}
	if s.Current() != nil {
		t.Error("Current returned a question after abandonment")
	}
}

func TestSession_RecordRetriesAfterError(t *testing.T) {
	s := startedSession(t)
	for _, in := range []string{"B", "True", "B"} {
		if _, err := s.Submit(in); err != nil {
			t.Fatal(err)
		}
	}

	rec := &fakeRecorder{err: errors.New("disk full")}
	if err := s.Record(rec); err == nil {
		t.Fatal("Record succeeded despite recorder error")
	}

	// The failure must not mark the session as recorded.
	rec.err = nil
	if err := s.Record(rec); err != nil {
		t.Fatalf("retry Record: %v", err)
	}
	if len(rec.calls) != 1 {
		t.Errorf("recorded %d activities after retry, want 1", len(rec.calls))
	}
}

func TestNewSession_NoQuestions(t *testing.T) {
	if _, err := NewSession("Empty", mastery.LevelBeginner, nil); !errors.Is(err, quizbank.ErrNoQuestions) {
		t.Errorf("err = %v, want ErrNoQuestions", err)
	}
}

func TestNormalizeAnswer(t *testing.T) {
	mc := quizbank.Question{Kind: quizbank.KindMultipleChoice, Options: []string{"A) x", "B) y", "C) z"}, Correct: "C"}
	tf := quizbank.Question{Kind: quizbank.KindTrueFalse, Options: []string{"True", "False"}, Correct: "False"}

	tests := []struct {
		q       quizbank.Question
		in      string
		want    string
		wantErr bool
	}{
		{mc, "c", "C", false},
		{mc, " B ", "B", false},
		{mc, "D", "", true}, // beyond option range
		{mc, "BB", "", true},
		{tf, "t", "True", false},
		{tf, "FALSE", "False", false},
		{tf, "f", "False", false},
		{tf, "no", "", true},
	}
	for _, tt := range tests {
		got, err := NormalizeAnswer(tt.q, tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidAnswer) {
				t.Errorf("NormalizeAnswer(%q) err = %v, want ErrInvalidAnswer", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("NormalizeAnswer(%q) = %q, %v, want %q", tt.in, got, err, tt.want)
		}
	}
}

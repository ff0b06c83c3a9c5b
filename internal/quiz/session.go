package quiz

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/learnix/internal/mastery"
	"github.com/abhisek/learnix/internal/quizbank"
)

// minutesPerQuestion is the study time credited for each question.
const minutesPerQuestion = 2

// Phase represents the lifecycle stage of a quiz session.
type Phase int

const (
	PhaseCreated    Phase = iota // Questions drawn, not yet started
	PhaseInProgress              // Serving questions
	PhaseCompleted               // All questions answered
	PhaseAbandoned               // Quit before the last answer
)

// Recorder persists the outcome of a completed session. Satisfied by
// *learner.Store.
type Recorder interface {
	RecordActivity(topic string, score *float64, studyMinutes int) error
}

// Answer is the outcome of one submitted answer.
type Answer struct {
	Normalized  string // canonical form of the input
	Correct     bool
	Expected    string // canonical correct answer
	Explanation string
	Done        bool // true when this was the last question
}

// Session runs one quiz from creation through completion or
// abandonment. Answers advance an index through a fixed question list;
// input that fails normalization leaves the session untouched.
type Session struct {
	ID        string
	Topic     string
	Level     mastery.Level
	Questions []quizbank.Question
	StartTime time.Time

	phase    Phase
	index    int
	correct  int
	recorded bool
}

// NewSession draws questions for the topic and returns a session in
// the created phase. ErrNoQuestions is returned when the bank has
// nothing for the topic and generic fallback is disabled upstream.
func NewSession(topic string, level mastery.Level, questions []quizbank.Question) (*Session, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("quiz for %q: %w", topic, quizbank.ErrNoQuestions)
	}
	return &Session{
		ID:        uuid.New().String(),
		Topic:     topic,
		Level:     level,
		Questions: questions,
	}, nil
}

// Start moves the session into the in-progress phase. No-op unless the
// session is freshly created.
func (s *Session) Start(now time.Time) {
	if s.phase != PhaseCreated {
		return
	}
	s.phase = PhaseInProgress
	s.StartTime = now
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// Current returns the question awaiting an answer, or nil when the
// session is not in progress.
func (s *Session) Current() *quizbank.Question {
	if s.phase != PhaseInProgress || s.index >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.index]
}

// Index returns the zero-based position of the current question.
func (s *Session) Index() int { return s.index }

// CorrectCount returns the number of correct answers so far.
func (s *Session) CorrectCount() int { return s.correct }

// Submit grades one answer and advances to the next question. Input
// that fails normalization returns ErrInvalidAnswer and the session
// state is unchanged, so the same question is asked again. Answering
// the last question moves the session to the completed phase.
func (s *Session) Submit(raw string) (Answer, error) {
	q := s.Current()
	if q == nil {
		return Answer{}, fmt.Errorf("no question awaiting an answer")
	}

	normalized, err := NormalizeAnswer(*q, raw)
	if err != nil {
		return Answer{}, err
	}

	ans := Answer{
		Normalized:  normalized,
		Correct:     normalized == q.Correct,
		Expected:    q.Correct,
		Explanation: q.Explanation,
	}
	if ans.Correct {
		s.correct++
	}
	s.index++
	if s.index == len(s.Questions) {
		s.phase = PhaseCompleted
		ans.Done = true
	}
	return ans, nil
}

// Abandon quits the session without recording anything. Only an
// in-progress or created session can be abandoned.
func (s *Session) Abandon() {
	if s.phase == PhaseCreated || s.phase == PhaseInProgress {
		s.phase = PhaseAbandoned
	}
}

// Score returns the percentage of correct answers, unrounded.
func (s *Session) Score() float64 {
	if len(s.Questions) == 0 {
		return 0
	}
	return float64(s.correct) / float64(len(s.Questions)) * 100
}

// EstimatedMinutes is the study time credited for the session.
func (s *Session) EstimatedMinutes() int {
	return len(s.Questions) * minutesPerQuestion
}

// Record persists the session outcome through the recorder. Only a
// completed session is recorded, and only once: a second call after a
// successful one is a no-op, so a session cannot double-count.
func (s *Session) Record(rec Recorder) error {
	if s.phase != PhaseCompleted || s.recorded {
		return nil
	}
	score := s.Score()
	if err := rec.RecordActivity(s.Topic, &score, s.EstimatedMinutes()); err != nil {
		return fmt.Errorf("record quiz result: %w", err)
	}
	s.recorded = true
	return nil
}

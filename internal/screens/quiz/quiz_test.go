package quiz

import (
	"math/rand/v2"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/learnix/internal/learner"
	"github.com/abhisek/learnix/internal/quizbank"
	"github.com/abhisek/learnix/internal/quizgen"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testModel(t *testing.T, topic string) (*Model, *learner.Store) {
	t.Helper()
	store, err := learner.Open("tester", learner.Paths{Root: t.TempDir()})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	gen := quizgen.New(nil, quizbank.Default(), quizgen.DefaultConfig())
	rng := rand.New(rand.NewPCG(7, 7))

	m := New(store, gen, rng, topic, 3)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m, store
}

// startQuiz drives the model through generation into the first question.
func startQuiz(t *testing.T, m *Model) {
	t.Helper()
	cmd := m.Init()
	if cmd == nil {
		t.Fatal("expected a generation command")
	}
	m.Update(cmd())
	if m.phase != phaseQuestion {
		t.Fatalf("phase = %d, want question", m.phase)
	}
}

// answerCorrectly selects the right option and confirms the feedback.
func answerCorrectly(t *testing.T, m *Model) {
	t.Helper()
	m.choice.Selected = m.choice.CorrectIndex
	m.Update(specialKey(tea.KeyEnter))
	if m.phase != phaseFeedback {
		t.Fatalf("phase = %d, want feedback", m.phase)
	}
	if !m.last.Correct {
		t.Fatal("expected the selected option to grade correct")
	}
	m.Update(keyPress(' '))
}

func TestQuiz_CompletionRecordsOnce(t *testing.T) {
	m, store := testModel(t, "Machine Learning")
	startQuiz(t, m)

	if len(m.session.Questions) != 3 {
		t.Fatalf("questions = %d, want 3", len(m.session.Questions))
	}

	for i := 0; i < 3; i++ {
		answerCorrectly(t, m)
	}

	if m.phase != phaseResults {
		t.Fatalf("phase = %d, want results", m.phase)
	}
	if m.recordErr != nil {
		t.Fatalf("record error: %v", m.recordErr)
	}

	entries := store.Progress().QuizScores["Machine Learning"]
	if len(entries) != 1 {
		t.Fatalf("recorded %d entries, want exactly 1", len(entries))
	}
	if entries[0].Score != 100 {
		t.Errorf("recorded score = %v, want 100", entries[0].Score)
	}
	if store.Progress().StudyMinutes != 6 {
		t.Errorf("study minutes = %d, want 6", store.Progress().StudyMinutes)
	}

	// Any key on the results view exits.
	_, cmd := m.Update(keyPress(' '))
	if cmd == nil {
		t.Error("expected quit command from results view")
	}
}

func TestQuiz_WrongAnswerShowsExpected(t *testing.T) {
	m, _ := testModel(t, "Machine Learning")
	startQuiz(t, m)

	correct := m.choice.CorrectIndex
	m.choice.Selected = (correct + 1) % len(m.choice.Options)
	m.Update(specialKey(tea.KeyEnter))

	if m.phase != phaseFeedback {
		t.Fatalf("phase = %d, want feedback", m.phase)
	}
	if m.last.Correct {
		t.Error("expected a wrong answer")
	}
	if m.last.Expected == "" {
		t.Error("expected the correct answer to be surfaced")
	}
	if m.session.CorrectCount() != 0 {
		t.Errorf("correct count = %d, want 0", m.session.CorrectCount())
	}
}

func TestQuiz_AbandonRecordsNothing(t *testing.T) {
	m, store := testModel(t, "Machine Learning")
	startQuiz(t, m)

	m.Update(specialKey(tea.KeyEscape))
	if m.phase != phaseConfirmQuit {
		t.Fatalf("phase = %d, want confirm quit", m.phase)
	}

	_, cmd := m.Update(keyPress('y'))
	if cmd == nil {
		t.Error("expected quit command after confirmation")
	}

	if len(store.Progress().QuizScores) != 0 {
		t.Errorf("abandoned quiz recorded scores: %v", store.Progress().QuizScores)
	}
	if store.Progress().StudyMinutes != 0 {
		t.Errorf("abandoned quiz credited study time: %d", store.Progress().StudyMinutes)
	}
}

func TestQuiz_ConfirmQuitDismiss(t *testing.T) {
	m, _ := testModel(t, "Machine Learning")
	startQuiz(t, m)

	m.Update(specialKey(tea.KeyEscape))
	m.Update(keyPress('n'))
	if m.phase != phaseQuestion {
		t.Fatalf("phase = %d, want question after dismissing", m.phase)
	}
}

func TestQuiz_TopicPrompt(t *testing.T) {
	m, _ := testModel(t, "")
	if m.phase != phaseIntro {
		t.Fatalf("phase = %d, want intro", m.phase)
	}

	m.input.Model.SetValue("Python")
	_, cmd := m.Update(specialKey(tea.KeyEnter))
	if m.phase != phaseLoading {
		t.Fatalf("phase = %d, want loading", m.phase)
	}
	if cmd == nil {
		t.Fatal("expected a generation command")
	}

	m.Update(cmd())
	if m.phase != phaseQuestion {
		t.Fatalf("phase = %d, want question", m.phase)
	}
	if m.session.Topic != "Python" {
		t.Errorf("topic = %q, want Python", m.session.Topic)
	}
}

func TestQuiz_EmptyTopicDoesNotStart(t *testing.T) {
	m, _ := testModel(t, "")
	_, cmd := m.Update(specialKey(tea.KeyEnter))
	if m.phase != phaseIntro || cmd != nil {
		t.Error("empty topic input must stay on the prompt")
	}
}

func TestAnswerFor(t *testing.T) {
	mc := quizbank.Question{
		Kind:    quizbank.KindMultipleChoice,
		Options: []string{"A) one", "B) two", "C) three", "D) four"},
		Correct: "C",
	}
	tf := quizbank.Question{
		Kind:    quizbank.KindTrueFalse,
		Options: []string{"True", "False"},
		Correct: "False",
	}

	if got := answerFor(mc, 2); got != "C" {
		t.Errorf("answerFor(mc, 2) = %q, want C", got)
	}
	if got := answerFor(tf, 1); got != "False" {
		t.Errorf("answerFor(tf, 1) = %q, want False", got)
	}
	if got := correctIndex(mc); got != 2 {
		t.Errorf("correctIndex(mc) = %d, want 2", got)
	}
	if got := correctIndex(tf); got != 1 {
		t.Errorf("correctIndex(tf) = %d, want 1", got)
	}
}

func TestQuickSelect(t *testing.T) {
	mc := []string{"A) one", "B) two", "C) three", "D) four"}
	tf := []string{"True", "False"}

	tests := []struct {
		key    string
		opts   []string
		want   int
		wantOK bool
	}{
		{"1", mc, 0, true},
		{"4", mc, 3, true},
		{"5", mc, 0, false},
		{"a", mc, 0, true},
		{"d", mc, 3, true},
		{"A", mc, 0, true},
		{"D", mc, 3, true},
		{"c", tf, 0, false},
		{"t", tf, 0, true},
		{"f", tf, 1, true},
		{"T", tf, 0, true},
		{"F", tf, 1, true},
		{"t", mc, 0, false},
		{"x", mc, 0, false},
		{"enter", mc, 0, false},
	}
	for _, tt := range tests {
		got, ok := quickSelect(tt.key, tt.opts)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("quickSelect(%q, %v) = (%d, %v), want (%d, %v)",
				tt.key, tt.opts, got, ok, tt.want, tt.wantOK)
		}
	}
}

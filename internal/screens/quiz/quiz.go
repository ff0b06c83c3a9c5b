package quiz

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/learnix/internal/learner"
	"github.com/abhisek/learnix/internal/quiz"
	"github.com/abhisek/learnix/internal/quizbank"
	"github.com/abhisek/learnix/internal/quizgen"
	"github.com/abhisek/learnix/internal/ui/components"
	"github.com/abhisek/learnix/internal/ui/layout"
)

// phase tracks which view the screen is showing.
type phase int

const (
	phaseIntro phase = iota // asking for a topic
	phaseLoading
	phaseQuestion
	phaseFeedback
	phaseConfirmQuit
	phaseResults
	phaseError
)

// Model is the Bubble Tea model for an interactive quiz. It drives a
// quiz.Session through its lifecycle and records the outcome exactly
// once on completion; abandoning records nothing.
type Model struct {
	store *learner.Store
	gen   *quizgen.Generator
	rng   *rand.Rand

	topic string
	count int

	phase     phase
	input     components.TextInput
	choice    components.Choice
	session   *quiz.Session
	last      quiz.Answer
	source    quizgen.Source
	errMsg    string
	recordErr error

	width  int
	height int
}

// New creates the quiz screen. An empty topic starts at the topic
// prompt; otherwise generation begins immediately.
func New(store *learner.Store, gen *quizgen.Generator, rng *rand.Rand, topic string, count int) *Model {
	m := &Model{
		store: store,
		gen:   gen,
		rng:   rng,
		topic: strings.TrimSpace(topic),
		count: count,
		input: components.NewTextInput("e.g. Machine Learning", false, 40),
	}
	if m.topic == "" {
		m.phase = phaseIntro
	} else {
		m.phase = phaseLoading
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	if m.phase == phaseLoading {
		return m.generate()
	}
	return m.input.Init()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case questionsMsg:
		return m.handleQuestions(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.abandon()
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}

	if m.phase == phaseIntro {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) handleQuestions(msg questionsMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.phase = phaseError
		m.errMsg = msg.Err.Error()
		return m, nil
	}

	session, err := quiz.NewSession(m.topic, m.store.Progress().Level(m.topic), msg.Questions)
	if err != nil {
		m.phase = phaseError
		m.errMsg = err.Error()
		return m, nil
	}
	session.Start(time.Now())

	m.session = session
	m.source = msg.Source
	m.setupChoice()
	m.phase = phaseQuestion
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch m.phase {
	case phaseIntro:
		switch key {
		case "esc":
			return m, tea.Quit
		case "enter":
			topic := strings.TrimSpace(m.input.Value())
			if topic == "" {
				return m, nil
			}
			m.topic = topic
			m.phase = phaseLoading
			return m, m.generate()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case phaseQuestion:
		switch key {
		case "esc":
			m.phase = phaseConfirmQuit
			return m, nil
		case "enter":
			return m.submit()
		}
		if idx, ok := quickSelect(key, m.currentOptions()); ok {
			m.choice.Selected = idx
			return m.submit()
		}
		var cmd tea.Cmd
		m.choice, cmd = m.choice.Update(msg)
		return m, cmd

	case phaseFeedback:
		return m.advance()

	case phaseConfirmQuit:
		switch key {
		case "y", "Y":
			m.abandon()
			return m, tea.Quit
		case "n", "N", "esc":
			m.phase = phaseQuestion
			return m, nil
		}
		return m, nil

	case phaseResults, phaseError:
		return m, tea.Quit
	}

	return m, nil
}

// submit grades the selected option and shows feedback.
func (m *Model) submit() (tea.Model, tea.Cmd) {
	q := m.session.Current()
	if q == nil {
		return m, nil
	}

	ans, err := m.session.Submit(answerFor(*q, m.choice.Selected))
	if err != nil {
		// Selector input always normalizes; stay on the question.
		return m, nil
	}

	m.last = ans
	m.choice.Submitted = true
	m.choice.ChosenIndex = m.choice.Selected
	m.phase = phaseFeedback
	return m, nil
}

// advance moves past the feedback view: next question, or results when
// the session just completed.
func (m *Model) advance() (tea.Model, tea.Cmd) {
	if m.last.Done {
		m.recordErr = m.session.Record(m.store)
		m.phase = phaseResults
		return m, nil
	}
	m.setupChoice()
	m.phase = phaseQuestion
	return m, nil
}

// abandon quits the session without recording anything.
func (m *Model) abandon() {
	if m.session != nil {
		m.session.Abandon()
	}
}

func (m *Model) setupChoice() {
	q := m.session.Current()
	if q == nil {
		return
	}
	m.choice = components.NewChoice(q.Options, correctIndex(*q))
}

func (m *Model) currentOptions() []string {
	if m.session == nil {
		return nil
	}
	q := m.session.Current()
	if q == nil {
		return nil
	}
	return q.Options
}

// generate produces the question set asynchronously.
func (m *Model) generate() tea.Cmd {
	topic := m.topic
	count := m.count
	level := m.store.Progress().Level(topic)
	interests := m.store.Profile().Interests
	return func() tea.Msg {
		qs, source, err := m.gen.Generate(context.Background(), m.rng, quizgen.Input{
			Topic:     topic,
			Level:     level,
			Count:     count,
			Interests: interests,
		})
		return questionsMsg{Questions: qs, Source: source, Err: err}
	}
}

// answerFor maps a selected option index to the input Submit expects:
// the option letter for multiple choice, the option word for
// true/false.
func answerFor(q quizbank.Question, idx int) string {
	if q.Kind == quizbank.KindTrueFalse {
		if idx >= 0 && idx < len(q.Options) {
			return q.Options[idx]
		}
		return ""
	}
	return string(rune('A' + idx))
}

// correctIndex locates the correct option for highlighting.
func correctIndex(q quizbank.Question) int {
	if q.Kind == quizbank.KindTrueFalse {
		for i, opt := range q.Options {
			if opt == q.Correct {
				return i
			}
		}
		return 0
	}
	if len(q.Correct) == 1 {
		return int(q.Correct[0] - 'A')
	}
	return 0
}

// quickSelect maps number and letter keys straight to an option index.
// Letters match case-insensitively; t and f jump to the True/False
// options when the question has them.
func quickSelect(key string, opts []string) (int, bool) {
	if len(key) != 1 || len(opts) == 0 {
		return 0, false
	}
	c := key[0]
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	if c == 't' || c == 'f' {
		want := "True"
		if c == 'f' {
			want = "False"
		}
		for i, opt := range opts {
			if opt == want {
				return i, true
			}
		}
	}
	var idx int
	switch {
	case c >= '1' && c <= '9':
		idx = int(c - '1')
	case c >= 'a' && c <= 'd':
		idx = int(c - 'a')
	default:
		return 0, false
	}
	if idx >= len(opts) {
		return 0, false
	}
	return idx, true
}

// KeyHints returns the footer hints for the current phase.
func (m *Model) KeyHints() []layout.KeyHint {
	switch m.phase {
	case phaseIntro:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Cancel"},
		}
	case phaseQuestion:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Quit"},
		}
	case phaseFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	case phaseConfirmQuit:
		return []layout.KeyHint{
			{Key: "Y", Description: "Quit quiz"},
			{Key: "N", Description: "Keep going"},
		}
	default:
		return []layout.KeyHint{
			{Key: "any key", Description: "Exit"},
		}
	}
}

func (m *Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	ledger := m.store.Progress()
	header := layout.RenderHeader("Quiz", ledger.Streak, studyHours(ledger.StudyMinutes), m.width)
	footer := layout.RenderFooter(m.KeyHints(), m.width)
	content := m.renderContent(m.width)

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func studyHours(minutes int) float64 {
	return float64(minutes) / 60
}

// Run starts the quiz program and blocks until it exits.
func Run(store *learner.Store, gen *quizgen.Generator, rng *rand.Rand, topic string, count int) error {
	p := tea.NewProgram(New(store, gen, rng, topic, count))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running quiz:", err)
		return err
	}
	return nil
}

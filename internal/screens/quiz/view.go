package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnix/internal/quizgen"
	"github.com/abhisek/learnix/internal/ui/components"
	"github.com/abhisek/learnix/internal/ui/theme"
)

func (m *Model) renderContent(width int) string {
	switch m.phase {
	case phaseIntro:
		return m.renderIntro(width)
	case phaseLoading:
		return renderLoading(width)
	case phaseQuestion:
		return m.renderQuestion(width)
	case phaseFeedback:
		return m.renderFeedback(width)
	case phaseConfirmQuit:
		return renderConfirmQuit(width)
	case phaseResults:
		return m.renderResults(width)
	case phaseError:
		return renderError(width, m.errMsg)
	}
	return ""
}

func (m *Model) renderIntro(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("What would you like to practice?"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		"Topic: "+m.input.View()))

	return b.String()
}

func (m *Model) renderQuestion(width int) string {
	q := m.session.Current()
	if q == nil {
		return renderLoading(width)
	}

	var b strings.Builder

	// Topic and running score line.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Topic: %s", m.session.Topic))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d  %s %d",
			m.session.Index()+1,
			len(m.session.Questions),
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			m.session.CorrectCount(),
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	bar := components.NewProgressBar("  ", float64(m.session.Index())/float64(len(m.session.Questions)), false, width-4)
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	// Question text (centered).
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Prompt))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, m.choice.View()))

	return b.String()
}

func (m *Model) renderFeedback(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	if m.last.Correct {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Correct answer: %s", m.last.Expected)))
	}

	b.WriteString("\n\n")

	if m.last.Explanation != "" {
		exp := lipgloss.NewStyle().
			Width(minInt(width-8, 70)).
			Foreground(theme.Text).
			Render(m.last.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Score so far: %d/%d", m.session.CorrectCount(), m.session.Index())))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

func (m *Model) renderResults(width int) string {
	score := m.session.Score()

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Quiz complete!"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("Final score: %d/%d (%.1f%%)",
			m.session.CorrectCount(), len(m.session.Questions), score)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Study time credited: %d min    Mastery: %s",
			m.session.EstimatedMinutes(),
			m.store.Progress().Level(m.session.Topic).Title())))
	b.WriteString("\n")
	if m.source == quizgen.SourceBank {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Questions drawn from the built-in bank"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	feedbackStyle := lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Bold(true)
	switch {
	case score >= 90:
		b.WriteString(feedbackStyle.Foreground(theme.Success).Render("Outstanding! You've mastered this topic!"))
	case score >= 80:
		b.WriteString(feedbackStyle.Foreground(theme.Success).Render("Excellent work! You have a strong understanding!"))
	case score >= 70:
		b.WriteString(feedbackStyle.Foreground(theme.Accent).Render("Good job! You're getting there!"))
	case score >= 60:
		b.WriteString(feedbackStyle.Foreground(theme.Accent).Render("Not bad! Keep practicing to improve!"))
	default:
		b.WriteString(feedbackStyle.Foreground(theme.Error).Render("Keep studying! Practice makes perfect!"))
	}
	b.WriteString("\n\n")

	recs := recommendations(m.session.Topic, score)
	recStyle := lipgloss.NewStyle().Foreground(theme.Text)
	var recBlock strings.Builder
	recBlock.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Recommendations"))
	recBlock.WriteString("\n")
	for _, r := range recs {
		recBlock.WriteString(recStyle.Render("• " + r))
		recBlock.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, recBlock.String()))

	if m.recordErr != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("Could not save your result: %v", m.recordErr)))
	}

	return b.String()
}

// recommendations mirrors the tiered advice shown after every quiz.
func recommendations(topic string, score float64) []string {
	var recs []string
	switch {
	case score < 70:
		recs = append(recs,
			fmt.Sprintf("Review the basic concepts of %s", topic),
			"Practice more exercises",
			"Consider getting explanations for difficult concepts")
	case score < 90:
		recs = append(recs,
			"You're doing well! Try more advanced topics",
			"Focus on areas where you made mistakes")
	default:
		recs = append(recs,
			"Excellent mastery! Consider advanced topics",
			"Help others or teach the concepts you've learned")
	}
	recs = append(recs, "Take regular quizzes to maintain your knowledge")
	return recs
}

func renderConfirmQuit(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Quit this quiz?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Nothing will be recorded."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Yes, quit"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Preparing your quiz...")
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to exit.", errMsg))
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

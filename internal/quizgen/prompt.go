package quizgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/learnix/internal/mastery"
)

const systemPrompt = `You are a tutor creating quiz questions for a self-directed learner.

Rules:
- Generate quiz questions for the given topic at the given difficulty level.
- Use plain text. No LaTeX, no markdown formatting inside questions or options.
- Each question must be self-contained and answerable without external material.
- For multiple-choice, provide exactly 4 options prefixed "A) " through "D) " where exactly one is correct. Distractors should reflect plausible misunderstandings, not random values.
- For true-false, the options are exactly ["True", "False"].
- Mix the two formats; most questions should be multiple-choice.
- The explanation should teach, in one or two sentences, why the correct answer is right.`

// buildUserMessage constructs the user message for quiz generation.
func buildUserMessage(topic string, level mastery.Level, count int, interests []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", topic)
	fmt.Fprintf(&b, "Difficulty level: %s\n", levelLabel(level))
	fmt.Fprintf(&b, "Number of questions: %d\n", count)

	if len(interests) > 0 {
		fmt.Fprintf(&b, "\nLearner interests (use for examples where natural): %s\n",
			strings.Join(interests, ", "))
	}

	return b.String()
}

func levelLabel(level mastery.Level) string {
	if level == mastery.LevelNone {
		return string(mastery.LevelBeginner)
	}
	return string(level)
}

package quiz

import (
	"github.com/abhisek/learnix/internal/quizbank"
	"github.com/abhisek/learnix/internal/quizgen"
)

// questionsMsg is sent when question generation finishes.
type questionsMsg struct {
	Questions []quizbank.Question
	Source    quizgen.Source
	Err       error
}

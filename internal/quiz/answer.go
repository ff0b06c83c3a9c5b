package quiz

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/learnix/internal/quizbank"
)

// ErrInvalidAnswer means the raw input could not be interpreted as an
// answer to the current question. The session does not advance.
var ErrInvalidAnswer = errors.New("invalid answer")

// NormalizeAnswer canonicalizes raw learner input for a question.
// Matching is case-insensitive; true/false questions also accept the
// single-letter abbreviations T and F. Multiple-choice answers must be
// one of the option letters. The canonical form is the option letter
// for multiple choice and "True"/"False" for true/false.
func NormalizeAnswer(q quizbank.Question, raw string) (string, error) {
	in := strings.ToUpper(strings.TrimSpace(raw))
	if in == "" {
		return "", fmt.Errorf("%w: empty input", ErrInvalidAnswer)
	}

	switch q.Kind {
	case quizbank.KindTrueFalse:
		switch in {
		case "TRUE", "T":
			return "True", nil
		case "FALSE", "F":
			return "False", nil
		}
		return "", fmt.Errorf("%w: %q, want True/False or T/F", ErrInvalidAnswer, raw)
	default:
		if len(in) == 1 {
			letter := rune(in[0])
			if letter >= 'A' && int(letter-'A') < len(q.Options) {
				return string(letter), nil
			}
		}
		last := rune('A' + len(q.Options) - 1)
		return "", fmt.Errorf("%w: %q, want a letter A-%c", ErrInvalidAnswer, raw, last)
	}
}

// CheckAnswer reports whether raw input answers the question correctly.
// Input that fails normalization is simply wrong.
func CheckAnswer(q quizbank.Question, raw string) bool {
	normalized, err := NormalizeAnswer(q, raw)
	if err != nil {
		return false
	}
	return normalized == q.Correct
}

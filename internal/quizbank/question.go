package quizbank

import "errors"

// Kind is the question format.
type Kind string

const (
	KindMultipleChoice Kind = "multiple-choice"
	KindTrueFalse      Kind = "true-false"
)

// ErrNoQuestions means no questions could be obtained for a topic.
var ErrNoQuestions = errors.New("no questions available")

// Question is one quiz question. Immutable once drawn from the bank.
type Question struct {
	Kind        Kind     `json:"type"`
	Prompt      string   `json:"question"`
	Options     []string `json:"options"`
	Correct     string   `json:"correct"` // option letter for MC, "True"/"False" for TF
	Explanation string   `json:"explanation"`
}

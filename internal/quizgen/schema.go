package quizgen

import "github.com/abhisek/learnix/internal/llm"

// QuizSchema defines the JSON schema for LLM quiz generation responses.
var QuizSchema = &llm.Schema{
	Name:        "quiz-questions",
	Description: "A set of quiz questions for one topic at one difficulty level",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type": map[string]any{
							"type":        "string",
							"enum":        []any{"multiple-choice", "true-false"},
							"description": "Question format",
						},
						"question": map[string]any{
							"type":        "string",
							"description": "The question prompt shown to the learner, in plain text",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": `Exactly 4 options prefixed "A) ".."D) " for multiple-choice, or ["True","False"]`,
						},
						"correct": map[string]any{
							"type":        "string",
							"description": `The option letter (A-D) for multiple-choice, "True" or "False" for true-false`,
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "One or two sentences explaining the correct answer",
						},
					},
					"required":             []any{"type", "question", "options", "correct", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

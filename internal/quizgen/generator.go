package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/abhisek/learnix/internal/llm"
	"github.com/abhisek/learnix/internal/mastery"
	"github.com/abhisek/learnix/internal/quizbank"
)

// Source tells the caller where a quiz came from.
type Source string

const (
	SourceLLM  Source = "llm"
	SourceBank Source = "bank"
)

// Config holds generation limits.
type Config struct {
	MaxTokens   int
	Temperature float64

	// ArchiveDir is where generated quizzes are saved for later reuse.
	// Empty disables archiving. Archive failures never fail generation.
	ArchiveDir string
}

// DefaultConfig returns generation limits suitable for a short quiz.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.7,
	}
}

// Input describes the quiz to generate.
type Input struct {
	Topic     string
	Level     mastery.Level
	Count     int
	Interests []string
}

// Generator produces quiz questions, LLM-first with the built-in bank
// as fallback. A nil provider always serves from the bank.
type Generator struct {
	provider llm.Provider
	bank     quizbank.Bank
	config   Config
}

// New creates a Generator.
func New(provider llm.Provider, bank quizbank.Bank, cfg Config) *Generator {
	return &Generator{provider: provider, bank: bank, config: cfg}
}

// quizOutput is the raw LLM response before validation.
type quizOutput struct {
	Questions []quizbank.Question `json:"questions"`
}

// Generate returns questions for the input, and where they came from.
// Any LLM failure (transport, malformed payload, validation) falls
// back to the bank, which always yields questions via its generic
// fallback, so Generate never returns an empty, nil-error result.
func (g *Generator) Generate(ctx context.Context, rng *rand.Rand, input Input) ([]quizbank.Question, Source, error) {
	if input.Count <= 0 {
		input.Count = 5
	}

	if g.provider != nil {
		qs, err := g.generateLLM(ctx, input)
		if err == nil {
			g.archive(input, qs)
			return qs, SourceLLM, nil
		}
	}

	return g.bank.Select(rng, input.Topic, input.Count, input.Level), SourceBank, nil
}

func (g *Generator) generateLLM(ctx context.Context, input Input) ([]quizbank.Question, error) {
	ctx = llm.WithPurpose(ctx, "quiz-generation")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input.Topic, input.Level, input.Count, input.Interests)},
		},
		Schema:      QuizSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw quizOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}
	if len(raw.Questions) == 0 {
		return nil, fmt.Errorf("LLM returned no questions")
	}

	for i, q := range raw.Questions {
		if err := validateQuestion(q); err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
	}

	if len(raw.Questions) > input.Count {
		raw.Questions = raw.Questions[:input.Count]
	}
	return raw.Questions, nil
}

// validateQuestion checks one generated question beyond what the JSON
// schema can express.
func validateQuestion(q quizbank.Question) error {
	if strings.TrimSpace(q.Prompt) == "" {
		return fmt.Errorf("empty question text")
	}
	switch q.Kind {
	case quizbank.KindMultipleChoice:
		if len(q.Options) != 4 {
			return fmt.Errorf("multiple-choice needs 4 options, got %d", len(q.Options))
		}
		if len(q.Correct) != 1 || q.Correct[0] < 'A' || q.Correct[0] > 'D' {
			return fmt.Errorf("correct must be a letter A-D, got %q", q.Correct)
		}
	case quizbank.KindTrueFalse:
		if len(q.Options) != 2 || q.Options[0] != "True" || q.Options[1] != "False" {
			return fmt.Errorf("true/false needs options [True, False], got %v", q.Options)
		}
		if q.Correct != "True" && q.Correct != "False" {
			return fmt.Errorf("correct must be True or False, got %q", q.Correct)
		}
	default:
		return fmt.Errorf("unknown question type %q", q.Kind)
	}
	return nil
}

// archive saves a generated quiz to the archive dir, best effort.
func (g *Generator) archive(input Input, qs []quizbank.Question) {
	if g.config.ArchiveDir == "" {
		return
	}

	doc := struct {
		Topic     string              `json:"topic"`
		Level     mastery.Level       `json:"level"`
		Questions []quizbank.Question `json:"questions"`
	}{input.Topic, input.Level, qs}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return
	}
	name := fmt.Sprintf("%s_%s.json", topicSlug(input.Topic), uuid.New().String()[:8])
	if err := os.WriteFile(filepath.Join(g.config.ArchiveDir, name), data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to archive quiz: %v\n", err)
	}
}

func topicSlug(topic string) string {
	slug := strings.ToLower(strings.TrimSpace(topic))
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, slug)
	return strings.Trim(slug, "-")
}

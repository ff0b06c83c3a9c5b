package coach

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/abhisek/learnix/internal/learner"
	"github.com/abhisek/learnix/internal/llm"
	"github.com/abhisek/learnix/internal/mastery"
)

// Config holds generation limits for coach requests.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns limits suitable for prose responses.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.7,
	}
}

// Result is a coach response. Fallback is true when the deterministic
// branch produced the text because the LLM was unavailable or failed.
type Result struct {
	Text     string
	Fallback bool
}

// Service answers coaching requests LLM-first, falling back to
// deterministic text built from the learner's own data. Every method
// succeeds: a provider failure selects the fallback branch, never an
// error. A nil provider always takes the fallback.
type Service struct {
	provider llm.Provider
	store    *learner.Store
	config   Config

	// Now is the clock used for insights. Overridable in tests.
	Now func() time.Time
}

// New creates a coach Service over a learner's store.
func New(provider llm.Provider, store *learner.Store, cfg Config) *Service {
	return &Service{provider: provider, store: store, config: cfg, Now: time.Now}
}

// Explain produces a personalized explanation of a concept.
func (s *Service) Explain(ctx context.Context, topic, concept string) Result {
	profile, progress := s.store.Profile(), s.store.Progress()

	if text, ok := s.generate(ctx, "explanation", explainSystem,
		explainPrompt(profile, progress, topic, concept)); ok {
		return Result{Text: text}
	}
	return Result{Text: fallbackExplain(profile, topic, concept), Fallback: true}
}

// Analyze produces a progress analysis, optionally focused on a topic.
func (s *Service) Analyze(ctx context.Context, topic string) Result {
	profile, progress := s.store.Profile(), s.store.Progress()
	ins := s.insights()

	if text, ok := s.generate(ctx, "analysis", analyzeSystem,
		analyzePrompt(profile, progress, ins, topic)); ok {
		return Result{Text: text}
	}
	return Result{Text: fallbackAnalyze(progress, ins, topic), Fallback: true}
}

// WeeklyPlan builds a 7-day study plan over the focus topics. Empty
// topics default to the learner's first three current topics.
func (s *Service) WeeklyPlan(ctx context.Context, topics []string) Result {
	profile, progress := s.store.Profile(), s.store.Progress()
	if len(topics) == 0 {
		topics = progress.CurrentTopics
		if len(topics) > 3 {
			topics = topics[:3]
		}
	}

	if len(topics) > 0 {
		if text, ok := s.generate(ctx, "weekly-plan", planSystem,
			planPrompt(profile, s.insights(), topics)); ok {
			return Result{Text: text}
		}
	}
	return Result{Text: fallbackPlan(profile, topics), Fallback: true}
}

// Motivate produces an encouragement message. The rng seeds the
// fallback's random tip so callers can make it deterministic.
func (s *Service) Motivate(ctx context.Context, rng *rand.Rand) Result {
	ins := s.insights()

	if text, ok := s.generate(ctx, "motivation", motivateSystem, motivatePrompt(ins)); ok {
		return Result{Text: text}
	}
	return Result{Text: fallbackMotivate(ins, rng), Fallback: true}
}

// Techniques recommends study techniques, optionally for one topic.
func (s *Service) Techniques(ctx context.Context, topic string) Result {
	profile, progress := s.store.Profile(), s.store.Progress()

	if text, ok := s.generate(ctx, "techniques", techniquesSystem,
		techniquesPrompt(profile, progress, topic)); ok {
		return Result{Text: text}
	}
	return Result{Text: fallbackTechniques(profile, progress, topic), Fallback: true}
}

// generate runs one freeform LLM request. ok is false when the
// provider is absent, errored, or returned blank text.
func (s *Service) generate(ctx context.Context, purpose, system, user string) (string, bool) {
	if s.provider == nil {
		return "", false
	}
	ctx = llm.WithPurpose(ctx, purpose)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      system,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: user}},
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	})
	if err != nil {
		return "", false
	}

	text := strings.TrimSpace(string(resp.Content))
	if text == "" {
		return "", false
	}
	return text, true
}

func (s *Service) insights() mastery.Insights {
	return mastery.ComputeInsights(s.store.Progress().MasteryView(), s.Now())
}

package llm

import (
	"context"
	"fmt"
)

// NewProvider creates a Provider from configuration, wrapped with
// retry and request-log middleware. A nil log disables logging.
func NewProvider(ctx context.Context, cfg Config, log *RequestLog) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Middleware order: caller → retry → logging → base, so each
	// attempt is logged individually.
	var p Provider = base
	if log != nil {
		p = WithLogging(p, log)
	}
	return WithRetry(p, cfg.Retry), nil
}

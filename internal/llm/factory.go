package llm

import (
	"context"
	"fmt"

	"github.com/pmma/lifeskills/internal/logger"
)

// NewProviderFromEnv builds a Provider from LIFESKILLS_* environment
// configuration, falling back to probing the standard provider API key
// variables when no provider is explicitly configured.
func NewProviderFromEnv(ctx context.Context, log *logger.Logger) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, log)
}

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with logging middleware, plus retry
// when the config asks for more than one attempt.
func NewProvider(ctx context.Context, cfg Config, log *logger.Logger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Middleware chain: caller -> retry -> logging -> base.
	// Retry is opt-in; with a single configured attempt the chain
	// makes exactly one upstream call per Generate.
	wrapped := WithLogging(base, log)
	if cfg.Retry.MaxAttempts > 1 {
		wrapped = WithRetry(wrapped, cfg.Retry)
	}

	return wrapped, nil
}

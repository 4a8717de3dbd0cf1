package llm

import (
	"context"
	"fmt"

	"github.com/vishalmourya/car-saarthi/internal/config"
)

// NewFromConfig builds the providers for the two call paths. The chain
// provider issues the pipeline and fallback-extraction calls; the
// lookup provider additionally degrades to the raw REST endpoint when
// the SDK path fails.
func NewFromConfig(ctx context.Context, cfg *config.Config) (chain Provider, lookup Provider, err error) {
	switch cfg.LLM.Provider {
	case "openai":
		p, err := NewOpenAI(&cfg.OpenAI)
		if err != nil {
			return nil, nil, err
		}
		// No raw REST tier for OpenAI; both paths share the client.
		return p, p, nil
	case "gemini":
		g, err := NewGemini(ctx, &cfg.Gemini)
		if err != nil {
			return nil, nil, err
		}
		return g, &Fallback{Primary: g, Secondary: NewGeminiHTTP(&cfg.Gemini)}, nil
	default:
		return nil, nil, fmt.Errorf("unknown LLM provider %q", cfg.LLM.Provider)
	}
}

// Package llm holds the text generation provider clients and the prompt
// and response plumbing around them.
package llm

import (
	"context"
	"fmt"

	"github.com/OluRemiFour/kendra-backend/internal/config"
)

// Provider is a text generation backend. Complete sends one prompt and
// returns the raw model output.
type Provider interface {
	Name() string
	Complete(ctx context.Context, prompt string) (string, error)
}

// NewProvider builds the provider selected in the configuration.
func NewProvider(cfg config.LLM) (Provider, error) {
	switch cfg.Provider {
	case config.ProviderCerebras:
		return NewCerebrasProvider(cfg), nil
	case config.ProviderGemini:
		return NewGeminiProvider(cfg), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", cfg.Provider)
	}
}

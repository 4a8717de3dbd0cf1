package llm

import "context"

// Provider is the boundary to a text-generation backend: prompt in,
// text out, may fail with a provider error the caller must handle.
type Provider interface {
	// Name identifies the provider in user-facing messages.
	Name() string

	// Generate sends a prompt and returns the model's reply text.
	Generate(ctx context.Context, prompt string, opts ...Option) (*Response, error)
}

type Usage struct {
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
}

// Add accumulates usage across multiple calls.
func (u *Usage) Add(o Usage) {
	u.PromptTokens += o.PromptTokens
	u.CompletionTokens += o.CompletionTokens
	u.TotalTokens += o.TotalTokens
}

type Option func(*Options)

// Options carries per-call generation parameters. Zero values mean
// "use the provider's configured default".
type Options struct {
	Model           string
	MaxOutputTokens int32
	Temperature     float32
	// TemperatureSet distinguishes an explicit 0 from "not set".
	TemperatureSet bool
}

func WithModel(model string) Option {
	return func(o *Options) {
		if model != "" {
			o.Model = model
		}
	}
}

func WithMaxOutputTokens(n int32) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxOutputTokens = n
		}
	}
}

func WithTemperature(t float32) Option {
	return func(o *Options) {
		o.Temperature = t
		o.TemperatureSet = true
	}
}

type Response struct {
	Content string
	Usage   Usage
}

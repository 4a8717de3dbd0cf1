package llm

import (
	"context"
	"log/slog"
)

// Fallback tries Primary first; if it returns an error, it re-issues
// the same prompt against Secondary. It fails only when both fail.
type Fallback struct {
	Primary   Provider
	Secondary Provider
}

func (f *Fallback) Name() string { return f.Primary.Name() }

func (f *Fallback) Generate(ctx context.Context, prompt string, opts ...Option) (*Response, error) {
	resp, err := f.Primary.Generate(ctx, prompt, opts...)
	if err != nil && f.Secondary != nil {
		slog.Warn("primary provider failed, retrying on fallback path",
			"provider", f.Primary.Name(), "error", err)
		return f.Secondary.Generate(ctx, prompt, opts...)
	}
	return resp, err
}

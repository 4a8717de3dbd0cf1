package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/vishalmourya/car-saarthi/internal/config"
)

// Gemini is the primary client, backed by the official SDK.
type Gemini struct {
	client *genai.Client
	cfg    *config.GeminiConfig
}

func NewGemini(ctx context.Context, cfg *config.GeminiConfig) (*Gemini, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return &Gemini{client: client, cfg: cfg}, nil
}

func (g *Gemini) Name() string { return "Gemini" }

func (g *Gemini) Generate(ctx context.Context, prompt string, opts ...Option) (*Response, error) {
	options := &Options{
		Model:           g.cfg.Model,
		MaxOutputTokens: g.cfg.MaxOutputTokens,
		Temperature:     g.cfg.Temperature,
	}
	for _, opt := range opts {
		opt(options)
	}

	model := g.client.GenerativeModel(options.Model)
	model.SetMaxOutputTokens(options.MaxOutputTokens)
	model.SetTemperature(options.Temperature)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, err
	}

	text := firstText(resp)
	if text == "" {
		return nil, errors.New("gemini returned no candidates")
	}

	out := &Response{Content: text}
	if resp.UsageMetadata != nil {
		out.Usage = Usage{
			PromptTokens:     int64(resp.UsageMetadata.PromptTokenCount),
			CompletionTokens: int64(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int64(resp.UsageMetadata.TotalTokenCount),
		}
	}
	return out, nil
}

// Close releases the underlying SDK connection.
func (g *Gemini) Close() error {
	return g.client.Close()
}

func firstText(r *genai.GenerateContentResponse) string {
	if r == nil {
		return ""
	}
	for _, c := range r.Candidates {
		if c.Content == nil {
			continue
		}
		for _, part := range c.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}

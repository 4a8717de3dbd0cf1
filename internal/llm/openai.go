package llm

import (
	"context"
	"errors"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/vishalmourya/car-saarthi/internal/config"
)

// OpenAI client implementation
type OpenAI struct {
	client *openai.Client
	cfg    *config.OpenAIConfig
}

func NewOpenAI(cfg *config.OpenAIConfig) (*OpenAI, error) {
	client := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.APIEndpoint),
	)

	return &OpenAI{
		client: client,
		cfg:    cfg,
	}, nil
}

func (o *OpenAI) Name() string { return "OpenAI" }

func (o *OpenAI) Generate(ctx context.Context, prompt string, opts ...Option) (*Response, error) {
	options := &Options{
		Model:           o.cfg.Model,
		MaxOutputTokens: 1024,
	}
	for _, opt := range opts {
		opt(options)
	}

	params := openai.ChatCompletionNewParams{
		Model: openai.F(options.Model),
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		}),
		MaxTokens: openai.F(int64(options.MaxOutputTokens)),
	}
	if options.TemperatureSet {
		params.Temperature = openai.F(float64(options.Temperature))
	}

	resp, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("openai returned no choices")
	}

	return &Response{
		Content: resp.Choices[0].Message.Content,
		Usage: Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}

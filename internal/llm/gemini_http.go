package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vishalmourya/car-saarthi/internal/config"
)

// GeminiHTTP talks to the generateContent REST endpoint directly,
// bypassing the SDK. It serves as the lower-level call path when the
// primary client fails.
type GeminiHTTP struct {
	cfg  *config.GeminiConfig
	http *http.Client
}

func NewGeminiHTTP(cfg *config.GeminiConfig) *GeminiHTTP {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &GeminiHTTP{
		cfg:  cfg,
		http: &http.Client{Timeout: timeout},
	}
}

func (c *GeminiHTTP) Name() string { return "Gemini" }

type generateContentRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	MaxOutputTokens int32 `json:"maxOutputTokens"`
}

func (c *GeminiHTTP) Generate(ctx context.Context, prompt string, opts ...Option) (*Response, error) {
	options := &Options{
		Model:           c.cfg.Model,
		MaxOutputTokens: c.cfg.MaxOutputTokens,
	}
	for _, opt := range opts {
		opt(options)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		strings.TrimRight(c.cfg.Endpoint, "/"),
		url.PathEscape(options.Model),
		url.QueryEscape(c.cfg.APIKey),
	)

	payload := generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			MaxOutputTokens: options.MaxOutputTokens,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("gemini status %d: %s", res.StatusCode, strings.TrimSpace(string(raw)))
	}

	var out struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	// Any deviation from the expected shape falls back to handing the
	// whole response body to the caller as text.
	if err := json.Unmarshal(raw, &out); err != nil ||
		len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return &Response{Content: string(raw)}, nil
	}

	return &Response{Content: out.Candidates[0].Content.Parts[0].Text}, nil
}

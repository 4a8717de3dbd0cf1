package advisor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/vishalmourya/car-saarthi/apimodels"
	"github.com/vishalmourya/car-saarthi/internal/llm"
	"github.com/vishalmourya/car-saarthi/internal/router"
)

const (
	// Token cap for the single-prompt lookup path.
	directLookupMaxTokens = 512

	// Results are truncated before they reach a presentation layer.
	maxResultLen = 5000
)

// ErrEmptyQuery is returned when a request reaches the advisor with no
// usable text. Presentation layers are expected to reject such input
// first.
var ErrEmptyQuery = errors.New("query must not be empty")

// Advisor implements the query-routing and prompt-chaining policy.
// chainLLM serves the pipeline and its fallback extraction; lookupLLM
// serves direct lookups and may degrade to a second call path
// internally.
type Advisor struct {
	chainLLM  llm.Provider
	lookupLLM llm.Provider
}

func New(chainLLM, lookupLLM llm.Provider) *Advisor {
	return &Advisor{
		chainLLM:  chainLLM,
		lookupLLM: lookupLLM,
	}
}

// Recommend routes a query to the direct-lookup or chain path and
// returns the model's answer. Provider failures degrade to readable
// message strings in the result; the error return is reserved for
// caller misuse (empty query).
func (a *Advisor) Recommend(ctx context.Context, req apimodels.RecommendRequest) (*apimodels.RecommendResponse, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	start := time.Now()
	opts := generationOptions(req.Options)

	decision := router.Route(query)
	slog.Info("routing query", "path", decision.String(), "query", query)

	var resp *apimodels.RecommendResponse
	switch decision {
	case router.DirectLookup:
		resp = a.directLookup(ctx, query, opts)
	default:
		resp = a.recommendChain(ctx, query, opts)
	}

	resp.Result = truncate(resp.Result, maxResultLen)
	resp.Metadata.Model = req.Options.Model
	resp.Metadata.Duration = time.Since(start).String()
	return resp, nil
}

// directLookup issues exactly one call to the lookup provider (which
// may internally retry on its lower-level path). When every tier is
// exhausted the result is a readable error string, never an error: the
// presentation layer must not crash on a transient outage.
func (a *Advisor) directLookup(ctx context.Context, name string, opts []llm.Option) *apimodels.RecommendResponse {
	out := &apimodels.RecommendResponse{
		Metadata: apimodels.RecommendMetadata{
			Path:     router.DirectLookup.String(),
			Provider: a.lookupLLM.Name(),
		},
	}

	lookupOpts := append([]llm.Option{llm.WithMaxOutputTokens(directLookupMaxTokens)}, opts...)
	resp, err := a.lookupLLM.Generate(ctx, directLookupPrompt(name), lookupOpts...)
	if err != nil {
		slog.Error("direct lookup failed on all paths", "name", name, "error", err)
		out.Result = fmt.Sprintf("Error calling %s: %v", a.lookupLLM.Name(), err)
		return out
	}

	out.Result = resp.Content
	out.Metadata.TokensUsed = resp.Usage.TotalTokens
	out.Metadata.Steps = 1
	return out
}

// recommendChain runs the pipeline with two-tier degradation: full
// chain, then one single-shot requirement extraction, then a readable
// error message. Earlier stages are never retried.
func (a *Advisor) recommendChain(ctx context.Context, query string, opts []llm.Option) *apimodels.RecommendResponse {
	out := &apimodels.RecommendResponse{
		Metadata: apimodels.RecommendMetadata{
			Path:     router.Chain.String(),
			Provider: a.chainLLM.Name(),
		},
	}

	run, err := a.runChain(ctx, query, opts)
	if err == nil {
		out.Result = run.output
		out.Metadata.TokensUsed = run.usage.TotalTokens
		out.Metadata.Steps = run.steps
		return out
	}

	slog.Warn("chain failed, extracting requirements directly", "error", err)
	out.Metadata.Fallback = true

	resp, ferr := a.chainLLM.Generate(ctx, fallbackExtractionPrompt(query), opts...)
	if ferr != nil {
		slog.Error("fallback extraction failed", "error", ferr)
		out.Result = fmt.Sprintf("Error calling %s: %v", a.chainLLM.Name(), ferr)
		return out
	}

	out.Result = resp.Content
	out.Metadata.TokensUsed = resp.Usage.TotalTokens
	return out
}

func generationOptions(o apimodels.RecommendOptions) []llm.Option {
	var opts []llm.Option
	if o.Model != "" {
		opts = append(opts, llm.WithModel(o.Model))
	}
	if o.MaxTokens > 0 {
		opts = append(opts, llm.WithMaxOutputTokens(o.MaxTokens))
	}
	if o.Temperature != 0 {
		opts = append(opts, llm.WithTemperature(o.Temperature))
	}
	return opts
}

func truncate(s string, maxLen int) string {
	if len(s) > maxLen {
		return s[:maxLen] + "\n[truncated]"
	}
	return s
}

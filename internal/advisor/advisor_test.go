package advisor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishalmourya/car-saarthi/apimodels"
	"github.com/vishalmourya/car-saarthi/internal/llm"
)

type fakeCall struct {
	prompt string
	opts   llm.Options
}

// fakeProvider replays scripted replies/errors in call order and
// records every prompt it sees.
type fakeProvider struct {
	name    string
	replies []string
	errs    []error
	calls   []fakeCall
}

func (f *fakeProvider) Name() string {
	if f.name == "" {
		return "Gemini"
	}
	return f.name
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (*llm.Response, error) {
	var o llm.Options
	for _, opt := range opts {
		opt(&o)
	}
	i := len(f.calls)
	f.calls = append(f.calls, fakeCall{prompt: prompt, opts: o})

	if i < len(f.errs) && f.errs[i] != nil {
		return nil, f.errs[i]
	}
	reply := "{}"
	if i < len(f.replies) {
		reply = f.replies[i]
	}
	return &llm.Response{Content: reply, Usage: llm.Usage{TotalTokens: 10}}, nil
}

const chainQuery = "I want a diesel sedan under 10 lakh for city driving"

func TestDirectLookup(t *testing.T) {
	chainLLM := &fakeProvider{}
	lookupLLM := &fakeProvider{replies: []string{`{"model":"Swift"}`}}
	adv := New(chainLLM, lookupLLM)

	resp, err := adv.Recommend(context.Background(), apimodels.RecommendRequest{Query: "Swift"})
	require.NoError(t, err)

	require.Len(t, lookupLLM.calls, 1)
	assert.Empty(t, chainLLM.calls)
	assert.Contains(t, lookupLLM.calls[0].prompt, "Swift")
	assert.Equal(t, int32(512), lookupLLM.calls[0].opts.MaxOutputTokens)

	assert.Equal(t, `{"model":"Swift"}`, resp.Result)
	assert.Equal(t, "direct", resp.Metadata.Path)
	assert.Equal(t, 1, resp.Metadata.Steps)
	assert.False(t, resp.Metadata.Fallback)
}

func TestDirectLookupFailureReturnsErrorString(t *testing.T) {
	lookupLLM := &fakeProvider{errs: []error{errors.New("connection refused")}}
	adv := New(&fakeProvider{}, lookupLLM)

	resp, err := adv.Recommend(context.Background(), apimodels.RecommendRequest{Query: "Honda City"})
	require.NoError(t, err, "provider failure must degrade to a message, not an error")

	assert.Equal(t, "Error calling Gemini: connection refused", resp.Result)
	require.Len(t, lookupLLM.calls, 1)
}

func TestChainRunsStagesInOrder(t *testing.T) {
	chainLLM := &fakeProvider{replies: []string{
		`{"fuel_preference":"diesel"}`,
		`[{"model":"Verna"}]`,
		`[{"model":"Verna","score":9}]`,
		`{"model":"Verna","reason":"best value","buying_tips":"wait for year-end discounts"}`,
	}}
	lookupLLM := &fakeProvider{}
	adv := New(chainLLM, lookupLLM)

	resp, err := adv.Recommend(context.Background(), apimodels.RecommendRequest{Query: chainQuery})
	require.NoError(t, err)

	require.Len(t, chainLLM.calls, 4)
	assert.Empty(t, lookupLLM.calls)

	// Stage 1 sees the user text; each later stage sees its
	// predecessor's output verbatim.
	assert.Contains(t, chainLLM.calls[0].prompt, chainQuery)
	for i := 1; i < 4; i++ {
		assert.Contains(t, chainLLM.calls[i].prompt, chainLLM.replies[i-1],
			"stage %d prompt must embed stage %d output", i+1, i)
	}

	assert.Equal(t, chainLLM.replies[3], resp.Result)
	assert.Equal(t, "chain", resp.Metadata.Path)
	assert.Equal(t, 4, resp.Metadata.Steps)
	assert.Equal(t, int64(40), resp.Metadata.TokensUsed)
	assert.False(t, resp.Metadata.Fallback)
}

func TestChainFailureTriggersSingleExtraction(t *testing.T) {
	chainLLM := &fakeProvider{
		replies: []string{`{"fuel_preference":"diesel"}`, "", `{"budget_max":1000000}`},
		errs:    []error{nil, errors.New("model overloaded")},
	}
	adv := New(chainLLM, &fakeProvider{})

	resp, err := adv.Recommend(context.Background(), apimodels.RecommendRequest{Query: chainQuery})
	require.NoError(t, err)

	// One successful stage, one failed stage, one fallback extraction.
	// No earlier stage is retried.
	require.Len(t, chainLLM.calls, 3)
	assert.Contains(t, chainLLM.calls[2].prompt, "Extract JSON requirements")
	assert.Contains(t, chainLLM.calls[2].prompt, chainQuery)

	assert.Equal(t, `{"budget_max":1000000}`, resp.Result)
	assert.True(t, resp.Metadata.Fallback)
}

func TestChainAndExtractionBothFail(t *testing.T) {
	chainLLM := &fakeProvider{
		errs: []error{errors.New("timeout"), errors.New("timeout")},
	}
	adv := New(chainLLM, &fakeProvider{})

	resp, err := adv.Recommend(context.Background(), apimodels.RecommendRequest{Query: chainQuery})
	require.NoError(t, err)

	require.Len(t, chainLLM.calls, 2)
	assert.Equal(t, "Error calling Gemini: timeout", resp.Result)
	assert.True(t, resp.Metadata.Fallback)
}

func TestEmptyQueryRejected(t *testing.T) {
	adv := New(&fakeProvider{}, &fakeProvider{})

	for _, q := range []string{"", "   ", "\t\n"} {
		_, err := adv.Recommend(context.Background(), apimodels.RecommendRequest{Query: q})
		assert.ErrorIs(t, err, ErrEmptyQuery)
	}
}

func TestRequestOptionsOverrideDefaults(t *testing.T) {
	chainLLM := &fakeProvider{}
	adv := New(chainLLM, &fakeProvider{})

	_, err := adv.Recommend(context.Background(), apimodels.RecommendRequest{
		Query:   chainQuery,
		Options: apimodels.RecommendOptions{Model: "gemini-2.5-pro", MaxTokens: 2048},
	})
	require.NoError(t, err)

	require.NotEmpty(t, chainLLM.calls)
	assert.Equal(t, "gemini-2.5-pro", chainLLM.calls[0].opts.Model)
	assert.Equal(t, int32(2048), chainLLM.calls[0].opts.MaxOutputTokens)
}

func TestLongResultTruncated(t *testing.T) {
	long := make([]byte, maxResultLen+100)
	for i := range long {
		long[i] = 'a'
	}
	lookupLLM := &fakeProvider{replies: []string{string(long)}}
	adv := New(&fakeProvider{}, lookupLLM)

	resp, err := adv.Recommend(context.Background(), apimodels.RecommendRequest{Query: "Swift"})
	require.NoError(t, err)
	assert.Len(t, resp.Result, maxResultLen+len("\n[truncated]"))
	assert.Contains(t, resp.Result, "[truncated]")
}

package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	name  string
	reply string
	err   error
	calls int
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Generate(ctx context.Context, prompt string, opts ...Option) (*Response, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &Response{Content: s.reply}, nil
}

func TestFallbackPrimarySucceeds(t *testing.T) {
	primary := &stubProvider{name: "Gemini", reply: "primary"}
	secondary := &stubProvider{name: "Gemini", reply: "secondary"}
	f := &Fallback{Primary: primary, Secondary: secondary}

	resp, err := f.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "primary", resp.Content)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 0, secondary.calls)
}

func TestFallbackPrimaryFails(t *testing.T) {
	primary := &stubProvider{name: "Gemini", err: errors.New("quota exceeded")}
	secondary := &stubProvider{name: "Gemini", reply: "secondary"}
	f := &Fallback{Primary: primary, Secondary: secondary}

	resp, err := f.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "secondary", resp.Content)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, secondary.calls)
}

func TestFallbackBothFail(t *testing.T) {
	primary := &stubProvider{name: "Gemini", err: errors.New("network down")}
	secondary := &stubProvider{name: "Gemini", err: errors.New("still down")}
	f := &Fallback{Primary: primary, Secondary: secondary}

	_, err := f.Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, secondary.calls)
}

func TestFallbackNameIsPrimaryName(t *testing.T) {
	f := &Fallback{Primary: &stubProvider{name: "Gemini"}}
	assert.Equal(t, "Gemini", f.Name())
}

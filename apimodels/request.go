package apimodels

type RecommendRequest struct {
	// Query is the free-text requirement or a bare model/brand name
	Query string `json:"query"`

	// Optional parameters to control generation behavior
	Options RecommendOptions `json:"options,omitempty"`
}

type RecommendOptions struct {
	// Model overrides the configured model (e.g. "gemini-2.0-flash")
	Model string `json:"model,omitempty"`

	// MaxTokens limits the LLM response length
	MaxTokens int32 `json:"maxTokens,omitempty"`

	// Temperature controls randomness (0.0-1.0)
	Temperature float32 `json:"temperature,omitempty"`
}

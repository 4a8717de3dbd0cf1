package apimodels

type RecommendResponse struct {
	// The model's answer. Expected to be JSON text but never
	// validated; presentation layers parse defensively.
	Result string `json:"result"`

	// Metadata about how the answer was produced
	Metadata RecommendMetadata `json:"metadata"`
}

type RecommendMetadata struct {
	// Path is "direct" for model-name lookups, "chain" for the
	// four-stage recommendation pipeline
	Path string `json:"path"`

	// Provider that produced the answer
	Provider string `json:"provider"`

	// Model used, when overridden per request
	Model string `json:"model,omitempty"`

	// Time taken end to end
	Duration string `json:"duration"`

	// Tokens used across all calls
	TokensUsed int64 `json:"tokensUsed"`

	// Pipeline stages completed before returning
	Steps int `json:"steps"`

	// Fallback is true when the chain failed and the result is a
	// single-shot requirement extraction instead
	Fallback bool `json:"fallback,omitempty"`
}

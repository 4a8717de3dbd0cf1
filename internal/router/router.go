package router

import "strings"

// Decision selects which call path handles a query.
type Decision int

const (
	// DirectLookup handles short queries that look like a bare model
	// or brand name ("Swift", "Honda City").
	DirectLookup Decision = iota
	// Chain handles free-text requirement queries via the four-stage
	// recommendation pipeline.
	Chain
)

func (d Decision) String() string {
	if d == DirectLookup {
		return "direct"
	}
	return "chain"
}

// maxDirectTokens is the largest whitespace token count still treated
// as a model-name lookup.
const maxDirectTokens = 3

// Route classifies a query by whitespace token count. It is a pure
// function; callers must reject empty or whitespace-only input before
// calling it.
func Route(query string) Decision {
	if len(strings.Fields(query)) <= maxDirectTokens {
		return DirectLookup
	}
	return Chain
}

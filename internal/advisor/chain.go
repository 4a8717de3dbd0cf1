package advisor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vishalmourya/car-saarthi/internal/llm"
)

// A stage is a pure prompt builder: (query, previous output) -> prompt.
// Stages run strictly in order; each one sees the prior stage's raw
// output embedded in its prompt.
type stage struct {
	name   string
	prompt func(query, previous string) string
}

var chainStages = []stage{
	{name: "requirements", prompt: requirementsPrompt},
	{name: "candidates", prompt: candidatesPrompt},
	{name: "comparison", prompt: comparisonPrompt},
	{name: "recommendation", prompt: recommendationPrompt},
}

type chainRun struct {
	output string
	steps  int
	usage  llm.Usage
}

// runChain executes the four-stage pipeline. There is no per-stage
// retry or partial re-execution: the first failure aborts the run.
func (a *Advisor) runChain(ctx context.Context, query string, opts []llm.Option) (*chainRun, error) {
	run := &chainRun{}
	previous := ""
	for _, st := range chainStages {
		resp, err := a.chainLLM.Generate(ctx, st.prompt(query, previous), opts...)
		if err != nil {
			return nil, fmt.Errorf("stage %s: %w", st.name, err)
		}
		previous = resp.Content
		run.usage.Add(resp.Usage)
		run.steps++
		slog.Debug("chain stage completed",
			"stage", st.name, "step", run.steps, "outputLen", len(resp.Content))
	}
	run.output = previous
	return run, nil
}

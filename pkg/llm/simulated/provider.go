package simulated

import (
	"context"
	"time"

	"student-notes-ai/pkg/llm"
)

// SimulatedProvider is the demo fallback: it answers every prompt with a
// canned completion after a fixed delay, so the full pipeline can be
// exercised without a model endpoint.
type SimulatedProvider struct {
	Delay time.Duration
}

var _ llm.LLMProvider = &SimulatedProvider{}

func NewSimulatedProvider(delay time.Duration) *SimulatedProvider {
	if delay <= 0 {
		delay = 2 * time.Second
	}
	return &SimulatedProvider{Delay: delay}
}

const cannedCompletion = `# Completed Study Notes

## Overview
These notes have been organized and expanded from your handwritten input.

## Key Points
- The original text was preserved and structured into sections.
- Gaps and incomplete thoughts were filled in with standard definitions.
- Related concepts worth reviewing are listed below.

## Related Concepts
- Review the surrounding chapter for definitions used here.
- Cross-check formulas against your textbook.

(Simulated completion - no model endpoint was contacted.)`

func (s *SimulatedProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(s.Delay):
	}
	return cannedCompletion, nil
}

func (s *SimulatedProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return s.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}

package agent

import (
	"context"
	"errors"
	"log/slog"
)

// ErrCompletion marks a failure of the underlying model call. Strategies that
// propagate completion errors wrap them with this sentinel so handlers can
// tell an upstream outage from their own failures.
var ErrCompletion = errors.New("completion failed")

// Completer is the slice of the completion client strategies depend on.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error)
}

// Strategy is the personality-specific implementation of agent interactions.
//
// EvaluateSubmission never fails from the caller's point of view: completion
// and parse errors each degrade to a fixed fallback result. Greeting, Feedback
// and NextSteps error behaviour is per-variant policy: the demanding strategy
// recovers with canned text, the supportive strategy propagates the error.
type Strategy interface {
	Greeting(ctx context.Context, profile Profile) (string, error)
	Feedback(ctx context.Context, profile Profile, message string) (string, error)
	EvaluateSubmission(ctx context.Context, profile Profile, sub Submission) EvaluationResult
	NextSteps(ctx context.Context, profile Profile) ([]string, error)
}

// Set holds one instance of each strategy variant.
type Set struct {
	demanding  *DemandingStrategy
	supportive *SupportiveStrategy
}

func NewSet(llm Completer, logger *slog.Logger) *Set {
	return &Set{
		demanding:  NewDemandingStrategy(llm, logger),
		supportive: NewSupportiveStrategy(llm, logger),
	}
}

// For maps a personality to its strategy. Total: demanding gets the demanding
// strategy; every other value, supportive or analytical or creative or
// challenging or anything unknown, resolves to supportive. The default is so
// new personality tags degrade to the gentlest behaviour instead of failing.
func (s *Set) For(p Personality) Strategy {
	switch p {
	case PersonalityDemanding:
		return s.demanding
	default:
		return s.supportive
	}
}

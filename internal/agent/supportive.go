package agent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/campushq/mentor/internal/openai"
)

// SupportiveStrategy is the encouraging variant, and the default for every
// personality without a dedicated strategy. Unlike the demanding strategy it
// propagates completion failures from Greeting and Feedback; only its
// structured evaluation degrades to a fallback payload.
type SupportiveStrategy struct {
	llm    Completer
	logger *slog.Logger
}

func NewSupportiveStrategy(llm Completer, logger *slog.Logger) *SupportiveStrategy {
	return &SupportiveStrategy{llm: llm, logger: logger}
}

func (s *SupportiveStrategy) Greeting(ctx context.Context, profile Profile) (string, error) {
	system := fmt.Sprintf(supportiveGreetingSystem, profile.Name, profile.ProblemCategory)
	user := fmt.Sprintf(supportiveGreetingUser, profile.Name, profile.ProblemStatement)

	text, err := s.llm.Complete(ctx, system, user, openai.DefaultMaxTokens)
	if err != nil {
		return "", fmt.Errorf("generate greeting: %w: %w", ErrCompletion, err)
	}
	return text, nil
}

func (s *SupportiveStrategy) Feedback(ctx context.Context, profile Profile, message string) (string, error) {
	system := fmt.Sprintf(supportiveFeedbackSystem, profile.Name, profile.ProblemCategory)
	user := fmt.Sprintf(supportiveFeedbackUser, profile.ProblemStatement, message)

	text, err := s.llm.Complete(ctx, system, user, openai.DefaultMaxTokens)
	if err != nil {
		return "", fmt.Errorf("generate feedback: %w: %w", ErrCompletion, err)
	}
	return text, nil
}

func (s *SupportiveStrategy) EvaluateSubmission(ctx context.Context, profile Profile, sub Submission) EvaluationResult {
	system := fmt.Sprintf(supportiveEvaluationSystem, profile.Name, profile.ProblemCategory)
	user := fmt.Sprintf(supportiveEvaluationUser, profile.ProblemStatement, sub.MilestoneTitle, sub.SubmissionNotes)

	raw, err := s.llm.Complete(ctx, system, user, openai.DefaultMaxTokens)
	if err != nil {
		s.logger.Warn("evaluation completion failed, using fallback", "agent", profile.Name, "error", err)
		return supportiveFallback
	}

	result, err := parseSupportiveEvaluation(raw)
	if err != nil {
		s.logger.Warn("evaluation response unparseable, using fallback", "agent", profile.Name, "error", err)
		return supportiveFallback
	}
	return result
}

func (s *SupportiveStrategy) NextSteps(ctx context.Context, profile Profile) ([]string, error) {
	system := fmt.Sprintf(supportiveNextStepsSystem, profile.Name, profile.ProblemCategory)
	user := fmt.Sprintf(supportiveNextStepsUser, profile.ProblemStatement)

	raw, err := s.llm.Complete(ctx, system, user, openai.DefaultMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("generate next steps: %w: %w", ErrCompletion, err)
	}
	return splitSteps(raw), nil
}

package agent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/campushq/mentor/internal/openai"
)

// DemandingStrategy is the firm-but-fair variant. Every operation recovers
// from completion failures with canned output so the student-facing flow
// never breaks.
type DemandingStrategy struct {
	llm    Completer
	logger *slog.Logger
}

func NewDemandingStrategy(llm Completer, logger *slog.Logger) *DemandingStrategy {
	return &DemandingStrategy{llm: llm, logger: logger}
}

func (s *DemandingStrategy) Greeting(ctx context.Context, profile Profile) (string, error) {
	system := fmt.Sprintf(demandingGreetingSystem, profile.Name, profile.ProblemCategory)
	user := fmt.Sprintf(demandingGreetingUser, profile.Name, profile.ProblemCategory, profile.ProblemCategory)

	text, err := s.llm.Complete(ctx, system, user, openai.DefaultMaxTokens)
	if err != nil {
		s.logger.Warn("greeting completion failed, using fallback", "agent", profile.Name, "error", err)
		return fmt.Sprintf("Hello there. I'm %s, and I will be assisting you with %s. I expect high-quality work and will provide honest feedback to help you improve.",
			profile.Name, profile.ProblemCategory), nil
	}
	return text, nil
}

func (s *DemandingStrategy) Feedback(ctx context.Context, profile Profile, message string) (string, error) {
	system := fmt.Sprintf(demandingFeedbackSystem, profile.Name, profile.ProblemCategory)

	text, err := s.llm.Complete(ctx, system, message, openai.DefaultMaxTokens)
	if err != nil {
		s.logger.Warn("feedback completion failed, using fallback", "agent", profile.Name, "error", err)
		return fmt.Sprintf("I've reviewed your message regarding %s. Your approach shows promise, but there are several areas where more rigor is needed. Please refine your work with more attention to detail and accuracy.",
			profile.ProblemCategory), nil
	}
	return text, nil
}

func (s *DemandingStrategy) EvaluateSubmission(ctx context.Context, profile Profile, sub Submission) EvaluationResult {
	system := fmt.Sprintf(demandingEvaluationSystem, profile.Name, profile.ProblemCategory)
	user := fmt.Sprintf(demandingEvaluationUser,
		orDefault(sub.ProjectContext.Title, "Unnamed Project"),
		orDefault(sub.MilestoneTitle, "Not specified"),
		orDefault(sub.MilestoneDescription, "Not specified"),
		orDefault(sub.SubmissionURL, "Not provided"),
		orDefault(sub.SubmissionNotes, "Not provided"),
	)

	raw, err := s.llm.Complete(ctx, system, user, openai.EvaluationMaxTokens)
	if err != nil {
		s.logger.Warn("evaluation completion failed, using fallback", "agent", profile.Name, "error", err)
		return demandingCompletionFallback
	}

	result, err := parseDemandingEvaluation(raw)
	if err != nil {
		s.logger.Warn("evaluation response unparseable, using fallback", "agent", profile.Name, "error", err)
		return demandingParseFallback
	}
	return result
}

func (s *DemandingStrategy) NextSteps(ctx context.Context, profile Profile) ([]string, error) {
	system := fmt.Sprintf(demandingNextStepsSystem, profile.Name, profile.ProblemCategory)
	user := fmt.Sprintf(demandingNextStepsUser, profile.ProblemCategory)

	raw, err := s.llm.Complete(ctx, system, user, openai.DefaultMaxTokens)
	if err != nil {
		s.logger.Warn("next steps completion failed, using fallback", "agent", profile.Name, "error", err)
		return []string{
			fmt.Sprintf("Research best practices in %s", profile.ProblemCategory),
			"Create a detailed implementation plan",
			"Develop a comprehensive testing strategy",
			"Document your approach thoroughly",
			"Prepare to present and defend your methodology",
		}, nil
	}

	steps := splitSteps(raw)
	if len(steps) == 0 {
		return []string{
			fmt.Sprintf("Conduct a comprehensive review of current research in %s", profile.ProblemCategory),
			"Develop a detailed project plan with specific milestones and deadlines",
			"Implement rigorous testing protocols for all components of your solution",
			"Prepare a thorough analysis of potential edge cases and failure modes",
			"Document your methodology with precision and clarity",
		}, nil
	}
	return steps, nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

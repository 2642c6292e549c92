package evaluation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/campushq/mentor/internal/agent"
	"github.com/campushq/mentor/internal/store"
)

// Store is the slice of persistence the evaluation pipeline needs.
type Store interface {
	GetProject(ctx context.Context, id uuid.UUID) (*store.Project, error)
	GetAgent(ctx context.Context, id uuid.UUID) (*agent.Profile, error)
	GetMilestone(ctx context.Context, id, projectID uuid.UUID) (*store.Milestone, error)
	UpdateMilestoneReview(ctx context.Context, id uuid.UUID, feedbackNotes string, status store.MilestoneStatus) error
	GetEvaluation(ctx context.Context, id uuid.UUID) (*store.Evaluation, error)
	LatestEvaluation(ctx context.Context, projectID uuid.UUID) (*store.Evaluation, error)
	CreateEvaluation(ctx context.Context, e *store.Evaluation) error
	UpdateEvaluation(ctx context.Context, e *store.Evaluation) error
}

// Publisher pushes lifecycle events onto the bus. May be nil; the pipeline
// works without it.
type Publisher interface {
	Publish(subject string, data any) error
}

// Event subjects.
const (
	SubjectEvaluationUpdated   = "campus.evaluation.updated"
	SubjectEvaluationCompleted = "campus.evaluation.completed"
	SubjectMilestoneApproved   = "campus.milestone.approved"
)

// Service runs the submission evaluation pipeline: gate, strategy dispatch,
// criteria merge, persistence, milestone side effects.
type Service struct {
	store      Store
	strategies *agent.Set
	events     Publisher
	logger     *slog.Logger
}

func New(s Store, strategies *agent.Set, events Publisher, logger *slog.Logger) *Service {
	return &Service{store: s, strategies: strategies, events: events, logger: logger}
}

// AnalyzeSubmission evaluates a submitted milestone and folds the result into
// the project's evaluation record. The first analysis creates the record;
// later analyses merge into the most recent one with a 70/30 recency blend
// and append to its comment log. The milestone receives the AI feedback and
// moves to approved.
//
// Concurrent analyses of the same project race on the read-merge-write of the
// evaluation record; there is no version check. Accepted: the worst case is a
// lost merge, and analyses are professor-triggered one at a time in practice.
func (s *Service) AnalyzeSubmission(ctx context.Context, projectID, milestoneID uuid.UUID) (*store.Evaluation, error) {
	project, err := s.store.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	milestone, err := s.store.GetMilestone(ctx, milestoneID, projectID)
	if err != nil {
		return nil, err
	}

	if err := gateForAnalysis(milestone); err != nil {
		return nil, err
	}

	profile, err := s.store.GetAgent(ctx, project.AgentID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("analyzing submission",
		"project_id", projectID,
		"milestone_id", milestoneID,
		"agent", profile.Name,
		"personality", profile.Personality,
	)

	strategy := s.strategies.For(profile.Personality)
	result := strategy.EvaluateSubmission(ctx, *profile, buildSubmission(project, milestone))

	evalType := store.EvaluationIndividual
	if project.IsGroupProject {
		evalType = store.EvaluationGroup
	}
	fresh := extractCriteria(result, evalType)

	evaluation, err := s.upsertEvaluation(ctx, project, milestone, result, evalType, fresh)
	if err != nil {
		return nil, err
	}

	if err := s.store.UpdateMilestoneReview(ctx, milestone.ID, result.Feedback, store.MilestoneApproved); err != nil {
		return nil, err
	}

	s.publish(SubjectEvaluationUpdated, map[string]any{
		"evaluation_id": evaluation.ID.String(),
		"project_id":    projectID.String(),
		"milestone_id":  milestoneID.String(),
		"type":          string(evaluation.Type),
	})
	s.publish(SubjectMilestoneApproved, map[string]any{
		"milestone_id": milestoneID.String(),
		"project_id":   projectID.String(),
	})

	s.logger.Info("submission analyzed",
		"evaluation_id", evaluation.ID,
		"type", evaluation.Type,
		"criteria", len(evaluation.Criteria),
	)

	return evaluation, nil
}

func (s *Service) upsertEvaluation(ctx context.Context, project *store.Project, milestone *store.Milestone,
	result agent.EvaluationResult, evalType store.EvaluationType, fresh map[string]float64) (*store.Evaluation, error) {

	existing, err := s.store.LatestEvaluation(ctx, project.ID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	if existing == nil {
		evaluation := &store.Evaluation{
			ProjectID: project.ID,
			StudentID: project.StudentID,
			Type:      evalType,
			Criteria:  fresh,
			Comments: fmt.Sprintf("Evaluation based on milestone %q:\n%s\n\nAreas for improvement:\n%s",
				milestone.Title, result.Strengths, result.AreasForImprovement),
			Status: store.EvaluationDraft,
		}
		if err := s.store.CreateEvaluation(ctx, evaluation); err != nil {
			return nil, err
		}
		return evaluation, nil
	}

	existing.Type = evalType
	existing.Criteria = mergeCriteria(existing.Criteria, fresh)
	existing.Comments = fmt.Sprintf("%s\n\nUpdate based on milestone %q:\n%s\n\nAreas for improvement:\n%s",
		existing.Comments, milestone.Title, result.Strengths, result.AreasForImprovement)

	if err := s.store.UpdateEvaluation(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// recommendationContext is serialised as the message the agent's feedback
// operation turns into improvement recommendations.
type recommendationContext struct {
	EvaluationCriteria map[string]float64 `json:"evaluationCriteria"`
	CurrentComments    string             `json:"currentComments"`
	ProjectTitle       string             `json:"projectTitle"`
	ProjectDescription string             `json:"projectDescription"`
}

// GenerateRecommendations asks the project's agent for improvement
// recommendations over the full accumulated evaluation, then completes the
// record. Completed is terminal; nothing reopens the status.
func (s *Service) GenerateRecommendations(ctx context.Context, evaluationID uuid.UUID) (*store.Evaluation, error) {
	evaluation, err := s.store.GetEvaluation(ctx, evaluationID)
	if err != nil {
		return nil, err
	}

	project, err := s.store.GetProject(ctx, evaluation.ProjectID)
	if err != nil {
		return nil, err
	}

	profile, err := s.store.GetAgent(ctx, project.AgentID)
	if err != nil {
		return nil, err
	}

	message, err := json.Marshal(recommendationContext{
		EvaluationCriteria: evaluation.Criteria,
		CurrentComments:    evaluation.Comments,
		ProjectTitle:       project.Title,
		ProjectDescription: project.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal recommendation context: %w", err)
	}

	strategy := s.strategies.For(profile.Personality)
	recommendations, err := strategy.Feedback(ctx, *profile, string(message))
	if err != nil {
		return nil, fmt.Errorf("generate recommendations: %w", err)
	}

	evaluation.Recommendations = recommendations
	evaluation.Status = store.EvaluationCompleted

	if err := s.store.UpdateEvaluation(ctx, evaluation); err != nil {
		return nil, err
	}

	s.publish(SubjectEvaluationCompleted, map[string]any{
		"evaluation_id": evaluation.ID.String(),
		"project_id":    evaluation.ProjectID.String(),
	})

	return evaluation, nil
}

// SubmissionAnalysis is the exploratory preview shape: the evaluation text
// without any persisted state change.
type SubmissionAnalysis struct {
	Analysis         string   `json:"analysis"`
	Achievements     []string `json:"achievements"`
	ImprovementAreas []string `json:"improvementAreas"`
}

// AnalyzeForPreview runs the strategy evaluation read-only. The gate is
// looser than the committing path on purpose: any milestone with submission
// fields can be previewed, whatever its status.
func (s *Service) AnalyzeForPreview(ctx context.Context, projectID, milestoneID uuid.UUID) (*SubmissionAnalysis, error) {
	project, err := s.store.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	milestone, err := s.store.GetMilestone(ctx, milestoneID, projectID)
	if err != nil {
		return nil, err
	}

	if err := gateForPreview(milestone); err != nil {
		return nil, err
	}

	profile, err := s.store.GetAgent(ctx, project.AgentID)
	if err != nil {
		return nil, err
	}

	strategy := s.strategies.For(profile.Personality)
	result := strategy.EvaluateSubmission(ctx, *profile, buildSubmission(project, milestone))

	return &SubmissionAnalysis{
		Analysis:         result.Feedback,
		Achievements:     splitLines(result.Strengths),
		ImprovementAreas: splitLines(result.AreasForImprovement),
	}, nil
}

func (s *Service) publish(subject string, data any) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(subject, data); err != nil {
		s.logger.Warn("failed to publish event", "subject", subject, "error", err)
	}
}

func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

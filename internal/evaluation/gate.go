package evaluation

import (
	"errors"
	"fmt"

	"github.com/campushq/mentor/internal/agent"
	"github.com/campushq/mentor/internal/store"
)

// ErrInvalidSubmissionState means the milestone is not eligible for
// evaluation. Surfaced to the caller as a hard failure, before any
// completion call is made.
var ErrInvalidSubmissionState = errors.New("milestone has no valid submission to evaluate")

// gateForAnalysis is the strict precondition for committing an evaluation:
// both submission fields present and the milestone actually submitted.
func gateForAnalysis(m *store.Milestone) error {
	if m.SubmissionURL == "" || m.SubmissionNotes == "" || m.Status != store.MilestoneSubmitted {
		return fmt.Errorf("milestone %s (status %s): %w", m.ID, m.Status, ErrInvalidSubmissionState)
	}
	return nil
}

// gateForPreview is the looser precondition for the read-only analysis path:
// the submission fields must exist, but any status will do.
func gateForPreview(m *store.Milestone) error {
	if m.SubmissionURL == "" || m.SubmissionNotes == "" {
		return fmt.Errorf("milestone %s: %w", m.ID, ErrInvalidSubmissionState)
	}
	return nil
}

// buildSubmission assembles the transient view the strategy evaluates.
func buildSubmission(p *store.Project, m *store.Milestone) agent.Submission {
	return agent.Submission{
		MilestoneTitle:       m.Title,
		MilestoneDescription: m.Description,
		SubmissionURL:        m.SubmissionURL,
		SubmissionNotes:      m.SubmissionNotes,
		ProjectContext: agent.ProjectContext{
			Title:          p.Title,
			Description:    p.Description,
			Status:         string(p.Status),
			IsGroupProject: p.IsGroupProject,
		},
	}
}

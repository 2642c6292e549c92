package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type MilestoneStatus string

const (
	MilestonePending   MilestoneStatus = "pending"
	MilestoneSubmitted MilestoneStatus = "submitted"
	MilestoneApproved  MilestoneStatus = "approved"
	MilestoneRejected  MilestoneStatus = "rejected"
	MilestoneOverdue   MilestoneStatus = "overdue"
)

type Milestone struct {
	ID              uuid.UUID
	ProjectID       uuid.UUID
	Title           string
	Description     string
	DueDate         time.Time
	Status          MilestoneStatus
	SubmissionURL   string
	SubmissionNotes string
	FeedbackNotes   string
	Weight          int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// GetMilestone fetches a milestone scoped to its project.
func (s *Store) GetMilestone(ctx context.Context, id, projectID uuid.UUID) (*Milestone, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, project_id, title, description, due_date, status,
		       COALESCE(submission_url, ''), COALESCE(submission_notes, ''), COALESCE(feedback_notes, ''),
		       weight, created_at, updated_at
		FROM milestones
		WHERE id = $1 AND project_id = $2`,
		id, projectID,
	)

	var m Milestone
	err := row.Scan(&m.ID, &m.ProjectID, &m.Title, &m.Description, &m.DueDate, &m.Status,
		&m.SubmissionURL, &m.SubmissionNotes, &m.FeedbackNotes, &m.Weight, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("milestone %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get milestone: %w", err)
	}
	return &m, nil
}

// UpdateMilestoneReview stores the AI feedback on a milestone and moves its
// status, the side effect of a completed submission analysis.
func (s *Store) UpdateMilestoneReview(ctx context.Context, id uuid.UUID, feedbackNotes string, status MilestoneStatus) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE milestones SET feedback_notes = $1, status = $2, updated_at = now()
		WHERE id = $3`,
		feedbackNotes, status, id,
	)
	if err != nil {
		return fmt.Errorf("update milestone review: %w", err)
	}
	return nil
}

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ProjectStatus string

const (
	ProjectPending    ProjectStatus = "pending"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectFailed     ProjectStatus = "failed"
)

type Project struct {
	ID             uuid.UUID
	Title          string
	Description    string
	Status         ProjectStatus
	IsGroupProject bool
	StudentID      uuid.UUID
	ProfessorID    uuid.UUID
	AgentID        uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// GetProject fetches a project by id.
func (s *Store) GetProject(ctx context.Context, id uuid.UUID) (*Project, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, title, description, status, is_group_project, student_id, professor_id, agent_id, created_at, updated_at
		FROM projects
		WHERE id = $1`,
		id,
	)

	var p Project
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Status, &p.IsGroupProject,
		&p.StudentID, &p.ProfessorID, &p.AgentID, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("project %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &p, nil
}

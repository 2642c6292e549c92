package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type EvaluationStatus string

const (
	EvaluationDraft     EvaluationStatus = "draft"
	EvaluationCompleted EvaluationStatus = "completed"
)

type EvaluationType string

const (
	EvaluationIndividual EvaluationType = "individual"
	EvaluationGroup      EvaluationType = "group"
)

// Evaluation is the accumulated per-project scoring record. Criteria is a
// jsonb map of criterion name to 0-10 score; Comments is an append-only log.
type Evaluation struct {
	ID              uuid.UUID
	ProjectID       uuid.UUID
	StudentID       uuid.UUID
	Type            EvaluationType
	Criteria        map[string]float64
	Comments        string
	Recommendations string
	Status          EvaluationStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

const evaluationColumns = `id, project_id, student_id, type, criteria, comments,
	COALESCE(recommendations_for_improvement, ''), status, created_at, updated_at`

func scanEvaluation(row pgx.Row) (*Evaluation, error) {
	var e Evaluation
	err := row.Scan(&e.ID, &e.ProjectID, &e.StudentID, &e.Type, &e.Criteria, &e.Comments,
		&e.Recommendations, &e.Status, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// GetEvaluation fetches an evaluation by id.
func (s *Store) GetEvaluation(ctx context.Context, id uuid.UUID) (*Evaluation, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+evaluationColumns+` FROM evaluations WHERE id = $1`, id)

	e, err := scanEvaluation(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("evaluation %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get evaluation: %w", err)
	}
	return e, nil
}

// LatestEvaluation returns the most recent evaluation for a project, or
// ErrNotFound when the project has none yet.
func (s *Store) LatestEvaluation(ctx context.Context, projectID uuid.UUID) (*Evaluation, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+evaluationColumns+` FROM evaluations WHERE project_id = $1 ORDER BY created_at DESC LIMIT 1`,
		projectID)

	e, err := scanEvaluation(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("latest evaluation for project %s: %w", projectID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("latest evaluation: %w", err)
	}
	return e, nil
}

// ListEvaluations returns a project's evaluations, newest first.
func (s *Store) ListEvaluations(ctx context.Context, projectID uuid.UUID) ([]Evaluation, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+evaluationColumns+` FROM evaluations WHERE project_id = $1 ORDER BY created_at DESC`,
		projectID)
	if err != nil {
		return nil, fmt.Errorf("list evaluations: %w", err)
	}
	defer rows.Close()

	var evaluations []Evaluation
	for rows.Next() {
		e, err := scanEvaluation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan evaluation: %w", err)
		}
		evaluations = append(evaluations, *e)
	}
	return evaluations, rows.Err()
}

// ListEvaluationsByStudent returns all of a student's evaluations across
// projects, newest first. Used by the performance report.
func (s *Store) ListEvaluationsByStudent(ctx context.Context, studentID uuid.UUID) ([]Evaluation, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+evaluationColumns+` FROM evaluations WHERE student_id = $1 ORDER BY created_at DESC`,
		studentID)
	if err != nil {
		return nil, fmt.Errorf("list evaluations by student: %w", err)
	}
	defer rows.Close()

	var evaluations []Evaluation
	for rows.Next() {
		e, err := scanEvaluation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan evaluation: %w", err)
		}
		evaluations = append(evaluations, *e)
	}
	return evaluations, rows.Err()
}

// CreateEvaluation inserts a new evaluation record, assigning its id.
func (s *Store) CreateEvaluation(ctx context.Context, e *Evaluation) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO evaluations (id, project_id, student_id, type, criteria, comments, recommendations_for_improvement, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())`,
		e.ID, e.ProjectID, e.StudentID, e.Type, e.Criteria, e.Comments, e.Recommendations, e.Status,
	)
	if err != nil {
		return fmt.Errorf("insert evaluation: %w", err)
	}
	return nil
}

// UpdateEvaluation persists merged criteria, appended comments and status.
func (s *Store) UpdateEvaluation(ctx context.Context, e *Evaluation) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE evaluations
		SET type = $1, criteria = $2, comments = $3, recommendations_for_improvement = $4, status = $5, updated_at = now()
		WHERE id = $6`,
		e.Type, e.Criteria, e.Comments, e.Recommendations, e.Status, e.ID,
	)
	if err != nil {
		return fmt.Errorf("update evaluation: %w", err)
	}
	return nil
}

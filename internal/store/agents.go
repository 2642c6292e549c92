package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/campushq/mentor/internal/agent"
)

// GetAgent fetches an agent persona by id.
func (s *Store) GetAgent(ctx context.Context, id uuid.UUID) (*agent.Profile, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, name, description, personality, problem_category, problem_statement, is_active
		FROM agents
		WHERE id = $1`,
		id,
	)

	var p agent.Profile
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Personality, &p.ProblemCategory, &p.ProblemStatement, &p.IsActive)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("agent %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get agent: %w", err)
	}
	return &p, nil
}

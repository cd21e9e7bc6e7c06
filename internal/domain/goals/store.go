package goals

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const goalColumns = `
    id,
    COALESCE(employee_id::text, ''),
    title,
    COALESCE(description, ''),
    COALESCE(category, ''),
    status, progress, target_date,
    COALESCE(notes, ''),
    created_at, updated_at`

func (s *Store) List(ctx context.Context) ([]Goal, error) {
	rows, err := s.DB.Query(ctx, "SELECT "+goalColumns+" FROM goals ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanGoals(rows)
}

func (s *Store) ListByEmployee(ctx context.Context, employeeID string) ([]Goal, error) {
	rows, err := s.DB.Query(ctx, "SELECT "+goalColumns+" FROM goals WHERE employee_id = $1 ORDER BY created_at", employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanGoals(rows)
}

func (s *Store) Create(ctx context.Context, goal Goal) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO goals (employee_id, title, description, category, status, progress, target_date, notes)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    RETURNING id
  `, goal.EmployeeID, goal.Title, goal.Description, goal.Category,
		statusOrPending(goal.Status), goal.Progress, goal.TargetDate, goal.Notes).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Update(ctx context.Context, goalID string, goal Goal) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE goals
    SET title = $1,
        description = $2,
        category = $3,
        status = $4,
        progress = $5,
        target_date = $6,
        notes = $7,
        updated_at = now()
    WHERE id = $8
  `, goal.Title, goal.Description, goal.Category, statusOrPending(goal.Status),
		goal.Progress, goal.TargetDate, goal.Notes, goalID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return errors.New("goal not found")
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, goalID string) error {
	cmd, err := s.DB.Exec(ctx, "DELETE FROM goals WHERE id = $1", goalID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return errors.New("goal not found")
	}
	return nil
}

type pgxRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanGoals(rows pgxRows) ([]Goal, error) {
	var out []Goal
	for rows.Next() {
		var goal Goal
		if err := rows.Scan(
			&goal.ID, &goal.EmployeeID, &goal.Title, &goal.Description, &goal.Category,
			&goal.Status, &goal.Progress, &goal.TargetDate, &goal.Notes, &goal.CreatedAt, &goal.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, goal)
	}
	return out, rows.Err()
}

func statusOrPending(status string) string {
	if status == "" {
		return StatusPending
	}
	return status
}

package tasks

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

const taskColumns = `
    id,
    COALESCE(employee_id::text, ''),
    title,
    COALESCE(description, ''),
    priority, status, due_date,
    estimated_hours, actual_hours, quality_rating,
    COALESCE(self_assessment, ''),
    COALESCE(comments, ''),
    COALESCE(created_by::text, ''),
    created_at, updated_at`

func (s *Store) List(ctx context.Context) ([]Task, error) {
	rows, err := s.DB.Query(ctx, "SELECT "+taskColumns+" FROM tasks ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTasks(rows)
}

func (s *Store) ListByEmployee(ctx context.Context, employeeID string) ([]Task, error) {
	rows, err := s.DB.Query(ctx, "SELECT "+taskColumns+" FROM tasks WHERE employee_id = $1 ORDER BY created_at", employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTasks(rows)
}

func (s *Store) Create(ctx context.Context, task Task) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO tasks (employee_id, title, description, priority, status, due_date,
      estimated_hours, actual_hours, quality_rating, self_assessment, comments, created_by)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
    RETURNING id
  `, task.EmployeeID, task.Title, task.Description, valueOr(task.Priority, PriorityMedium),
		valueOr(task.Status, StatusPending), task.DueDate, task.EstimatedHours, task.ActualHours,
		task.QualityRating, task.SelfAssessment, task.Comments, nullIfEmpty(task.CreatedBy)).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Update(ctx context.Context, taskID string, task Task) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE tasks
    SET title = $1,
        description = $2,
        priority = $3,
        status = $4,
        due_date = $5,
        estimated_hours = $6,
        actual_hours = $7,
        quality_rating = $8,
        self_assessment = $9,
        comments = $10,
        updated_at = now()
    WHERE id = $11
  `, task.Title, task.Description, valueOr(task.Priority, PriorityMedium), valueOr(task.Status, StatusPending),
		task.DueDate, task.EstimatedHours, task.ActualHours, task.QualityRating,
		task.SelfAssessment, task.Comments, taskID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return errors.New("task not found")
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, taskID string) error {
	cmd, err := s.DB.Exec(ctx, "DELETE FROM tasks WHERE id = $1", taskID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return errors.New("task not found")
	}
	return nil
}

type pgxRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanTasks(rows pgxRows) ([]Task, error) {
	var out []Task
	for rows.Next() {
		var task Task
		if err := rows.Scan(
			&task.ID, &task.EmployeeID, &task.Title, &task.Description, &task.Priority, &task.Status,
			&task.DueDate, &task.EstimatedHours, &task.ActualHours, &task.QualityRating,
			&task.SelfAssessment, &task.Comments, &task.CreatedBy, &task.CreatedAt, &task.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, task)
	}
	return out, rows.Err()
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

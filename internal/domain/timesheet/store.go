package timesheet

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) ListRange(ctx context.Context, start, end time.Time) ([]Entry, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id,
           COALESCE(employee_id::text, ''),
           entry_date,
           COALESCE(clock_in::text, ''),
           COALESCE(clock_out::text, ''),
           hours, hour_type, status,
           COALESCE(notes, ''),
           created_at
    FROM time_entries
    WHERE entry_date >= $1 AND entry_date <= $2
    ORDER BY entry_date, created_at
  `, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEntries(rows)
}

func (s *Store) ListByEmployee(ctx context.Context, employeeID string, start, end time.Time) ([]Entry, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id,
           COALESCE(employee_id::text, ''),
           entry_date,
           COALESCE(clock_in::text, ''),
           COALESCE(clock_out::text, ''),
           hours, hour_type, status,
           COALESCE(notes, ''),
           created_at
    FROM time_entries
    WHERE employee_id = $1 AND entry_date >= $2 AND entry_date <= $3
    ORDER BY entry_date, created_at
  `, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEntries(rows)
}

func (s *Store) Create(ctx context.Context, entry Entry) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO time_entries (employee_id, entry_date, clock_in, clock_out, hours, hour_type, status, notes)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    RETURNING id
  `, entry.EmployeeID, entry.Date, nullIfEmpty(entry.ClockIn), nullIfEmpty(entry.ClockOut),
		entry.Hours, NormalizeHourType(entry.HourType), statusOrPending(entry.Status), entry.Notes).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) SetStatus(ctx context.Context, entryID, status string) error {
	cmd, err := s.DB.Exec(ctx, "UPDATE time_entries SET status = $1 WHERE id = $2", status, entryID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return errors.New("time entry not found")
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, entryID string) error {
	cmd, err := s.DB.Exec(ctx, "DELETE FROM time_entries WHERE id = $1", entryID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return errors.New("time entry not found")
	}
	return nil
}

type pgxRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanEntries(rows pgxRows) ([]Entry, error) {
	var out []Entry
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(
			&entry.ID, &entry.EmployeeID, &entry.Date, &entry.ClockIn, &entry.ClockOut,
			&entry.Hours, &entry.HourType, &entry.Status, &entry.Notes, &entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func statusOrPending(status string) string {
	if status == "" {
		return StatusPending
	}
	return status
}

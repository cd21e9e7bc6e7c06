package core

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

func (s *Store) GetEmployee(ctx context.Context, employeeID string) (*Employee, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT e.id, e.name,
           COALESCE(d.name, ''),
           e.position, e.email, e.status, e.created_at, e.updated_at
    FROM employees e
    LEFT JOIN departments d ON e.department_id = d.id
    WHERE e.id = $1
  `, employeeID)

	var emp Employee
	if err := row.Scan(&emp.ID, &emp.Name, &emp.Department, &emp.Position, &emp.Email, &emp.Status, &emp.CreatedAt, &emp.UpdatedAt); err != nil {
		return nil, err
	}
	return &emp, nil
}

func (s *Store) ListEmployees(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT e.id, e.name,
           COALESCE(d.name, ''),
           e.position, e.email, e.status, e.created_at, e.updated_at
    FROM employees e
    LEFT JOIN departments d ON e.department_id = d.id
    ORDER BY e.name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Employee
	for rows.Next() {
		var emp Employee
		if err := rows.Scan(&emp.ID, &emp.Name, &emp.Department, &emp.Position, &emp.Email, &emp.Status, &emp.CreatedAt, &emp.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, emp)
	}
	return out, rows.Err()
}

func (s *Store) CreateEmployee(ctx context.Context, emp Employee) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employees (name, department_id, position, email, status)
    VALUES ($1, (SELECT id FROM departments WHERE name = $2), $3, $4, $5)
    RETURNING id
  `, emp.Name, emp.Department, emp.Position, emp.Email, statusOrActive(emp.Status)).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) UpdateEmployee(ctx context.Context, employeeID string, emp Employee) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE employees
    SET name = $1,
        department_id = (SELECT id FROM departments WHERE name = $2),
        position = $3,
        email = $4,
        status = $5,
        updated_at = now()
    WHERE id = $6
  `, emp.Name, emp.Department, emp.Position, emp.Email, statusOrActive(emp.Status), employeeID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return errors.New("employee not found")
	}
	return nil
}

func (s *Store) ListDepartments(ctx context.Context) ([]Department, error) {
	rows, err := s.DB.Query(ctx, "SELECT id, name, created_at FROM departments ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Department
	for rows.Next() {
		var dep Department
		if err := rows.Scan(&dep.ID, &dep.Name, &dep.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, dep)
	}
	return out, rows.Err()
}

func (s *Store) EnsureDepartment(ctx context.Context, name string) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO departments (name)
    VALUES ($1)
    ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
    RETURNING id
  `, name).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func statusOrActive(status string) string {
	if status == "" {
		return EmployeeStatusActive
	}
	return status
}

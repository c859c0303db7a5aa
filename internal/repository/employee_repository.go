package repository

import (
	"context"
	"database/sql"
	"errors"

	"agent-match/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrEmployeeNotFound = errors.New("employee not found")

type Employee struct {
	ID               uuid.UUID
	Name             string
	Role             string
	ExperienceYears  int
	PerformanceScore int
}

type EmployeeRepository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	GetByID(ctx context.Context, id uuid.UUID) (Employee, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	ListAll(ctx context.Context) ([]Employee, error)
}

type PostgresEmployeeRepository struct {
	db database.DB
}

func NewPostgresEmployeeRepository(db database.DB) *PostgresEmployeeRepository {
	return &PostgresEmployeeRepository{db: db}
}

func (r *PostgresEmployeeRepository) Create(ctx context.Context, e Employee) (Employee, error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO employees (id, name, role, experience_years, performance_score)
		 VALUES ($1, $2, NULLIF($3, ''), $4, $5)`,
		e.ID, e.Name, e.Role, e.ExperienceYears, e.PerformanceScore,
	)
	if err != nil {
		return Employee{}, err
	}
	return e, nil
}

func (r *PostgresEmployeeRepository) GetByID(ctx context.Context, id uuid.UUID) (Employee, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, COALESCE(role, ''), COALESCE(experience_years, 0), COALESCE(performance_score, 0)
		 FROM employees
		 WHERE id = $1`,
		id,
	)

	var e Employee
	if err := row.Scan(&e.ID, &e.Name, &e.Role, &e.ExperienceYears, &e.PerformanceScore); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Employee{}, ErrEmployeeNotFound
		}
		return Employee{}, err
	}
	return e, nil
}

func (r *PostgresEmployeeRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE id = $1)`, id)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresEmployeeRepository) ListAll(ctx context.Context) ([]Employee, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, COALESCE(role, ''), COALESCE(experience_years, 0), COALESCE(performance_score, 0)
		 FROM employees
		 ORDER BY created_at ASC, id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Employee, 0)
	for rows.Next() {
		var e Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Role, &e.ExperienceYears, &e.PerformanceScore); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

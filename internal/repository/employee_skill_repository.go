package repository

import (
	"context"

	"agent-match/internal/database"

	"github.com/google/uuid"
)

type EmployeeSkill struct {
	EmployeeID uuid.UUID
	SkillID    uuid.UUID
	SkillName  string
}

type EmployeeSkillRepository interface {
	// Assign links a skill to an employee. Repeated assignments are no-ops.
	Assign(ctx context.Context, employeeID, skillID uuid.UUID) error
	FindByEmployeeID(ctx context.Context, employeeID uuid.UUID) ([]EmployeeSkill, error)
	ListAll(ctx context.Context) ([]EmployeeSkill, error)
}

type PostgresEmployeeSkillRepository struct {
	db database.DB
}

func NewPostgresEmployeeSkillRepository(db database.DB) *PostgresEmployeeSkillRepository {
	return &PostgresEmployeeSkillRepository{db: db}
}

func (r *PostgresEmployeeSkillRepository) Assign(ctx context.Context, employeeID, skillID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO employee_skills (employee_id, skill_id) VALUES ($1, $2)
		 ON CONFLICT DO NOTHING`,
		employeeID, skillID,
	)
	return err
}

func (r *PostgresEmployeeSkillRepository) FindByEmployeeID(ctx context.Context, employeeID uuid.UUID) ([]EmployeeSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT es.employee_id, es.skill_id, s.name
		 FROM employee_skills es
		 JOIN skills s ON s.id = es.skill_id
		 WHERE es.employee_id = $1
		 ORDER BY s.name ASC`,
		employeeID,
	)
	if err != nil {
		return nil, err
	}
	return scanEmployeeSkills(rows)
}

func (r *PostgresEmployeeSkillRepository) ListAll(ctx context.Context) ([]EmployeeSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT es.employee_id, es.skill_id, s.name
		 FROM employee_skills es
		 JOIN skills s ON s.id = es.skill_id
		 ORDER BY es.employee_id ASC, s.name ASC`,
	)
	if err != nil {
		return nil, err
	}
	return scanEmployeeSkills(rows)
}

func scanEmployeeSkills(rows database.Rows) ([]EmployeeSkill, error) {
	defer rows.Close()

	out := make([]EmployeeSkill, 0)
	for rows.Next() {
		var es EmployeeSkill
		if err := rows.Scan(&es.EmployeeID, &es.SkillID, &es.SkillName); err != nil {
			return nil, err
		}
		out = append(out, es)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

package repository

import (
	"context"

	"agent-match/internal/database"

	"github.com/google/uuid"
)

type EmployeeCertification struct {
	EmployeeID        uuid.UUID
	CertificationID   uuid.UUID
	CertificationName string
}

type EmployeeCertificationRepository interface {
	Assign(ctx context.Context, employeeID, certificationID uuid.UUID) error
	FindByEmployeeID(ctx context.Context, employeeID uuid.UUID) ([]EmployeeCertification, error)
	ListAll(ctx context.Context) ([]EmployeeCertification, error)
}

type PostgresEmployeeCertificationRepository struct {
	db database.DB
}

func NewPostgresEmployeeCertificationRepository(db database.DB) *PostgresEmployeeCertificationRepository {
	return &PostgresEmployeeCertificationRepository{db: db}
}

func (r *PostgresEmployeeCertificationRepository) Assign(ctx context.Context, employeeID, certificationID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO employee_certifications (employee_id, certification_id) VALUES ($1, $2)
		 ON CONFLICT DO NOTHING`,
		employeeID, certificationID,
	)
	return err
}

func (r *PostgresEmployeeCertificationRepository) FindByEmployeeID(ctx context.Context, employeeID uuid.UUID) ([]EmployeeCertification, error) {
	rows, err := r.db.Query(ctx,
		`SELECT ec.employee_id, ec.certification_id, c.name
		 FROM employee_certifications ec
		 JOIN certifications c ON c.id = ec.certification_id
		 WHERE ec.employee_id = $1
		 ORDER BY c.name ASC`,
		employeeID,
	)
	if err != nil {
		return nil, err
	}
	return scanEmployeeCertifications(rows)
}

func (r *PostgresEmployeeCertificationRepository) ListAll(ctx context.Context) ([]EmployeeCertification, error) {
	rows, err := r.db.Query(ctx,
		`SELECT ec.employee_id, ec.certification_id, c.name
		 FROM employee_certifications ec
		 JOIN certifications c ON c.id = ec.certification_id
		 ORDER BY ec.employee_id ASC, c.name ASC`,
	)
	if err != nil {
		return nil, err
	}
	return scanEmployeeCertifications(rows)
}

func scanEmployeeCertifications(rows database.Rows) ([]EmployeeCertification, error) {
	defer rows.Close()

	out := make([]EmployeeCertification, 0)
	for rows.Next() {
		var ec EmployeeCertification
		if err := rows.Scan(&ec.EmployeeID, &ec.CertificationID, &ec.CertificationName); err != nil {
			return nil, err
		}
		out = append(out, ec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

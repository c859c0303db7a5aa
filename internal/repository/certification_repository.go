package repository

import (
	"context"

	"agent-match/internal/database"

	"github.com/google/uuid"
)

type Certification struct {
	ID   uuid.UUID
	Name string
}

type CertificationRepository interface {
	GetAllCertifications(ctx context.Context) ([]Certification, error)
	UpsertByName(ctx context.Context, name string) (Certification, error)
	ExistingIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]struct{}, error)
}

type PostgresCertificationRepository struct {
	db database.DB
}

func NewPostgresCertificationRepository(db database.DB) *PostgresCertificationRepository {
	return &PostgresCertificationRepository{db: db}
}

func (r *PostgresCertificationRepository) GetAllCertifications(ctx context.Context) ([]Certification, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM certifications ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Certification, 0)
	for rows.Next() {
		var c Certification
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCertificationRepository) UpsertByName(ctx context.Context, name string) (Certification, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO certifications (id, name) VALUES ($1, $2)
		 ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		 RETURNING id, name`,
		uuid.New(), name,
	)

	var c Certification
	if err := row.Scan(&c.ID, &c.Name); err != nil {
		return Certification{}, err
	}
	return c, nil
}

func (r *PostgresCertificationRepository) ExistingIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]struct{}, error) {
	out := make(map[uuid.UUID]struct{}, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx, `SELECT id FROM certifications WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

package repository

import (
	"context"

	"agent-match/internal/database"

	"github.com/google/uuid"
)

type Skill struct {
	ID   uuid.UUID
	Name string
}

type SkillRepository interface {
	GetAllSkills(ctx context.Context) ([]Skill, error)
	// UpsertByName returns the existing record when the name is already
	// taken, otherwise inserts and returns the new one.
	UpsertByName(ctx context.Context, name string) (Skill, error)
	ExistingIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]struct{}, error)
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

func (r *PostgresSkillRepository) GetAllSkills(ctx context.Context) ([]Skill, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM skills ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Skill, 0)
	for rows.Next() {
		var s Skill
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSkillRepository) UpsertByName(ctx context.Context, name string) (Skill, error) {
	// DO UPDATE (rather than DO NOTHING) so RETURNING yields the id of the
	// existing row on conflict.
	row := r.db.QueryRow(ctx,
		`INSERT INTO skills (id, name) VALUES ($1, $2)
		 ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		 RETURNING id, name`,
		uuid.New(), name,
	)

	var s Skill
	if err := row.Scan(&s.ID, &s.Name); err != nil {
		return Skill{}, err
	}
	return s, nil
}

func (r *PostgresSkillRepository) ExistingIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]struct{}, error) {
	out := make(map[uuid.UUID]struct{}, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx, `SELECT id FROM skills WHERE id = ANY($1)`, ids)
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

package repository

import (
	"context"
	"fmt"

	"agent-match/internal/database"

	"github.com/google/uuid"
)

// RequirementSet is the pair of id sets a client currently requires.
type RequirementSet struct {
	SkillIDs         []uuid.UUID
	CertificationIDs []uuid.UUID
}

type ClientRequirementRepository interface {
	// Replace swaps the client's whole requirement set inside one
	// transaction. Readers see either the old set or the new one, never a
	// partial overwrite.
	Replace(ctx context.Context, clientID uuid.UUID, skillIDs, certificationIDs []uuid.UUID) error
	GetByClientID(ctx context.Context, clientID uuid.UUID) (RequirementSet, error)
}

type PostgresClientRequirementRepository struct {
	db database.DB
}

func NewPostgresClientRequirementRepository(db database.DB) *PostgresClientRequirementRepository {
	return &PostgresClientRequirementRepository{db: db}
}

func (r *PostgresClientRequirementRepository) Replace(ctx context.Context, clientID uuid.UUID, skillIDs, certificationIDs []uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM client_requirements WHERE client_id = $1`, clientID); err != nil {
		return err
	}

	for _, skillID := range skillIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO client_requirements (id, client_id, skill_id, certification_id)
			 VALUES ($1, $2, $3, NULL)`,
			uuid.New(), clientID, skillID,
		)
		if err != nil {
			return err
		}
	}
	for _, certID := range certificationIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO client_requirements (id, client_id, skill_id, certification_id)
			 VALUES ($1, $2, NULL, $3)`,
			uuid.New(), clientID, certID,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *PostgresClientRequirementRepository) GetByClientID(ctx context.Context, clientID uuid.UUID) (RequirementSet, error) {
	rows, err := r.db.Query(ctx,
		`SELECT skill_id, certification_id FROM client_requirements WHERE client_id = $1`,
		clientID,
	)
	if err != nil {
		return RequirementSet{}, err
	}
	defer rows.Close()

	set := RequirementSet{
		SkillIDs:         make([]uuid.UUID, 0),
		CertificationIDs: make([]uuid.UUID, 0),
	}
	for rows.Next() {
		var skillID, certID *uuid.UUID
		if err := rows.Scan(&skillID, &certID); err != nil {
			return RequirementSet{}, err
		}
		switch {
		case skillID != nil:
			set.SkillIDs = append(set.SkillIDs, *skillID)
		case certID != nil:
			set.CertificationIDs = append(set.CertificationIDs, *certID)
		}
	}
	if err := rows.Err(); err != nil {
		return RequirementSet{}, err
	}
	return set, nil
}

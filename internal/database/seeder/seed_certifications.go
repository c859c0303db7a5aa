package seeder

import (
	"context"
	"fmt"

	"agent-match/internal/database"
)

type CertificationsSeeder struct{}

func (CertificationsSeeder) Name() string { return "certifications" }

func (CertificationsSeeder) Run(ctx context.Context, db database.DB) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	names := []string{
		"PMP",
		"AWS Certified Solutions Architect",
		"CISSP",
		"Scrum Master",
		"Six Sigma Green Belt",
	}

	for _, name := range names {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO certifications (id, name) VALUES (gen_random_uuid(), $1) ON CONFLICT (name) DO NOTHING`,
			name,
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

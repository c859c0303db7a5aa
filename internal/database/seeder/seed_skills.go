package seeder

import (
	"context"
	"fmt"

	"agent-match/internal/database"
)

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	names := []string{
		"Python",
		"SQL",
		"Go",
		"Java",
		"JavaScript",
		"Project Management",
		"Data Analysis",
		"Communication",
	}

	for _, name := range names {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO skills (id, name) VALUES (gen_random_uuid(), $1) ON CONFLICT (name) DO NOTHING`,
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

package usecase

import (
	"context"
	"fmt"
	"strings"

	"agent-match/internal/repository"

	"github.com/google/uuid"
)

type SkillItem struct {
	ID   uuid.UUID
	Name string
}

type SkillUsecase interface {
	ListSkills(ctx context.Context) ([]SkillItem, error)
	AddSkill(ctx context.Context, name string) (SkillItem, error)
}

type Skill struct {
	repo repository.SkillRepository
}

func NewSkillUsecase(repo repository.SkillRepository) *Skill {
	return &Skill{repo: repo}
}

func (u *Skill) ListSkills(ctx context.Context) ([]SkillItem, error) {
	items, err := u.repo.GetAllSkills(ctx)
	if err != nil {
		return nil, storageErr(err)
	}

	out := make([]SkillItem, 0, len(items))
	for _, it := range items {
		out = append(out, SkillItem{ID: it.ID, Name: it.Name})
	}
	return out, nil
}

// AddSkill is an upsert: creating a skill whose name already exists returns
// the existing record.
func (u *Skill) AddSkill(ctx context.Context, name string) (SkillItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return SkillItem{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	created, err := u.repo.UpsertByName(ctx, name)
	if err != nil {
		return SkillItem{}, storageErr(err)
	}
	return SkillItem{ID: created.ID, Name: created.Name}, nil
}

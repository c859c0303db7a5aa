package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestAddSkill_SameNameCollapsesToOneRecord(t *testing.T) {
	repo := &fakeSkillRepo{skills: map[uuid.UUID]string{}}
	uc := NewSkillUsecase(repo)

	first, err := uc.AddSkill(context.Background(), "Python")
	if err != nil {
		t.Fatalf("first add: %v", err)
	}
	second, err := uc.AddSkill(context.Background(), "Python")
	if err != nil {
		t.Fatalf("second add: %v", err)
	}

	if first.ID != second.ID {
		t.Fatalf("expected same record, got %s and %s", first.ID, second.ID)
	}
	if len(repo.skills) != 1 {
		t.Fatalf("expected one stored skill, got %d", len(repo.skills))
	}
}

func TestAddSkill_RequiresName(t *testing.T) {
	uc := NewSkillUsecase(&fakeSkillRepo{})

	_, err := uc.AddSkill(context.Background(), "  ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

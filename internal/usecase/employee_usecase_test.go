package usecase

import (
	"context"
	"errors"
	"testing"

	"agent-match/internal/repository"

	"github.com/google/uuid"
)

func newEmployeeFixture() (*Employee, *fakeEmployeeRepo, *fakeSkillRepo, *fakeCertRepo, *fakeEmployeeSkillRepo, *fakeEmployeeCertRepo) {
	emps := &fakeEmployeeRepo{}
	skills := &fakeSkillRepo{skills: map[uuid.UUID]string{}}
	certs := &fakeCertRepo{certs: map[uuid.UUID]string{}}
	empSkill := &fakeEmployeeSkillRepo{}
	empCert := &fakeEmployeeCertRepo{}
	uc := NewEmployeeUsecase(emps, skills, certs, empSkill, empCert)
	return uc, emps, skills, certs, empSkill, empCert
}

func TestAddEmployee_RequiresName(t *testing.T) {
	uc, _, _, _, _, _ := newEmployeeFixture()

	_, err := uc.AddEmployee(context.Background(), AddEmployeeInput{Name: "   "})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAddEmployee_RejectsNegativeExperience(t *testing.T) {
	uc, _, _, _, _, _ := newEmployeeFixture()

	_, err := uc.AddEmployee(context.Background(), AddEmployeeInput{Name: "X", ExperienceYears: -1})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAddEmployee_RejectsOutOfRangeScore(t *testing.T) {
	uc, _, _, _, _, _ := newEmployeeFixture()

	_, err := uc.AddEmployee(context.Background(), AddEmployeeInput{Name: "X", PerformanceScore: 101})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for score 101, got %v", err)
	}
}

func TestAddEmployee_Success(t *testing.T) {
	uc, emps, _, _, _, _ := newEmployeeFixture()

	created, err := uc.AddEmployee(context.Background(), AddEmployeeInput{
		Name:             "  Dana  ",
		Role:             "Consultant",
		ExperienceYears:  4,
		PerformanceScore: 88,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Name != "Dana" {
		t.Fatalf("expected trimmed name, got %q", created.Name)
	}
	if len(emps.items) != 1 {
		t.Fatalf("expected employee persisted")
	}
}

func TestAssignSkill_UnknownEmployee(t *testing.T) {
	uc, _, skills, _, _, _ := newEmployeeFixture()

	skillID := uuid.New()
	skills.skills[skillID] = "Go"

	err := uc.AssignSkill(context.Background(), uuid.New(), skillID)
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestAssignSkill_UnknownSkill(t *testing.T) {
	uc, emps, _, _, _, _ := newEmployeeFixture()

	emp := repository.Employee{ID: uuid.New(), Name: "Dana"}
	emps.items = []repository.Employee{emp}

	err := uc.AssignSkill(context.Background(), emp.ID, uuid.New())
	if !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("expected ErrSkillNotFound, got %v", err)
	}
}

func TestAssignSkill_Idempotent(t *testing.T) {
	uc, emps, skills, _, empSkill, _ := newEmployeeFixture()

	emp := repository.Employee{ID: uuid.New(), Name: "Dana"}
	emps.items = []repository.Employee{emp}
	skillID := uuid.New()
	skills.skills[skillID] = "Go"

	if err := uc.AssignSkill(context.Background(), emp.ID, skillID); err != nil {
		t.Fatalf("first assign: %v", err)
	}
	if err := uc.AssignSkill(context.Background(), emp.ID, skillID); err != nil {
		t.Fatalf("second assign: %v", err)
	}
	if len(empSkill.assocs) != 1 {
		t.Fatalf("expected a single association, got %d", len(empSkill.assocs))
	}
}

func TestAssignCertification_UnknownCertification(t *testing.T) {
	uc, emps, _, _, _, _ := newEmployeeFixture()

	emp := repository.Employee{ID: uuid.New(), Name: "Dana"}
	emps.items = []repository.Employee{emp}

	err := uc.AssignCertification(context.Background(), emp.ID, uuid.New())
	if !errors.Is(err, ErrCertificationNotFound) {
		t.Fatalf("expected ErrCertificationNotFound, got %v", err)
	}
}

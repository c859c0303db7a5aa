package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"agent-match/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrSkillNotFound         = errors.New("skill not found")
	ErrCertificationNotFound = errors.New("certification not found")
)

type EmployeeItem struct {
	ID               uuid.UUID
	Name             string
	Role             string
	ExperienceYears  int
	PerformanceScore int
}

type AddEmployeeInput struct {
	Name             string
	Role             string
	ExperienceYears  int
	PerformanceScore int
}

type EmployeeUsecase interface {
	AddEmployee(ctx context.Context, in AddEmployeeInput) (EmployeeItem, error)
	ListEmployees(ctx context.Context) ([]EmployeeItem, error)
	AssignSkill(ctx context.Context, employeeID, skillID uuid.UUID) error
	AssignCertification(ctx context.Context, employeeID, certificationID uuid.UUID) error
}

type Employee struct {
	employees      repository.EmployeeRepository
	skills         repository.SkillRepository
	certifications repository.CertificationRepository
	employeeSkill  repository.EmployeeSkillRepository
	employeeCert   repository.EmployeeCertificationRepository
}

func NewEmployeeUsecase(
	employees repository.EmployeeRepository,
	skills repository.SkillRepository,
	certifications repository.CertificationRepository,
	employeeSkill repository.EmployeeSkillRepository,
	employeeCert repository.EmployeeCertificationRepository,
) *Employee {
	return &Employee{
		employees:      employees,
		skills:         skills,
		certifications: certifications,
		employeeSkill:  employeeSkill,
		employeeCert:   employeeCert,
	}
}

func (u *Employee) AddEmployee(ctx context.Context, in AddEmployeeInput) (EmployeeItem, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Role = strings.TrimSpace(in.Role)

	if in.Name == "" {
		return EmployeeItem{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if in.ExperienceYears < 0 {
		return EmployeeItem{}, fmt.Errorf("%w: experience_years must not be negative", ErrInvalidInput)
	}
	if in.PerformanceScore < 0 || in.PerformanceScore > 100 {
		return EmployeeItem{}, fmt.Errorf("%w: performance_score must be within 0-100", ErrInvalidInput)
	}

	created, err := u.employees.Create(ctx, repository.Employee{
		Name:             in.Name,
		Role:             in.Role,
		ExperienceYears:  in.ExperienceYears,
		PerformanceScore: in.PerformanceScore,
	})
	if err != nil {
		return EmployeeItem{}, storageErr(err)
	}

	return EmployeeItem(created), nil
}

func (u *Employee) ListEmployees(ctx context.Context) ([]EmployeeItem, error) {
	items, err := u.employees.ListAll(ctx)
	if err != nil {
		return nil, storageErr(err)
	}

	out := make([]EmployeeItem, 0, len(items))
	for _, it := range items {
		out = append(out, EmployeeItem(it))
	}
	return out, nil
}

func (u *Employee) AssignSkill(ctx context.Context, employeeID, skillID uuid.UUID) error {
	if err := u.checkEmployee(ctx, employeeID); err != nil {
		return err
	}
	if skillID == uuid.Nil {
		return ErrSkillNotFound
	}

	existing, err := u.skills.ExistingIDs(ctx, []uuid.UUID{skillID})
	if err != nil {
		return storageErr(err)
	}
	if _, ok := existing[skillID]; !ok {
		return ErrSkillNotFound
	}

	if err := u.employeeSkill.Assign(ctx, employeeID, skillID); err != nil {
		return storageErr(err)
	}
	return nil
}

func (u *Employee) AssignCertification(ctx context.Context, employeeID, certificationID uuid.UUID) error {
	if err := u.checkEmployee(ctx, employeeID); err != nil {
		return err
	}
	if certificationID == uuid.Nil {
		return ErrCertificationNotFound
	}

	existing, err := u.certifications.ExistingIDs(ctx, []uuid.UUID{certificationID})
	if err != nil {
		return storageErr(err)
	}
	if _, ok := existing[certificationID]; !ok {
		return ErrCertificationNotFound
	}

	if err := u.employeeCert.Assign(ctx, employeeID, certificationID); err != nil {
		return storageErr(err)
	}
	return nil
}

func (u *Employee) checkEmployee(ctx context.Context, employeeID uuid.UUID) error {
	if employeeID == uuid.Nil {
		return ErrEmployeeNotFound
	}
	exists, err := u.employees.ExistsByID(ctx, employeeID)
	if err != nil {
		return storageErr(err)
	}
	if !exists {
		return ErrEmployeeNotFound
	}
	return nil
}

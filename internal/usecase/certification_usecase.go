package usecase

import (
	"context"
	"fmt"
	"strings"

	"agent-match/internal/repository"

	"github.com/google/uuid"
)

type CertificationItem struct {
	ID   uuid.UUID
	Name string
}

type CertificationUsecase interface {
	ListCertifications(ctx context.Context) ([]CertificationItem, error)
	AddCertification(ctx context.Context, name string) (CertificationItem, error)
}

type Certification struct {
	repo repository.CertificationRepository
}

func NewCertificationUsecase(repo repository.CertificationRepository) *Certification {
	return &Certification{repo: repo}
}

func (u *Certification) ListCertifications(ctx context.Context) ([]CertificationItem, error) {
	items, err := u.repo.GetAllCertifications(ctx)
	if err != nil {
		return nil, storageErr(err)
	}

	out := make([]CertificationItem, 0, len(items))
	for _, it := range items {
		out = append(out, CertificationItem{ID: it.ID, Name: it.Name})
	}
	return out, nil
}

func (u *Certification) AddCertification(ctx context.Context, name string) (CertificationItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return CertificationItem{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	created, err := u.repo.UpsertByName(ctx, name)
	if err != nil {
		return CertificationItem{}, storageErr(err)
	}
	return CertificationItem{ID: created.ID, Name: created.Name}, nil
}

package usecase

import (
	"context"
	"errors"
	"testing"

	"agent-match/internal/repository"

	"github.com/google/uuid"
)

func newRequirementFixture() (*Requirement, *fakeClientRepo, *fakeSkillRepo, *fakeCertRepo, *fakeRequirementRepo, *fakeRankingCache) {
	clients := &fakeClientRepo{existing: map[uuid.UUID]repository.Client{}}
	skills := &fakeSkillRepo{skills: map[uuid.UUID]string{}}
	certs := &fakeCertRepo{certs: map[uuid.UUID]string{}}
	reqs := &fakeRequirementRepo{}
	cache := &fakeRankingCache{}
	uc := NewRequirementUsecase(clients, skills, certs, reqs, cache)
	return uc, clients, skills, certs, reqs, cache
}

func TestSaveRequirements_UnknownClient(t *testing.T) {
	uc, _, _, _, _, _ := newRequirementFixture()

	err := uc.SaveRequirements(context.Background(), uuid.New(), nil, nil)
	if !errors.Is(err, ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestSaveRequirements_UnknownSkillID(t *testing.T) {
	uc, clients, _, _, reqs, _ := newRequirementFixture()

	clientID := uuid.New()
	clients.existing[clientID] = repository.Client{ID: clientID, Name: "Acme"}

	err := uc.SaveRequirements(context.Background(), clientID, []uuid.UUID{uuid.New()}, nil)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if reqs.replaceCalls != 0 {
		t.Fatalf("expected no replace on invalid input, got %d calls", reqs.replaceCalls)
	}
}

func TestSaveRequirements_UnknownCertificationID(t *testing.T) {
	uc, clients, _, _, _, _ := newRequirementFixture()

	clientID := uuid.New()
	clients.existing[clientID] = repository.Client{ID: clientID, Name: "Acme"}

	err := uc.SaveRequirements(context.Background(), clientID, nil, []uuid.UUID{uuid.New()})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSaveRequirements_DuplicatesCollapse(t *testing.T) {
	uc, clients, skills, _, reqs, _ := newRequirementFixture()

	clientID := uuid.New()
	clients.existing[clientID] = repository.Client{ID: clientID, Name: "Acme"}

	skillID := uuid.New()
	skills.skills[skillID] = "Python"

	err := uc.SaveRequirements(context.Background(), clientID, []uuid.UUID{skillID, skillID}, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	set := reqs.sets[clientID]
	if len(set.SkillIDs) != 1 || set.SkillIDs[0] != skillID {
		t.Fatalf("expected single deduped skill id, got %v", set.SkillIDs)
	}
}

func TestSaveRequirements_Idempotent(t *testing.T) {
	uc, clients, skills, certs, reqs, _ := newRequirementFixture()

	clientID := uuid.New()
	clients.existing[clientID] = repository.Client{ID: clientID, Name: "Acme"}

	skillID := uuid.New()
	skills.skills[skillID] = "SQL"
	certID := uuid.New()
	certs.certs[certID] = "PMP"

	in := []uuid.UUID{skillID}
	inCerts := []uuid.UUID{certID}

	if err := uc.SaveRequirements(context.Background(), clientID, in, inCerts); err != nil {
		t.Fatalf("first save: %v", err)
	}
	first := reqs.sets[clientID]

	if err := uc.SaveRequirements(context.Background(), clientID, in, inCerts); err != nil {
		t.Fatalf("second save: %v", err)
	}
	second := reqs.sets[clientID]

	if len(first.SkillIDs) != len(second.SkillIDs) || len(first.CertificationIDs) != len(second.CertificationIDs) {
		t.Fatalf("expected identical requirement sets, got %v and %v", first, second)
	}
}

func TestSaveRequirements_EmptyInputClears(t *testing.T) {
	uc, clients, skills, _, reqs, _ := newRequirementFixture()

	clientID := uuid.New()
	clients.existing[clientID] = repository.Client{ID: clientID, Name: "Acme"}

	skillID := uuid.New()
	skills.skills[skillID] = "Go"

	if err := uc.SaveRequirements(context.Background(), clientID, []uuid.UUID{skillID}, nil); err != nil {
		t.Fatalf("seed save: %v", err)
	}

	if err := uc.SaveRequirements(context.Background(), clientID, nil, nil); err != nil {
		t.Fatalf("clearing save: %v", err)
	}

	set := reqs.sets[clientID]
	if len(set.SkillIDs) != 0 || len(set.CertificationIDs) != 0 {
		t.Fatalf("expected cleared requirement set, got %v", set)
	}
}

func TestSaveRequirements_InvalidatesRankingCache(t *testing.T) {
	uc, clients, _, _, _, cache := newRequirementFixture()

	clientID := uuid.New()
	clients.existing[clientID] = repository.Client{ID: clientID, Name: "Acme"}

	if err := uc.SaveRequirements(context.Background(), clientID, nil, nil); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if len(cache.deletes) != 1 || cache.deletes[0] != rankingCacheKey(clientID) {
		t.Fatalf("expected ranking cache invalidation for client, got %v", cache.deletes)
	}
}

func TestSaveRequirements_StorageErrorClassified(t *testing.T) {
	uc, clients, _, _, reqs, _ := newRequirementFixture()

	clientID := uuid.New()
	clients.existing[clientID] = repository.Client{ID: clientID, Name: "Acme"}
	reqs.err = errors.New("connection refused")

	err := uc.SaveRequirements(context.Background(), clientID, nil, nil)
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
}

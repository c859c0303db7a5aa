package usecase

import (
	"context"
	"errors"
	"testing"

	"agent-match/internal/repository"

	"github.com/google/uuid"
)

type matchingFixture struct {
	uc       *Matching
	clients  *fakeClientRepo
	emps     *fakeEmployeeRepo
	empSkill *fakeEmployeeSkillRepo
	empCert  *fakeEmployeeCertRepo
	reqs     *fakeRequirementRepo
	cache    *fakeRankingCache
}

func newMatchingFixture() *matchingFixture {
	f := &matchingFixture{
		clients:  &fakeClientRepo{existing: map[uuid.UUID]repository.Client{}},
		emps:     &fakeEmployeeRepo{},
		empSkill: &fakeEmployeeSkillRepo{},
		empCert:  &fakeEmployeeCertRepo{},
		reqs:     &fakeRequirementRepo{},
		cache:    &fakeRankingCache{},
	}
	f.uc = NewMatchingUsecase(f.clients, f.emps, f.empSkill, f.empCert, f.reqs, f.cache, 0)
	return f
}

func TestRankAgents_UnknownClient(t *testing.T) {
	f := newMatchingFixture()

	out, err := f.uc.RankAgents(context.Background(), uuid.New())
	if !errors.Is(err, ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
	if out != nil {
		t.Fatalf("expected no result on unknown client, got %v", out)
	}
}

func TestRankAgents_RanksByWeightedOverlap(t *testing.T) {
	f := newMatchingFixture()

	clientID := uuid.New()
	f.clients.existing[clientID] = repository.Client{ID: clientID, Name: "Acme"}

	python := uuid.New()
	sqlSkill := uuid.New()
	pmp := uuid.New()

	empA := repository.Employee{ID: uuid.New(), Name: "A", PerformanceScore: 50, ExperienceYears: 3}
	empB := repository.Employee{ID: uuid.New(), Name: "B", PerformanceScore: 80, ExperienceYears: 1}
	f.emps.items = []repository.Employee{empA, empB}

	f.empSkill.assocs = []repository.EmployeeSkill{
		{EmployeeID: empA.ID, SkillID: python, SkillName: "Python"},
		{EmployeeID: empA.ID, SkillID: sqlSkill, SkillName: "SQL"},
		{EmployeeID: empB.ID, SkillID: python, SkillName: "Python"},
	}
	f.empCert.assocs = []repository.EmployeeCertification{
		{EmployeeID: empB.ID, CertificationID: pmp, CertificationName: "PMP"},
	}

	f.reqs.sets = map[uuid.UUID]repository.RequirementSet{
		clientID: {
			SkillIDs:         []uuid.UUID{python, sqlSkill},
			CertificationIDs: []uuid.UUID{pmp},
		},
	}

	out, err := f.uc.RankAgents(context.Background(), clientID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 ranked agents, got %d", len(out))
	}

	if out[0].EmployeeID != empB.ID || out[0].MatchScore != 30 {
		t.Fatalf("expected B first at 30, got %s at %d", out[0].Name, out[0].MatchScore)
	}
	if out[1].EmployeeID != empA.ID || out[1].MatchScore != 20 {
		t.Fatalf("expected A second at 20, got %s at %d", out[1].Name, out[1].MatchScore)
	}
}

func TestRankAgents_NoRequirementsReturnsAllAtZero(t *testing.T) {
	f := newMatchingFixture()

	clientID := uuid.New()
	f.clients.existing[clientID] = repository.Client{ID: clientID, Name: "Acme"}

	f.emps.items = []repository.Employee{
		{ID: uuid.New(), Name: "low", PerformanceScore: 20},
		{ID: uuid.New(), Name: "high", PerformanceScore: 95},
	}

	out, err := f.uc.RankAgents(context.Background(), clientID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected all employees, got %d", len(out))
	}
	for _, m := range out {
		if m.MatchScore != 0 {
			t.Fatalf("expected score 0, got %d", m.MatchScore)
		}
	}
	if out[0].Name != "high" {
		t.Fatalf("expected performance tie-break, got %s first", out[0].Name)
	}
}

func TestRankAgents_StorageErrorClassified(t *testing.T) {
	f := newMatchingFixture()

	clientID := uuid.New()
	f.clients.existing[clientID] = repository.Client{ID: clientID, Name: "Acme"}
	f.emps.err = errors.New("connection refused")

	_, err := f.uc.RankAgents(context.Background(), clientID)
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
}

func TestRankAgents_ServesCachedRanking(t *testing.T) {
	f := newMatchingFixture()
	f.uc = NewMatchingUsecase(f.clients, f.emps, f.empSkill, f.empCert, f.reqs, f.cache, 1)

	clientID := uuid.New()
	f.clients.existing[clientID] = repository.Client{ID: clientID, Name: "Acme"}
	f.emps.items = []repository.Employee{{ID: uuid.New(), Name: "only"}}

	first, err := f.uc.RankAgents(context.Background(), clientID)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}

	// Mutate the store behind the cache; the cached ranking should still be
	// served until invalidated.
	f.emps.items = append(f.emps.items, repository.Employee{ID: uuid.New(), Name: "late"})

	second, err := f.uc.RankAgents(context.Background(), clientID)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if len(second) != len(first) {
		t.Fatalf("expected cached ranking of %d agents, got %d", len(first), len(second))
	}
}

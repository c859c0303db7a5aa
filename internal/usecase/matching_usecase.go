package usecase

import (
	"context"
	"time"

	"agent-match/internal/domain/matching"
	"agent-match/internal/repository"

	"github.com/google/uuid"
)

type MatchingUsecase interface {
	RankAgents(ctx context.Context, clientID uuid.UUID) ([]matching.AgentMatch, error)
}

type Matching struct {
	clients       repository.ClientRepository
	employees     repository.EmployeeRepository
	employeeSkill repository.EmployeeSkillRepository
	employeeCert  repository.EmployeeCertificationRepository
	requirements  repository.ClientRequirementRepository

	cache    RankingCache
	cacheTTL time.Duration
}

func NewMatchingUsecase(
	clients repository.ClientRepository,
	employees repository.EmployeeRepository,
	employeeSkill repository.EmployeeSkillRepository,
	employeeCert repository.EmployeeCertificationRepository,
	requirements repository.ClientRequirementRepository,
	cache RankingCache,
	cacheTTL time.Duration,
) *Matching {
	return &Matching{
		clients:       clients,
		employees:     employees,
		employeeSkill: employeeSkill,
		employeeCert:  employeeCert,
		requirements:  requirements,
		cache:         cache,
		cacheTTL:      cacheTTL,
	}
}

// RankAgents returns every employee ranked against the client's requirement
// set, best match first. It reads, computes and returns; nothing is mutated.
// An unknown client is an error, not an empty ranking.
func (u *Matching) RankAgents(ctx context.Context, clientID uuid.UUID) ([]matching.AgentMatch, error) {
	if clientID == uuid.Nil {
		return nil, ErrClientNotFound
	}

	exists, err := u.clients.ExistsByID(ctx, clientID)
	if err != nil {
		return nil, storageErr(err)
	}
	if !exists {
		return nil, ErrClientNotFound
	}

	key := rankingCacheKey(clientID)
	if u.cache != nil {
		var cached []matching.AgentMatch
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	req, err := u.requirements.GetByClientID(ctx, clientID)
	if err != nil {
		return nil, storageErr(err)
	}

	employees, err := u.employees.ListAll(ctx)
	if err != nil {
		return nil, storageErr(err)
	}

	skillAssocs, err := u.employeeSkill.ListAll(ctx)
	if err != nil {
		return nil, storageErr(err)
	}
	certAssocs, err := u.employeeCert.ListAll(ctx)
	if err != nil {
		return nil, storageErr(err)
	}

	skillsByEmployee := make(map[uuid.UUID][]uuid.UUID, len(employees))
	skillNames := make(map[uuid.UUID]string)
	for _, es := range skillAssocs {
		skillsByEmployee[es.EmployeeID] = append(skillsByEmployee[es.EmployeeID], es.SkillID)
		skillNames[es.SkillID] = es.SkillName
	}

	certsByEmployee := make(map[uuid.UUID][]uuid.UUID, len(employees))
	certNames := make(map[uuid.UUID]string)
	for _, ec := range certAssocs {
		certsByEmployee[ec.EmployeeID] = append(certsByEmployee[ec.EmployeeID], ec.CertificationID)
		certNames[ec.CertificationID] = ec.CertificationName
	}

	agents := make([]matching.Agent, 0, len(employees))
	for _, e := range employees {
		agents = append(agents, matching.Agent{
			ID:               e.ID,
			Name:             e.Name,
			Role:             e.Role,
			ExperienceYears:  e.ExperienceYears,
			PerformanceScore: e.PerformanceScore,
			SkillIDs:         skillsByEmployee[e.ID],
			CertificationIDs: certsByEmployee[e.ID],
		})
	}

	ranked := matching.Rank(agents, matching.RequirementSet{
		SkillIDs:         req.SkillIDs,
		CertificationIDs: req.CertificationIDs,
	}, skillNames, certNames)

	if u.cache != nil && u.cacheTTL > 0 {
		_ = u.cache.SetJSON(ctx, key, ranked, u.cacheTTL)
	}

	return ranked, nil
}

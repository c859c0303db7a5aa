package usecase

import (
	"context"
	"errors"
	"fmt"

	"agent-match/internal/repository"
	"agent-match/internal/ws"

	"github.com/google/uuid"
)

var (
	ErrClientNotFound     = errors.New("client not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

type RequirementUsecase interface {
	SaveRequirements(ctx context.Context, clientID uuid.UUID, skillIDs, certificationIDs []uuid.UUID) error
}

type Requirement struct {
	clients        repository.ClientRepository
	skills         repository.SkillRepository
	certifications repository.CertificationRepository
	requirements   repository.ClientRequirementRepository
	cache          RankingCache
}

func NewRequirementUsecase(
	clients repository.ClientRepository,
	skills repository.SkillRepository,
	certifications repository.CertificationRepository,
	requirements repository.ClientRequirementRepository,
	cache RankingCache,
) *Requirement {
	return &Requirement{
		clients:        clients,
		skills:         skills,
		certifications: certifications,
		requirements:   requirements,
		cache:          cache,
	}
}

// SaveRequirements replaces the client's requirement set with exactly the
// given ids. Duplicates in the input collapse, every id must refer to an
// existing skill or certification, and an empty input clears the set.
func (u *Requirement) SaveRequirements(ctx context.Context, clientID uuid.UUID, skillIDs, certificationIDs []uuid.UUID) error {
	if clientID == uuid.Nil {
		return ErrClientNotFound
	}

	exists, err := u.clients.ExistsByID(ctx, clientID)
	if err != nil {
		return storageErr(err)
	}
	if !exists {
		return ErrClientNotFound
	}

	skillIDs, err = dedupeIDs(skillIDs)
	if err != nil {
		return err
	}
	certificationIDs, err = dedupeIDs(certificationIDs)
	if err != nil {
		return err
	}

	if err := u.checkAllExist(ctx, skillIDs, u.skills.ExistingIDs, "skill"); err != nil {
		return err
	}
	if err := u.checkAllExist(ctx, certificationIDs, u.certifications.ExistingIDs, "certification"); err != nil {
		return err
	}

	if err := u.requirements.Replace(ctx, clientID, skillIDs, certificationIDs); err != nil {
		return storageErr(err)
	}

	if u.cache != nil {
		_ = u.cache.Delete(ctx, rankingCacheKey(clientID))
	}
	ws.NotifyRequirementsUpdated(clientID)

	return nil
}

func (u *Requirement) checkAllExist(
	ctx context.Context,
	ids []uuid.UUID,
	lookup func(context.Context, []uuid.UUID) (map[uuid.UUID]struct{}, error),
	kind string,
) error {
	if len(ids) == 0 {
		return nil
	}

	existing, err := lookup(ctx, ids)
	if err != nil {
		return storageErr(err)
	}
	for _, id := range ids {
		if _, ok := existing[id]; !ok {
			return fmt.Errorf("%w: unknown %s id %s", ErrInvalidInput, kind, id)
		}
	}
	return nil
}

// dedupeIDs collapses duplicates preserving first-seen order. A nil id can
// never refer to a stored record, so it is rejected rather than dropped.
func dedupeIDs(ids []uuid.UUID) ([]uuid.UUID, error) {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			return nil, fmt.Errorf("%w: nil id", ErrInvalidInput)
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}

func storageErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}

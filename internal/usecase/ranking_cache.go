package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RankingCache is the read-through cache in front of RankAgents. A nil
// implementation is allowed; callers treat every miss and every cache error
// as a fall-through to the store.
type RankingCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

func rankingCacheKey(clientID uuid.UUID) string {
	return "ranking:client:" + clientID.String()
}

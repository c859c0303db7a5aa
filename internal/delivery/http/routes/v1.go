package routes

import (
	"agent-match/internal/config"
	"agent-match/internal/database"
	v1 "agent-match/internal/delivery/http/routes/v1"
	"agent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, cfg config.Config, db database.DB, cache usecase.RankingCache) {
	if r == nil {
		return
	}

	v1.Register(r, cfg, db, cache)
}

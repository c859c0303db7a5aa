package routes

import (
	"agent-match/internal/config"
	"agent-match/internal/database"
	"agent-match/internal/delivery/http/handler"
	"agent-match/internal/usecase"
	"agent-match/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler
}

func NewRegistry() *Registry {
	return &Registry{health: handler.NewHealthHandler()}
}

func (r *Registry) Register(app *fiber.App, cfg config.Config, db database.DB, cache usecase.RankingCache, wsHandler *ws.Handler) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app, cfg, db, cache)

	if wsHandler != nil {
		app.Get("/ws", wsHandler.HandleEventsWS)
	}
}

func (r *Registry) registerHealth(app *fiber.App) {
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerAPI(app *fiber.App, cfg config.Config, db database.DB, cache usecase.RankingCache) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), cfg, db, cache)
}

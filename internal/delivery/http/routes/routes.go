package routes

import (
	"log"

	"cablib/internal/config"
	"cablib/internal/delivery/http/handler"
	"cablib/internal/infrastructure/cache"
	"cablib/internal/infrastructure/persistence/mongodb"
	"cablib/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	cfg    config.Config
	mongo  *mongodb.Mongo
	cache  *cache.Redis
	hub    *ws.Hub
	logger *log.Logger
}

func NewRegistry(cfg config.Config, mongo *mongodb.Mongo, redis *cache.Redis, hub *ws.Hub, logger *log.Logger) *Registry {
	return &Registry{cfg: cfg, mongo: mongo, cache: redis, hub: hub, logger: logger}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	health := handler.NewHealthHandler(r.mongo, r.cache)
	health.RegisterRoutes(app)

	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.cfg, r.mongo, r.cache, r.hub, r.logger)
}

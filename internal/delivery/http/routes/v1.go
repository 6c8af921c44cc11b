package routes

import (
	"log"

	"cablib/internal/config"
	v1 "cablib/internal/delivery/http/routes/v1"
	"cablib/internal/infrastructure/cache"
	"cablib/internal/infrastructure/persistence/mongodb"
	"cablib/internal/ws"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, cfg config.Config, mongo *mongodb.Mongo, redis *cache.Redis, hub *ws.Hub, logger *log.Logger) {
	if r == nil {
		return
	}

	v1.Register(r, cfg, mongo, redis, hub, logger)
}

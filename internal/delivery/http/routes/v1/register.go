package v1

import (
	"log"

	"cablib/internal/config"
	"cablib/internal/delivery/http/handler"
	"cablib/internal/delivery/http/middleware"
	"cablib/internal/infrastructure/cache"
	"cablib/internal/infrastructure/persistence/mongodb"
	"cablib/internal/pkg/jwt"
	"cablib/internal/repository"
	"cablib/internal/usecase"
	"cablib/internal/ws"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, cfg config.Config, mongo *mongodb.Mongo, redis *cache.Redis, hub *ws.Hub, logger *log.Logger) {
	if r == nil || mongo == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewMongoUserRepository(mongo.Collection("users"))
	listingRepo := repository.NewMongoListingRepository(mongo.Collection("listings"))
	favoriteRepo := repository.NewMongoFavoriteRepository(mongo.Collection("favorites"))
	alertRepo := repository.NewMongoAlertRepository(mongo.Collection("alerts"))
	visitRepo := repository.NewMongoVisitRepository(mongo.Collection("visits"))
	documentRepo := repository.NewMongoDocumentRepository(mongo.Collection("documents"))
	messageRepo := repository.NewMongoMessageRepository(mongo.Collection("messages"))
	searchLogRepo := repository.NewMongoSearchLogRepository(mongo.Collection("search_logs"))

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	searchUC := usecase.NewListingSearchUsecase(listingRepo, redis, logger)
	listingUC := usecase.NewListingUsecase(listingRepo, redis, logger)
	matchingUC := usecase.NewMatchingUsecase(userRepo, listingRepo)
	favoriteUC := usecase.NewFavoriteUsecase(favoriteRepo, listingRepo)
	alertUC := usecase.NewAlertUsecase(alertRepo, searchUC)
	visitUC := usecase.NewVisitUsecase(visitRepo, listingRepo, userRepo)
	documentUC := usecase.NewDocumentUsecase(documentRepo, cfg.App.PublicBaseURL)
	messageUC := usecase.NewMessageUsecase(messageRepo, userRepo, ws.NewNotifier(hub))
	searchLogUC := usecase.NewSearchLogUsecase(searchLogRepo, userRepo)

	authHandler := handler.NewAuthHandler(authUC)
	listingHandler := handler.NewListingHandler(listingUC, searchUC, searchLogUC)
	matchHandler := handler.NewMatchHandler(matchingUC)
	favoriteHandler := handler.NewFavoriteHandler(favoriteUC)
	alertHandler := handler.NewAlertHandler(alertUC)
	visitHandler := handler.NewVisitHandler(visitUC)
	documentHandler := handler.NewDocumentHandler(documentUC)
	messageHandler := handler.NewMessageHandler(messageUC)
	searchLogHandler := handler.NewSearchLogHandler(searchLogUC)
	analyticsHandler := handler.NewAnalyticsHandler(searchLogUC)

	authGroup := r.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	protected := r.Group("", authMw.Middleware())

	authHandler.RegisterProtectedRoutes(protected.Group("/auth"))
	listingHandler.RegisterRoutes(protected.Group("/listings"))
	matchHandler.RegisterRoutes(protected.Group("/matches"))
	favoriteHandler.RegisterRoutes(protected.Group("/favorites"))
	alertHandler.RegisterRoutes(protected.Group("/alerts"))
	visitHandler.RegisterRoutes(protected.Group("/visits"))
	documentHandler.RegisterRoutes(protected.Group("/documents"))
	messageHandler.RegisterRoutes(protected.Group("/messages"))
	messageHandler.RegisterConversationRoutes(protected.Group("/conversations"))
	searchLogHandler.RegisterRoutes(protected.Group("/search-logs"))
	analyticsHandler.RegisterRoutes(protected.Group("/analytics"))

	wsHandler := ws.NewHandler(hub, jwtSvc, logger)
	r.Get("/ws", wsHandler.HandleMessagesWS)
}

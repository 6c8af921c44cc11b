package handler

import (
	"errors"

	"cablib/internal/delivery/http/dto"
	"cablib/internal/delivery/http/middleware"
	"cablib/internal/pkg/response"
	"cablib/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// AnalyticsHandler exposes the admin-only search log aggregations.
type AnalyticsHandler struct {
	uc usecase.SearchLogUsecase
}

func NewAnalyticsHandler(uc usecase.SearchLogUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

func (h *AnalyticsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/searches", h.Stats)
	r.Get("/searches-by-city/:city", h.ByCity)
}

func (h *AnalyticsHandler) Stats(c fiber.Ctx) error {
	stats, err := h.uc.Stats(c.Context(), middleware.UserType(c))
	if err != nil {
		return mapAnalyticsUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromSearchStats(stats))
}

func (h *AnalyticsHandler) ByCity(c fiber.Ctx) error {
	logs, err := h.uc.ByCity(c.Context(), middleware.UserType(c), c.Params("city"))
	if err != nil {
		return mapAnalyticsUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromSearchLogs(logs))
}

func mapAnalyticsUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Admin only", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

package handler

import (
	"errors"

	"cablib/internal/delivery/http/dto"
	"cablib/internal/delivery/http/middleware"
	"cablib/internal/pkg/response"
	"cablib/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AlertHandler struct {
	uc usecase.AlertUsecase
}

type alertRequest struct {
	Name          string `json:"name"`
	City          string `json:"city"`
	RadiusKm      int    `json:"radius_km"`
	StructureType string `json:"structure_type"`
	Profession    string `json:"profession"`
	MaxRent       int    `json:"max_rent"`
	MinSize       int    `json:"min_size"`
}

type alertActiveRequest struct {
	Active bool `json:"active"`
}

func NewAlertHandler(uc usecase.AlertUsecase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

func (h *AlertHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/:id", h.SetActive)
	r.Delete("/:id", h.Delete)
	r.Get("/:id/matches", h.Matches)
}

func (h *AlertHandler) List(c fiber.Ctx) error {
	alerts, err := h.uc.List(c.Context(), middleware.UserID(c), middleware.UserType(c))
	if err != nil {
		return mapAlertUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromAlerts(alerts))
}

func (h *AlertHandler) Create(c fiber.Ctx) error {
	var req alertRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	a, err := h.uc.Create(c.Context(), middleware.UserID(c), middleware.UserType(c), usecase.AlertInput{
		Name:          req.Name,
		City:          req.City,
		RadiusKm:      req.RadiusKm,
		StructureType: req.StructureType,
		Profession:    req.Profession,
		MaxRent:       req.MaxRent,
		MinSize:       req.MinSize,
	})
	if err != nil {
		return mapAlertUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.FromAlert(a))
}

func (h *AlertHandler) SetActive(c fiber.Ctx) error {
	var req alertActiveRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	a, err := h.uc.SetActive(c.Context(), c.Params("id"), middleware.UserID(c), req.Active)
	if err != nil {
		return mapAlertUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromAlert(a))
}

func (h *AlertHandler) Delete(c fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id"), middleware.UserID(c)); err != nil {
		return mapAlertUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *AlertHandler) Matches(c fiber.Ctx) error {
	listings, err := h.uc.Matches(c.Context(), c.Params("id"), middleware.UserID(c))
	if err != nil {
		return mapAlertUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromListings(listings))
}

func mapAlertUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrAlertNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Alert not found", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Alerts are reserved for practitioners", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

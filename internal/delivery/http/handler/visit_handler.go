package handler

import (
	"errors"

	"cablib/internal/delivery/http/dto"
	"cablib/internal/delivery/http/middleware"
	"cablib/internal/domain/user"
	"cablib/internal/pkg/response"
	"cablib/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type VisitHandler struct {
	uc usecase.VisitUsecase
}

type visitRequest struct {
	ListingID string `json:"listing_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Message   string `json:"message"`
}

type visitStatusRequest struct {
	Status string `json:"status"`
}

func NewVisitHandler(uc usecase.VisitUsecase) *VisitHandler {
	return &VisitHandler{uc: uc}
}

func (h *VisitHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Request)
	r.Get("/practitioner", h.ListAsPractitioner)
	r.Get("/owner", h.ListAsOwner)
	r.Put("/:id/status", h.UpdateStatus)
	r.Delete("/:id", h.Cancel)
}

func (h *VisitHandler) ListAsPractitioner(c fiber.Ctx) error {
	visits, err := h.uc.ListMine(c.Context(), middleware.UserID(c), user.TypeLocataire)
	if err != nil {
		return mapVisitUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromVisits(visits))
}

func (h *VisitHandler) ListAsOwner(c fiber.Ctx) error {
	visits, err := h.uc.ListMine(c.Context(), middleware.UserID(c), user.TypeProprietaire)
	if err != nil {
		return mapVisitUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromVisits(visits))
}

func (h *VisitHandler) Request(c fiber.Ctx) error {
	var req visitRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	v, err := h.uc.Request(c.Context(), middleware.UserID(c), usecase.VisitInput{
		ListingID: req.ListingID,
		Date:      req.Date,
		Time:      req.Time,
		Message:   req.Message,
	})
	if err != nil {
		return mapVisitUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.FromVisit(v))
}

func (h *VisitHandler) UpdateStatus(c fiber.Ctx) error {
	var req visitStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	v, err := h.uc.UpdateStatus(c.Context(), c.Params("id"), middleware.UserID(c), req.Status)
	if err != nil {
		return mapVisitUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromVisit(v))
}

func (h *VisitHandler) Cancel(c fiber.Ctx) error {
	if err := h.uc.Cancel(c.Context(), c.Params("id"), middleware.UserID(c)); err != nil {
		return mapVisitUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func mapVisitUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrVisitNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Visit not found", nil, err)
	case errors.Is(err, usecase.ErrListingNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Listing not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidVisitState):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid visit status", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

package handler

import (
	"errors"

	"cablib/internal/delivery/http/dto"
	"cablib/internal/delivery/http/middleware"
	"cablib/internal/pkg/response"
	"cablib/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type FavoriteHandler struct {
	uc usecase.FavoriteUsecase
}

func NewFavoriteHandler(uc usecase.FavoriteUsecase) *FavoriteHandler {
	return &FavoriteHandler{uc: uc}
}

func (h *FavoriteHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Post("/", h.Add)
	r.Delete("/:listingId", h.Remove)
}

func (h *FavoriteHandler) List(c fiber.Ctx) error {
	listings, err := h.uc.List(c.Context(), middleware.UserID(c))
	if err != nil {
		return mapFavoriteUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromListings(listings))
}

func (h *FavoriteHandler) Add(c fiber.Ctx) error {
	var req struct {
		ListingID string `json:"listing_id"`
	}
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	f, err := h.uc.Add(c.Context(), middleware.UserID(c), req.ListingID)
	if err != nil {
		return mapFavoriteUsecaseError(err)
	}

	data := map[string]any{"id": f.ID, "listing_id": f.ListingID, "created_at": f.CreatedAt}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, data)
}

func (h *FavoriteHandler) Remove(c fiber.Ctx) error {
	if err := h.uc.Remove(c.Context(), middleware.UserID(c), c.Params("listingId")); err != nil {
		return mapFavoriteUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func mapFavoriteUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrAlreadyFavorited):
		return middleware.NewAppError(fiber.StatusConflict, "Listing already in favorites", nil, err)
	case errors.Is(err, usecase.ErrFavoriteNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Favorite not found", nil, err)
	case errors.Is(err, usecase.ErrListingNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Listing not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

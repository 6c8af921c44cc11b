package handler

import (
	"cablib/internal/delivery/http/middleware"
	"cablib/internal/pkg/response"
	"cablib/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// SearchLogHandler lets clients record searches they ran themselves,
// for example from a cached result page.
type SearchLogHandler struct {
	uc usecase.SearchLogUsecase
}

type searchLogRequest struct {
	City          string `json:"city"`
	RadiusKm      int    `json:"radius_km"`
	StructureType string `json:"structure_type"`
	Profession    string `json:"profession"`
}

func NewSearchLogHandler(uc usecase.SearchLogUsecase) *SearchLogHandler {
	return &SearchLogHandler{uc: uc}
}

func (h *SearchLogHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Log)
}

func (h *SearchLogHandler) Log(c fiber.Ctx) error {
	var req searchLogRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	err := h.uc.Log(c.Context(), middleware.UserID(c), usecase.ListingSearchParams{
		City:          req.City,
		RadiusKm:      req.RadiusKm,
		StructureType: req.StructureType,
		Profession:    req.Profession,
	})
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, nil)
}

package handler

import (
	"errors"
	"strconv"

	"cablib/internal/delivery/http/dto"
	"cablib/internal/delivery/http/middleware"
	"cablib/internal/pkg/response"
	"cablib/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ListingHandler struct {
	uc       usecase.ListingUsecase
	searchUC usecase.ListingSearchUsecase
	logUC    usecase.SearchLogUsecase
}

type listingRequest struct {
	Title                string   `json:"title"`
	City                 string   `json:"city"`
	Address              string   `json:"address"`
	StructureType        string   `json:"structure_type"`
	Size                 int      `json:"size"`
	MonthlyRent          int      `json:"monthly_rent"`
	Description          string   `json:"description"`
	Photos               []string `json:"photos"`
	ProfessionalsPresent []string `json:"professionals_present"`
	ProfilesSearched     []string `json:"profiles_searched"`
}

func NewListingHandler(uc usecase.ListingUsecase, searchUC usecase.ListingSearchUsecase, logUC usecase.SearchLogUsecase) *ListingHandler {
	return &ListingHandler{uc: uc, searchUC: searchUC, logUC: logUC}
}

func (h *ListingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.Search)
	r.Get("/:id", h.Get)
	r.Post("/", h.Create)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Delete)
}

// Search handles both the plain filtered listing and the radius search,
// depending on the city and radius query parameters.
func (h *ListingHandler) Search(c fiber.Ctx) error {
	radius, err := queryInt(c, "radius")
	if err != nil {
		return err
	}
	minSize, err := queryInt(c, "min_size")
	if err != nil {
		return err
	}
	maxRent, err := queryInt(c, "max_rent")
	if err != nil {
		return err
	}

	params := usecase.ListingSearchParams{
		City:          c.Query("city"),
		RadiusKm:      radius,
		StructureType: c.Query("structure_type"),
		MinSize:       minSize,
		MaxRent:       maxRent,
		Profession:    c.Query("profession"),
	}

	res, err := h.searchUC.Search(c.Context(), params)
	if err != nil {
		return mapListingUsecaseError(err)
	}

	if h.logUC != nil {
		// Logging failures must never break a search.
		_ = h.logUC.Log(c.Context(), middleware.UserID(c), params)
	}

	items := make([]dto.ListingResponse, 0, len(res.Listings))
	for _, l := range res.Listings {
		items = append(items, dto.FromListingWithDistance(l, res.GeoFiltered))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *ListingHandler) Get(c fiber.Ctx) error {
	l, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return mapListingUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromListing(l))
}

func (h *ListingHandler) Create(c fiber.Ctx) error {
	var req listingRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	l, err := h.uc.Create(c.Context(), middleware.UserID(c), middleware.UserType(c), listingInputFromRequest(req))
	if err != nil {
		return mapListingUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.FromListing(l))
}

func (h *ListingHandler) Update(c fiber.Ctx) error {
	var req listingRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	l, err := h.uc.Update(c.Context(), c.Params("id"), middleware.UserID(c), listingInputFromRequest(req))
	if err != nil {
		return mapListingUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromListing(l))
}

func (h *ListingHandler) Delete(c fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id"), middleware.UserID(c)); err != nil {
		return mapListingUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func listingInputFromRequest(req listingRequest) usecase.ListingInput {
	return usecase.ListingInput{
		Title:                req.Title,
		City:                 req.City,
		Address:              req.Address,
		StructureType:        req.StructureType,
		Size:                 req.Size,
		MonthlyRent:          req.MonthlyRent,
		Description:          req.Description,
		Photos:               req.Photos,
		ProfessionalsPresent: req.ProfessionalsPresent,
		ProfilesSearched:     req.ProfilesSearched,
	}
}

// queryInt parses an optional integer query parameter. A present but
// non-numeric value is a client error, not a disabled filter.
func queryInt(c fiber.Ctx, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, middleware.NewAppError(fiber.StatusBadRequest, "Invalid "+name+" parameter", nil, err)
	}
	return n, nil
}

func mapListingUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrListingNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Listing not found", nil, err)
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

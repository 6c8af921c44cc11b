package handler

import (
	"errors"

	"cablib/internal/delivery/http/dto"
	"cablib/internal/delivery/http/middleware"
	"cablib/internal/pkg/response"
	"cablib/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type DocumentHandler struct {
	uc usecase.DocumentUsecase
}

type documentRequest struct {
	Filename string `json:"filename"`
	FileSize int64  `json:"file_size"`
}

func NewDocumentHandler(uc usecase.DocumentUsecase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

func (h *DocumentHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Post("/", h.Register)
	r.Delete("/:id", h.Delete)
}

func (h *DocumentHandler) List(c fiber.Ctx) error {
	docs, err := h.uc.List(c.Context(), middleware.UserID(c))
	if err != nil {
		return mapDocumentUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromDocuments(docs))
}

func (h *DocumentHandler) Register(c fiber.Ctx) error {
	var req documentRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	d, err := h.uc.Register(c.Context(), middleware.UserID(c), usecase.DocumentInput{
		OriginalFilename: req.Filename,
		FileSize:         req.FileSize,
	})
	if err != nil {
		return mapDocumentUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.FromDocument(d))
}

func (h *DocumentHandler) Delete(c fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id"), middleware.UserID(c)); err != nil {
		return mapDocumentUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func mapDocumentUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrDocumentNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Document not found", nil, err)
	case errors.Is(err, usecase.ErrUnsupportedFileType):
		return middleware.NewAppError(fiber.StatusBadRequest, "Unsupported file type", nil, err)
	case errors.Is(err, usecase.ErrFileTooLarge):
		return middleware.NewAppError(fiber.StatusBadRequest, "File too large", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

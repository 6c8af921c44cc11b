package handler

import (
	"errors"

	"cablib/internal/delivery/http/dto"
	"cablib/internal/delivery/http/middleware"
	"cablib/internal/pkg/response"
	"cablib/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MessageHandler struct {
	uc usecase.MessageUsecase
}

type messageRequest struct {
	RecipientID string `json:"recipient_id"`
	ListingID   string `json:"listing_id"`
	Body        string `json:"body"`
}

func NewMessageHandler(uc usecase.MessageUsecase) *MessageHandler {
	return &MessageHandler{uc: uc}
}

func (h *MessageHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Send)
	r.Get("/:peerId", h.Conversation)
}

func (h *MessageHandler) RegisterConversationRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.Conversations)
}

func (h *MessageHandler) Send(c fiber.Ctx) error {
	var req messageRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	m, err := h.uc.Send(c.Context(), middleware.UserID(c), usecase.MessageInput{
		RecipientID: req.RecipientID,
		ListingID:   req.ListingID,
		Body:        req.Body,
	})
	if err != nil {
		return mapMessageUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.FromMessage(m))
}

func (h *MessageHandler) Conversations(c fiber.Ctx) error {
	convs, err := h.uc.Conversations(c.Context(), middleware.UserID(c))
	if err != nil {
		return mapMessageUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromConversations(convs))
}

func (h *MessageHandler) Conversation(c fiber.Ctx) error {
	msgs, err := h.uc.Conversation(c.Context(), middleware.UserID(c), c.Params("peerId"))
	if err != nil {
		return mapMessageUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromMessages(msgs))
}

func mapMessageUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrRecipientNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Recipient not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

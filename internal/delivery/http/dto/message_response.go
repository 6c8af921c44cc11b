package dto

import (
	"time"

	"cablib/internal/domain/message"
)

type MessageResponse struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"sender_id"`
	RecipientID string    `json:"recipient_id"`
	ListingID   string    `json:"listing_id,omitempty"`
	Body        string    `json:"body"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromMessage(m message.Message) MessageResponse {
	return MessageResponse{
		ID:          m.ID,
		SenderID:    m.SenderID,
		RecipientID: m.RecipientID,
		ListingID:   m.ListingID,
		Body:        m.Body,
		CreatedAt:   m.CreatedAt,
	}
}

func FromMessages(ms []message.Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromMessage(m))
	}
	return out
}

type ConversationResponse struct {
	PeerID      string          `json:"peer_id"`
	LastMessage MessageResponse `json:"last_message"`
}

func FromConversations(cs []message.Conversation) []ConversationResponse {
	out := make([]ConversationResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, ConversationResponse{PeerID: c.PeerID, LastMessage: FromMessage(c.LastMessage)})
	}
	return out
}

package ws

import (
	"encoding/json"
	"time"

	"cablib/internal/domain/message"
)

type NewMessageEvent struct {
	Type      string `json:"type"`
	MessageID string `json:"message_id"`
	SenderID  string `json:"sender_id"`
	ListingID string `json:"listing_id,omitempty"`
	Body      string `json:"body"`
	Timestamp string `json:"timestamp"`
}

// Notifier adapts the hub to the messaging usecase.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) NotifyNewMessage(recipientID string, m message.Message) {
	if n == nil || n.hub == nil {
		return
	}

	evt := NewMessageEvent{
		Type:      "new_message",
		MessageID: m.ID,
		SenderID:  m.SenderID,
		ListingID: m.ListingID,
		Body:      m.Body,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	n.hub.SendToUser(recipientID, b)
}

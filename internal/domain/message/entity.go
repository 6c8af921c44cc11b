package message

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("message not found")

type Message struct {
	ID          string    `bson:"id"`
	SenderID    string    `bson:"sender_id"`
	RecipientID string    `bson:"recipient_id"`
	ListingID   string    `bson:"listing_id,omitempty"`
	Body        string    `bson:"body"`
	CreatedAt   time.Time `bson:"created_at"`
}

// Conversation summarizes the exchange with one peer.
type Conversation struct {
	PeerID      string
	LastMessage Message
}

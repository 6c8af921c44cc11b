package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"cablib/internal/domain/message"
	"cablib/internal/domain/user"
	"cablib/internal/repository"

	"github.com/google/uuid"
)

var ErrRecipientNotFound = errors.New("recipient not found")

// MessageNotifier pushes realtime events to connected clients. A nil
// notifier disables push without affecting persistence.
type MessageNotifier interface {
	NotifyNewMessage(recipientID string, m message.Message)
}

type MessageInput struct {
	RecipientID string
	ListingID   string
	Body        string
}

type MessageUsecase interface {
	Send(ctx context.Context, senderID string, in MessageInput) (message.Message, error)
	Conversation(ctx context.Context, callerID, peerID string) ([]message.Message, error)
	Conversations(ctx context.Context, callerID string) ([]message.Conversation, error)
}

type Messages struct {
	messages repository.MessageRepository
	users    repository.UserRepository
	notifier MessageNotifier
}

func NewMessageUsecase(messages repository.MessageRepository, users repository.UserRepository, notifier MessageNotifier) *Messages {
	return &Messages{messages: messages, users: users, notifier: notifier}
}

func (u *Messages) Send(ctx context.Context, senderID string, in MessageInput) (message.Message, error) {
	if in.RecipientID == "" || in.Body == "" || in.RecipientID == senderID {
		return message.Message{}, ErrInvalidInput
	}

	if _, err := u.users.GetByID(ctx, in.RecipientID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return message.Message{}, ErrRecipientNotFound
		}
		return message.Message{}, ErrInternal
	}

	m := message.Message{
		ID:          uuid.NewString(),
		SenderID:    senderID,
		RecipientID: in.RecipientID,
		ListingID:   in.ListingID,
		Body:        in.Body,
		CreatedAt:   time.Now().UTC(),
	}
	if err := u.messages.Create(ctx, m); err != nil {
		return message.Message{}, ErrInternal
	}

	if u.notifier != nil {
		u.notifier.NotifyNewMessage(in.RecipientID, m)
	}
	return m, nil
}

func (u *Messages) Conversation(ctx context.Context, callerID, peerID string) ([]message.Message, error) {
	if peerID == "" {
		return nil, ErrInvalidInput
	}
	out, err := u.messages.FindConversation(ctx, callerID, peerID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

// Conversations folds the caller's messages into one entry per peer,
// most recently active first.
func (u *Messages) Conversations(ctx context.Context, callerID string) ([]message.Conversation, error) {
	rows, err := u.messages.FindInvolving(ctx, callerID)
	if err != nil {
		return nil, ErrInternal
	}

	latest := make(map[string]message.Message)
	for _, m := range rows {
		peer := m.SenderID
		if peer == callerID {
			peer = m.RecipientID
		}
		if cur, ok := latest[peer]; !ok || m.CreatedAt.After(cur.CreatedAt) {
			latest[peer] = m
		}
	}

	out := make([]message.Conversation, 0, len(latest))
	for peer, m := range latest {
		out = append(out, message.Conversation{PeerID: peer, LastMessage: m})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].LastMessage.CreatedAt.After(out[j].LastMessage.CreatedAt)
	})
	return out, nil
}

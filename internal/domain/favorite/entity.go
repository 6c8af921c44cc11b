package favorite

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("favorite not found")
	ErrAlreadyExists = errors.New("favorite already exists")
)

type Favorite struct {
	ID        string    `bson:"id"`
	UserID    string    `bson:"user_id"`
	ListingID string    `bson:"listing_id"`
	CreatedAt time.Time `bson:"created_at"`
}

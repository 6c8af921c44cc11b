package visit

import (
	"errors"
	"time"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

var ErrNotFound = errors.New("visit not found")

// Visit snapshots the practitioner's identity at request time so the
// owner sees who asked even if the profile changes later.
type Visit struct {
	ID                     string    `bson:"id"`
	ListingID              string    `bson:"listing_id"`
	PractitionerID         string    `bson:"practitioner_id"`
	PractitionerName       string    `bson:"practitioner_name"`
	PractitionerEmail      string    `bson:"practitioner_email"`
	PractitionerProfession string    `bson:"practitioner_profession"`
	OwnerID                string    `bson:"owner_id"`
	Date                   string    `bson:"date"`
	Time                   string    `bson:"time"`
	Message                string    `bson:"message,omitempty"`
	Status                 string    `bson:"status"`
	CreatedAt              time.Time `bson:"created_at"`
}

func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusCancelled
}

package user

import (
	"errors"
	"time"
)

const (
	TypeLocataire    = "locataire"
	TypeProprietaire = "proprietaire"
	TypeAdmin        = "admin"
)

var ErrNotFound = errors.New("user not found")

type User struct {
	ID           string    `bson:"id"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password"`
	FirstName    string    `bson:"first_name"`
	LastName     string    `bson:"last_name"`
	RPPSNumber   string    `bson:"rpps_number"`
	Profession   string    `bson:"profession"`
	UserType     string    `bson:"user_type"`

	// Matching preferences. Zero values mean no preference.
	PreferredCity          string `bson:"preferred_city,omitempty"`
	MaxBudget              int    `bson:"max_budget,omitempty"`
	MinSize                int    `bson:"min_size,omitempty"`
	PreferredStructureType string `bson:"preferred_structure_type,omitempty"`

	CreatedAt time.Time `bson:"created_at"`
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

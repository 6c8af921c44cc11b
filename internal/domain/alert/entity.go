package alert

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("alert not found")

// Alert is a saved search. Zero-valued criteria are disabled filters.
type Alert struct {
	ID            string     `bson:"id"`
	UserID        string     `bson:"user_id"`
	Name          string     `bson:"name"`
	City          string     `bson:"city,omitempty"`
	RadiusKm      int        `bson:"radius,omitempty"`
	StructureType string     `bson:"structure_type,omitempty"`
	Profession    string     `bson:"profession,omitempty"`
	MaxRent       int        `bson:"max_rent,omitempty"`
	MinSize       int        `bson:"min_size,omitempty"`
	Active        bool       `bson:"active"`
	CreatedAt     time.Time  `bson:"created_at"`
	LastChecked   *time.Time `bson:"last_checked,omitempty"`
}

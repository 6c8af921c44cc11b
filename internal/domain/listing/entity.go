package listing

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("listing not found")

type Listing struct {
	ID                   string    `bson:"id"`
	Title                string    `bson:"title"`
	City                 string    `bson:"city"`
	Address              string    `bson:"address"`
	StructureType        string    `bson:"structure_type"`
	Size                 int       `bson:"size"`
	MonthlyRent          int       `bson:"monthly_rent"`
	Description          string    `bson:"description"`
	Photos               []string  `bson:"photos"`
	ProfessionalsPresent []string  `bson:"professionals_present"`
	ProfilesSearched     []string  `bson:"profiles_searched"`
	OwnerID              string    `bson:"owner_id"`
	IsFeatured           bool      `bson:"is_featured"`
	CreatedAt            time.Time `bson:"created_at"`
}

// WithDistance annotates a listing with its computed distance from a
// search center. Derived per request, never persisted.
type WithDistance struct {
	Listing
	DistanceKm float64
}

package searchlog

import "time"

type SearchLog struct {
	ID             string    `bson:"id"`
	UserID         string    `bson:"user_id"`
	UserEmail      string    `bson:"user_email"`
	UserName       string    `bson:"user_name"`
	UserProfession string    `bson:"user_profession"`
	City           string    `bson:"city,omitempty"`
	RadiusKm       int       `bson:"radius,omitempty"`
	StructureType  string    `bson:"structure_type,omitempty"`
	Profession     string    `bson:"profession,omitempty"`
	Timestamp      time.Time `bson:"timestamp"`
}

// Stats aggregates the search log for the analytics endpoints.
type Stats struct {
	TotalSearches  int
	SearchesByCity map[string]int
	RecentSearches []SearchLog
}

package dto

import (
	"time"

	"cablib/internal/domain/listing"
)

type ListingResponse struct {
	ID                   string   `json:"id"`
	Title                string   `json:"title"`
	City                 string   `json:"city"`
	Address              string   `json:"address,omitempty"`
	StructureType        string   `json:"structure_type"`
	Size                 int      `json:"size"`
	MonthlyRent          int      `json:"monthly_rent"`
	Description          string   `json:"description,omitempty"`
	Photos               []string `json:"photos"`
	ProfessionalsPresent []string `json:"professionals_present"`
	ProfilesSearched     []string `json:"profiles_searched"`
	OwnerID              string   `json:"owner_id"`
	IsFeatured           bool     `json:"is_featured"`

	// DistanceKm is set only on radius search results.
	DistanceKm *float64 `json:"distance_km,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func FromListing(l listing.Listing) ListingResponse {
	return ListingResponse{
		ID:                   l.ID,
		Title:                l.Title,
		City:                 l.City,
		Address:              l.Address,
		StructureType:        l.StructureType,
		Size:                 l.Size,
		MonthlyRent:          l.MonthlyRent,
		Description:          l.Description,
		Photos:               emptyIfNil(l.Photos),
		ProfessionalsPresent: emptyIfNil(l.ProfessionalsPresent),
		ProfilesSearched:     emptyIfNil(l.ProfilesSearched),
		OwnerID:              l.OwnerID,
		IsFeatured:           l.IsFeatured,
		CreatedAt:            l.CreatedAt,
	}
}

func FromListings(ls []listing.Listing) []ListingResponse {
	out := make([]ListingResponse, 0, len(ls))
	for _, l := range ls {
		out = append(out, FromListing(l))
	}
	return out
}

func FromListingWithDistance(l listing.WithDistance, geoFiltered bool) ListingResponse {
	resp := FromListing(l.Listing)
	if geoFiltered {
		d := l.DistanceKm
		resp.DistanceKm = &d
	}
	return resp
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

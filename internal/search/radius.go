package search

import (
	"math"
	"sort"
	"strings"

	"cablib/internal/domain/geo"
	"cablib/internal/domain/listing"
)

// Filters are the secondary listing filters applied as an AND
// conjunction. Zero values disable the corresponding filter.
type Filters struct {
	StructureType string
	MinSize       int
	MaxRent       int
	Profession    string
}

// Matches reports whether a listing passes every enabled filter.
func (f Filters) Matches(l listing.Listing) bool {
	if f.StructureType != "" && l.StructureType != f.StructureType {
		return false
	}
	if f.MinSize > 0 && l.Size < f.MinSize {
		return false
	}
	if f.MaxRent > 0 && l.MonthlyRent > f.MaxRent {
		return false
	}
	if f.Profession != "" {
		profession := strings.ToLower(f.Profession)
		found := false
		for _, p := range l.ProfilesSearched {
			if strings.Contains(strings.ToLower(p), profession) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// WithinRadius keeps the listings whose city resolves to a coordinate
// within radiusKm of the center (inclusive), annotated with the
// distance rounded to one decimal. Listings with an unresolvable city
// are excluded, not treated as zero distance. The result is ordered by
// distance ascending; ties keep the input order.
func WithinRadius(listings []listing.Listing, center geo.Coordinate, radiusKm float64) []listing.WithDistance {
	out := make([]listing.WithDistance, 0, len(listings))
	for _, l := range listings {
		coord, ok := geo.Resolve(l.City)
		if !ok {
			continue
		}
		d := geo.DistanceKm(center, coord)
		if d > radiusKm {
			continue
		}
		out = append(out, listing.WithDistance{
			Listing:    l,
			DistanceKm: math.Round(d*10) / 10,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DistanceKm < out[j].DistanceKm
	})
	return out
}

// Apply filters a distance-annotated set in place order.
func Apply(in []listing.WithDistance, f Filters) []listing.WithDistance {
	out := make([]listing.WithDistance, 0, len(in))
	for _, l := range in {
		if f.Matches(l.Listing) {
			out = append(out, l)
		}
	}
	return out
}

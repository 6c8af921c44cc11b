package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// SearchCache is the slice of the redis cache the listing search needs.
type SearchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	InvalidateListings(ctx context.Context) error
}

func listingSearchCacheKey(p ListingSearchParams) string {
	return fmt.Sprintf(
		"listings:search:city=%s&radius=%d&structure=%s&min_size=%d&max_rent=%d&profession=%s",
		strings.ToLower(strings.TrimSpace(p.City)),
		p.RadiusKm,
		strings.ToLower(strings.TrimSpace(p.StructureType)),
		p.MinSize,
		p.MaxRent,
		strings.ToLower(strings.TrimSpace(p.Profession)),
	)
}

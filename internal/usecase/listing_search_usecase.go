package usecase

import (
	"context"
	"log"

	"cablib/internal/domain/geo"
	"cablib/internal/domain/listing"
	"cablib/internal/repository"
	"cablib/internal/search"
)

type ListingSearchParams struct {
	City          string
	RadiusKm      int
	StructureType string
	MinSize       int
	MaxRent       int
	Profession    string
}

// ListingSearchResult carries the matched listings; DistanceKm on each
// entry is meaningful only when GeoFiltered is true.
type ListingSearchResult struct {
	Listings    []listing.WithDistance `json:"listings"`
	GeoFiltered bool                   `json:"geo_filtered"`
}

type ListingSearchUsecase interface {
	Search(ctx context.Context, params ListingSearchParams) (ListingSearchResult, error)
}

type ListingSearch struct {
	listings repository.ListingRepository
	cache    SearchCache
	logger   *log.Logger
}

func NewListingSearchUsecase(listings repository.ListingRepository, cache SearchCache, logger *log.Logger) *ListingSearch {
	return &ListingSearch{listings: listings, cache: cache, logger: logger}
}

// Search runs the radius search when a radius and a resolvable center
// city are given, and degrades to the plain store-level filtered
// search otherwise. Results are cached per filter set.
func (u *ListingSearch) Search(ctx context.Context, params ListingSearchParams) (ListingSearchResult, error) {
	if params.RadiusKm < 0 || params.MinSize < 0 || params.MaxRent < 0 {
		return ListingSearchResult{}, ErrInvalidInput
	}

	cacheKey := listingSearchCacheKey(params)
	if u.cache != nil {
		var cached ListingSearchResult
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Listings] Cache HIT: %s", cacheKey)
			}
			return cached, nil
		}
		if u.logger != nil {
			u.logger.Printf("[Listings] Cache MISS: %s", cacheKey)
		}
	}

	var out ListingSearchResult

	center, resolved := geo.Coordinate{}, false
	if params.RadiusKm > 0 && params.City != "" {
		center, resolved = geo.Resolve(params.City)
	}

	if resolved {
		all, err := u.listings.ListAll(ctx)
		if err != nil {
			return ListingSearchResult{}, ErrInternal
		}

		within := search.WithinRadius(all, center, float64(params.RadiusKm))
		filtered := search.Apply(within, search.Filters{
			StructureType: params.StructureType,
			MinSize:       params.MinSize,
			MaxRent:       params.MaxRent,
			Profession:    params.Profession,
		})
		out = ListingSearchResult{Listings: filtered, GeoFiltered: true}
	} else {
		rows, err := u.listings.List(ctx, repository.ListingFilter{
			City:          params.City,
			StructureType: params.StructureType,
			MinSize:       params.MinSize,
			MaxRent:       params.MaxRent,
			Profession:    params.Profession,
		})
		if err != nil {
			return ListingSearchResult{}, ErrInternal
		}

		annotated := make([]listing.WithDistance, 0, len(rows))
		for _, l := range rows {
			annotated = append(annotated, listing.WithDistance{Listing: l})
		}
		out = ListingSearchResult{Listings: annotated, GeoFiltered: false}
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, cacheKey, out, 0); err == nil && u.logger != nil {
			u.logger.Printf("[Listings] Cache SET: %s", cacheKey)
		}
	}
	return out, nil
}

package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"cablib/internal/domain/listing"
	"cablib/internal/repository"
)

type mockListingRepo struct {
	items []listing.Listing
	err   error

	lastFilter *repository.ListingFilter
	listedAll  bool
}

func (m *mockListingRepo) Create(context.Context, listing.Listing) error { return m.err }
func (m *mockListingRepo) GetByID(_ context.Context, id string) (listing.Listing, error) {
	for _, l := range m.items {
		if l.ID == id {
			return l, nil
		}
	}
	return listing.Listing{}, listing.ErrNotFound
}
func (m *mockListingRepo) Update(context.Context, listing.Listing) error { return m.err }
func (m *mockListingRepo) Delete(context.Context, string) error          { return m.err }
func (m *mockListingRepo) List(_ context.Context, f repository.ListingFilter) ([]listing.Listing, error) {
	m.lastFilter = &f
	return m.items, m.err
}
func (m *mockListingRepo) ListAll(context.Context) ([]listing.Listing, error) {
	m.listedAll = true
	return m.items, m.err
}

type mockCache struct {
	mu          sync.Mutex
	sets        int
	invalidated int
}

func (m *mockCache) GetJSON(context.Context, string, any) (bool, error) { return false, nil }
func (m *mockCache) SetJSON(context.Context, string, any, time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets++
	return nil
}
func (m *mockCache) InvalidateListings(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invalidated++
	return nil
}

func TestListingSearch_NegativeParams(t *testing.T) {
	uc := NewListingSearchUsecase(&mockListingRepo{}, nil, nil)
	_, err := uc.Search(context.Background(), ListingSearchParams{RadiusKm: -1})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestListingSearch_RadiusFiltersByDistance(t *testing.T) {
	repo := &mockListingRepo{items: []listing.Listing{
		{ID: "a", City: "Lyon", Size: 40, MonthlyRent: 900},
		{ID: "b", City: "Paris", Size: 50, MonthlyRent: 1000},
		{ID: "c", City: "Marseille", Size: 60, MonthlyRent: 800},
	}}
	uc := NewListingSearchUsecase(repo, nil, nil)

	res, err := uc.Search(context.Background(), ListingSearchParams{City: "Paris", RadiusKm: 100})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !res.GeoFiltered {
		t.Fatalf("expected geo-filtered result")
	}
	if !repo.listedAll {
		t.Fatalf("radius search should fetch the full set")
	}
	if len(res.Listings) != 1 || res.Listings[0].ID != "b" {
		t.Fatalf("expected only the Paris listing, got %+v", res.Listings)
	}
	if res.Listings[0].DistanceKm != 0 {
		t.Fatalf("expected zero distance at center, got %v", res.Listings[0].DistanceKm)
	}
}

func TestListingSearch_RadiusOrdersByDistance(t *testing.T) {
	repo := &mockListingRepo{items: []listing.Listing{
		{ID: "lyon", City: "Lyon", Size: 40, MonthlyRent: 900},
		{ID: "paris", City: "Paris", Size: 50, MonthlyRent: 1000},
	}}
	uc := NewListingSearchUsecase(repo, nil, nil)

	res, err := uc.Search(context.Background(), ListingSearchParams{City: "Paris", RadiusKm: 500})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.Listings) != 2 {
		t.Fatalf("expected 2 listings, got %d", len(res.Listings))
	}
	if res.Listings[0].ID != "paris" || res.Listings[1].ID != "lyon" {
		t.Fatalf("expected nearest first, got %s then %s", res.Listings[0].ID, res.Listings[1].ID)
	}
	if d := res.Listings[1].DistanceKm; d < 380 || d > 405 {
		t.Fatalf("Paris-Lyon distance out of range: %v", d)
	}
}

func TestListingSearch_UnresolvableCityFallsBackToStore(t *testing.T) {
	repo := &mockListingRepo{items: []listing.Listing{
		{ID: "x", City: "Atlantis", Size: 30, MonthlyRent: 700},
	}}
	uc := NewListingSearchUsecase(repo, nil, nil)

	res, err := uc.Search(context.Background(), ListingSearchParams{City: "Atlantis", RadiusKm: 50, MaxRent: 800})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.GeoFiltered {
		t.Fatalf("unknown center must not geo-filter")
	}
	if repo.lastFilter == nil {
		t.Fatalf("expected store-level filtered query")
	}
	if repo.lastFilter.City != "Atlantis" || repo.lastFilter.MaxRent != 800 {
		t.Fatalf("filter not forwarded: %+v", repo.lastFilter)
	}
	if len(res.Listings) != 1 || res.Listings[0].ID != "x" {
		t.Fatalf("expected passthrough listing, got %+v", res.Listings)
	}
}

func TestListingSearch_NoRadiusUsesStoreFilter(t *testing.T) {
	repo := &mockListingRepo{}
	uc := NewListingSearchUsecase(repo, nil, nil)

	if _, err := uc.Search(context.Background(), ListingSearchParams{City: "Paris"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.listedAll {
		t.Fatalf("plain search must not fetch the full set")
	}
	if repo.lastFilter == nil || repo.lastFilter.City != "Paris" {
		t.Fatalf("expected city filter at the store, got %+v", repo.lastFilter)
	}
}

func TestListingSearch_SecondaryFiltersApplyAfterRadius(t *testing.T) {
	repo := &mockListingRepo{items: []listing.Listing{
		{ID: "cheap", City: "Paris", Size: 50, MonthlyRent: 800},
		{ID: "pricey", City: "Paris", Size: 50, MonthlyRent: 2000},
	}}
	uc := NewListingSearchUsecase(repo, nil, nil)

	res, err := uc.Search(context.Background(), ListingSearchParams{City: "Paris", RadiusKm: 10, MaxRent: 1000})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.Listings) != 1 || res.Listings[0].ID != "cheap" {
		t.Fatalf("expected rent filter after radius, got %+v", res.Listings)
	}
}

func TestListingSearch_PopulatesCache(t *testing.T) {
	cache := &mockCache{}
	uc := NewListingSearchUsecase(&mockListingRepo{}, cache, nil)

	if _, err := uc.Search(context.Background(), ListingSearchParams{City: "Paris"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected one cache write, got %d", cache.sets)
	}
}

package search

import (
	"testing"

	"cablib/internal/domain/geo"
	"cablib/internal/domain/listing"
)

func TestWithinRadius_ParisLyon(t *testing.T) {
	paris, _ := geo.Resolve("Paris")

	listings := []listing.Listing{
		{ID: "a", City: "Paris"},
		{ID: "b", City: "Lyon"},
	}

	got := WithinRadius(listings, paris, 500)
	if len(got) != 2 {
		t.Fatalf("expected both listings within 500 km, got %d", len(got))
	}
	if got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("expected distance-ascending order, got %s then %s", got[0].ID, got[1].ID)
	}
	if got[0].DistanceKm != 0 {
		t.Fatalf("expected zero distance for Paris, got %f", got[0].DistanceKm)
	}
	if got[1].DistanceKm < 380 || got[1].DistanceKm > 400 {
		t.Fatalf("expected Paris-Lyon around 392 km, got %f", got[1].DistanceKm)
	}

	got = WithinRadius(listings, paris, 100)
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("expected only the Paris listing within 100 km")
	}
}

func TestWithinRadius_InclusiveBoundary(t *testing.T) {
	paris, _ := geo.Resolve("Paris")
	lyon, _ := geo.Resolve("Lyon")
	exact := geo.DistanceKm(paris, lyon)

	got := WithinRadius([]listing.Listing{{ID: "b", City: "Lyon"}}, paris, exact)
	if len(got) != 1 {
		t.Fatalf("expected listing exactly at the radius to be kept")
	}
}

func TestWithinRadius_UnresolvableCityExcluded(t *testing.T) {
	paris, _ := geo.Resolve("Paris")

	listings := []listing.Listing{
		{ID: "a", City: "Paris"},
		{ID: "x", City: "Atlantis"},
	}

	got := WithinRadius(listings, paris, 1000)
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("expected unresolvable city to be excluded, got %d results", len(got))
	}
}

func TestWithinRadius_TiesKeepInputOrder(t *testing.T) {
	paris, _ := geo.Resolve("Paris")

	listings := []listing.Listing{
		{ID: "first", City: "Paris"},
		{ID: "second", City: "Paris"},
	}

	got := WithinRadius(listings, paris, 10)
	if len(got) != 2 || got[0].ID != "first" || got[1].ID != "second" {
		t.Fatalf("expected stable order for equal distances")
	}
}

func TestFilters_Conjunction(t *testing.T) {
	l := listing.Listing{
		City:             "Paris",
		StructureType:    "Cabinet",
		Size:             50,
		MonthlyRent:      1500,
		ProfilesSearched: []string{"Kinésithérapeute"},
	}

	cases := []struct {
		name string
		f    Filters
		want bool
	}{
		{"empty filters pass", Filters{}, true},
		{"all filters pass", Filters{StructureType: "Cabinet", MinSize: 40, MaxRent: 1600, Profession: "kiné"}, true},
		{"structure mismatch", Filters{StructureType: "MSP"}, false},
		{"too small", Filters{MinSize: 60}, false},
		{"too expensive", Filters{MaxRent: 1000}, false},
		{"profession not searched", Filters{Profession: "dentiste"}, false},
	}
	for _, tc := range cases {
		if got := tc.f.Matches(l); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestApply_FiltersAnnotatedSet(t *testing.T) {
	in := []listing.WithDistance{
		{Listing: listing.Listing{ID: "a", StructureType: "Cabinet"}, DistanceKm: 1},
		{Listing: listing.Listing{ID: "b", StructureType: "MSP"}, DistanceKm: 2},
	}

	got := Apply(in, Filters{StructureType: "MSP"})
	if len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("expected only the MSP listing to survive")
	}
}

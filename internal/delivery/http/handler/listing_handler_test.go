package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"cablib/internal/delivery/http/middleware"
	"cablib/internal/domain/listing"
	"cablib/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type stubSearchUC struct {
	res        usecase.ListingSearchResult
	err        error
	called     bool
	lastParams usecase.ListingSearchParams
}

func (s *stubSearchUC) Search(_ context.Context, p usecase.ListingSearchParams) (usecase.ListingSearchResult, error) {
	s.called = true
	s.lastParams = p
	return s.res, s.err
}

type stubListingUC struct {
	l   listing.Listing
	err error
}

func (s stubListingUC) Create(context.Context, string, string, usecase.ListingInput) (listing.Listing, error) {
	return s.l, s.err
}
func (s stubListingUC) Get(context.Context, string) (listing.Listing, error) { return s.l, s.err }
func (s stubListingUC) Update(context.Context, string, string, usecase.ListingInput) (listing.Listing, error) {
	return s.l, s.err
}
func (s stubListingUC) Delete(context.Context, string, string) error { return s.err }

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newListingTestApp(searchUC usecase.ListingSearchUsecase, listingUC usecase.ListingUsecase) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware().Middleware())

	h := NewListingHandler(listingUC, searchUC, nil)
	h.RegisterRoutes(app.Group("/listings"))
	return app
}

func TestListingHandler_SearchParsesQuery(t *testing.T) {
	search := &stubSearchUC{}
	app := newListingTestApp(search, stubListingUC{})

	req := httptest.NewRequest("GET", "/listings/?city=Paris&radius=50&min_size=20&max_rent=1200&structure_type=cabinet&profession=dentiste", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	p := search.lastParams
	if p.City != "Paris" || p.RadiusKm != 50 || p.MinSize != 20 || p.MaxRent != 1200 ||
		p.StructureType != "cabinet" || p.Profession != "dentiste" {
		t.Fatalf("query not forwarded: %+v", p)
	}
}

func TestListingHandler_SearchExposesDistanceOnlyWhenGeoFiltered(t *testing.T) {
	search := &stubSearchUC{res: usecase.ListingSearchResult{
		GeoFiltered: true,
		Listings: []listing.WithDistance{
			{Listing: listing.Listing{ID: "a", City: "Lyon"}, DistanceKm: 391.5},
		},
	}}
	app := newListingTestApp(search, stubListingUC{})

	resp, err := app.Test(httptest.NewRequest("GET", "/listings/?city=Paris&radius=500", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	var items []map[string]any
	if err := json.Unmarshal(env.Data, &items); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if d, ok := items[0]["distance_km"].(float64); !ok || d != 391.5 {
		t.Fatalf("expected distance_km 391.5, got %v", items[0]["distance_km"])
	}

	// Plain search must not carry a distance.
	search.res = usecase.ListingSearchResult{
		GeoFiltered: false,
		Listings:    []listing.WithDistance{{Listing: listing.Listing{ID: "a", City: "Lyon"}}},
	}
	resp, err = app.Test(httptest.NewRequest("GET", "/listings/?city=Lyon", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	body, _ = io.ReadAll(resp.Body)
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	items = nil
	if err := json.Unmarshal(env.Data, &items); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if _, present := items[0]["distance_km"]; present {
		t.Fatalf("distance_km must be omitted on plain searches")
	}
}

func TestListingHandler_NonNumericFilterRejected(t *testing.T) {
	search := &stubSearchUC{}
	app := newListingTestApp(search, stubListingUC{})

	for _, target := range []string{
		"/listings/?radius=abc",
		"/listings/?min_size=large",
		"/listings/?max_rent=12eur",
	} {
		resp, err := app.Test(httptest.NewRequest("GET", target, nil))
		if err != nil {
			t.Fatalf("%s: request: %v", target, err)
		}
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", target, resp.StatusCode)
		}
	}
	if search.called {
		t.Fatalf("search must not run on invalid numeric filters")
	}
}

func TestListingHandler_NotFoundMapsTo404(t *testing.T) {
	app := newListingTestApp(&stubSearchUC{}, stubListingUC{err: usecase.ErrListingNotFound})

	resp, err := app.Test(httptest.NewRequest("GET", "/listings/ghost", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestListingHandler_ForbiddenMapsTo403(t *testing.T) {
	app := newListingTestApp(&stubSearchUC{}, stubListingUC{err: usecase.ErrForbidden})

	req := httptest.NewRequest("DELETE", "/listings/l1", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
}

package usecase

import (
	"context"
	"errors"
	"testing"

	"cablib/internal/domain/listing"
	"cablib/internal/domain/user"
)

type mockUserRepo struct {
	users map[string]user.User
	err   error
}

func (m mockUserRepo) Create(context.Context, user.User) error { return m.err }
func (m mockUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	if m.err != nil {
		return user.User{}, m.err
	}
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}
func (m mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func locataire(id string) user.User {
	return user.User{
		ID:                     id,
		UserType:               user.TypeLocataire,
		Profession:             "Kinésithérapeute",
		PreferredCity:          "Paris",
		MaxBudget:              1000,
		MinSize:                20,
		PreferredStructureType: "cabinet",
	}
}

func TestMatching_RanksAndExplains(t *testing.T) {
	users := mockUserRepo{users: map[string]user.User{"u1": locataire("u1")}}
	repo := &mockListingRepo{items: []listing.Listing{
		{ID: "perfect", City: "Paris", StructureType: "cabinet", Size: 30, MonthlyRent: 900,
			ProfilesSearched: []string{"Kinésithérapeute"}},
		{ID: "partial", City: "Lyon", StructureType: "cabinet", Size: 30, MonthlyRent: 900},
		{ID: "zero", City: "Nice", StructureType: "clinique", Size: 10, MonthlyRent: 3000},
	}}
	uc := NewMatchingUsecase(users, repo)

	out, err := uc.Matches(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected zero-score listing dropped, got %d results", len(out))
	}
	if out[0].Listing.ID != "perfect" {
		t.Fatalf("expected best match first, got %s", out[0].Listing.ID)
	}
	if out[0].Score != 100 {
		t.Fatalf("expected full score 100, got %d", out[0].Score)
	}
	if len(out[0].Reasons) != 5 {
		t.Fatalf("expected 5 reasons on a full match, got %v", out[0].Reasons)
	}
	if out[0].Reasons[0] != "Localisation : Paris" {
		t.Fatalf("unexpected first reason: %q", out[0].Reasons[0])
	}
	if out[1].Score >= out[0].Score {
		t.Fatalf("expected descending scores: %d then %d", out[0].Score, out[1].Score)
	}
}

func TestMatching_OwnerIsRejected(t *testing.T) {
	owner := user.User{ID: "o1", UserType: user.TypeProprietaire}
	users := mockUserRepo{users: map[string]user.User{"o1": owner}}
	uc := NewMatchingUsecase(users, &mockListingRepo{})

	if _, err := uc.Matches(context.Background(), "o1"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestMatching_UnknownUser(t *testing.T) {
	uc := NewMatchingUsecase(mockUserRepo{users: map[string]user.User{}}, &mockListingRepo{})
	if _, err := uc.Matches(context.Background(), "ghost"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestMatching_TopMatchesDefaultsToThree(t *testing.T) {
	items := make([]listing.Listing, 0, 5)
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		items = append(items, listing.Listing{
			ID: id, City: "Paris", StructureType: "cabinet", Size: 30, MonthlyRent: 900,
			ProfilesSearched: []string{"Kinésithérapeute"},
		})
	}
	users := mockUserRepo{users: map[string]user.User{"u1": locataire("u1")}}
	uc := NewMatchingUsecase(users, &mockListingRepo{items: items})

	out, err := uc.TopMatches(context.Background(), "u1", 0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected default of 3 top matches, got %d", len(out))
	}
}

func TestMatching_TopMatchesPreservesOrder(t *testing.T) {
	users := mockUserRepo{users: map[string]user.User{"u1": locataire("u1")}}
	repo := &mockListingRepo{items: []listing.Listing{
		{ID: "good", City: "Paris", StructureType: "cabinet", Size: 30, MonthlyRent: 900},
		{ID: "best", City: "Paris", StructureType: "cabinet", Size: 30, MonthlyRent: 900,
			ProfilesSearched: []string{"Kinésithérapeute"}},
	}}
	uc := NewMatchingUsecase(users, repo)

	out, err := uc.TopMatches(context.Background(), "u1", 1)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 1 || out[0].Listing.ID != "best" {
		t.Fatalf("expected the highest score kept, got %+v", out)
	}
}

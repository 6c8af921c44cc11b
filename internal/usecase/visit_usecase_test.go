package usecase

import (
	"context"
	"errors"
	"testing"

	"cablib/internal/domain/listing"
	"cablib/internal/domain/user"
	"cablib/internal/domain/visit"
)

type mockVisitRepo struct {
	visits map[string]visit.Visit
}

func newMockVisitRepo() *mockVisitRepo {
	return &mockVisitRepo{visits: map[string]visit.Visit{}}
}

func (m *mockVisitRepo) Create(_ context.Context, v visit.Visit) error {
	m.visits[v.ID] = v
	return nil
}
func (m *mockVisitRepo) GetByID(_ context.Context, id string) (visit.Visit, error) {
	v, ok := m.visits[id]
	if !ok {
		return visit.Visit{}, visit.ErrNotFound
	}
	return v, nil
}
func (m *mockVisitRepo) FindByPractitioner(_ context.Context, id string) ([]visit.Visit, error) {
	out := make([]visit.Visit, 0)
	for _, v := range m.visits {
		if v.PractitionerID == id {
			out = append(out, v)
		}
	}
	return out, nil
}
func (m *mockVisitRepo) FindByOwner(_ context.Context, id string) ([]visit.Visit, error) {
	out := make([]visit.Visit, 0)
	for _, v := range m.visits {
		if v.OwnerID == id {
			out = append(out, v)
		}
	}
	return out, nil
}
func (m *mockVisitRepo) UpdateStatus(ctx context.Context, id, status string) (visit.Visit, error) {
	v, err := m.GetByID(ctx, id)
	if err != nil {
		return visit.Visit{}, err
	}
	v.Status = status
	m.visits[id] = v
	return v, nil
}
func (m *mockVisitRepo) DeleteForParticipant(ctx context.Context, id, userID string) error {
	v, err := m.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if v.PractitionerID != userID && v.OwnerID != userID {
		return visit.ErrNotFound
	}
	delete(m.visits, id)
	return nil
}

func visitFixtures() (*mockVisitRepo, *mockListingRepo, mockUserRepo) {
	visits := newMockVisitRepo()
	listings := &mockListingRepo{items: []listing.Listing{
		{ID: "l1", Title: "Cabinet lumineux", City: "Paris", OwnerID: "owner"},
	}}
	users := mockUserRepo{users: map[string]user.User{
		"prac": {ID: "prac", UserType: user.TypeLocataire, FirstName: "Anne", LastName: "Morel",
			Email: "anne@example.fr", Profession: "Ostéopathe"},
		"owner": {ID: "owner", UserType: user.TypeProprietaire},
	}}
	return visits, listings, users
}

func TestVisits_RequestSnapshotsPractitioner(t *testing.T) {
	visits, listings, users := visitFixtures()
	uc := NewVisitUsecase(visits, listings, users)

	v, err := uc.Request(context.Background(), "prac", VisitInput{
		ListingID: "l1", Date: "2026-09-15", Time: "10:30", Message: "Bonjour",
	})
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if v.Status != visit.StatusPending {
		t.Fatalf("expected pending status, got %s", v.Status)
	}
	if v.OwnerID != "owner" {
		t.Fatalf("owner not resolved from listing")
	}
	if v.PractitionerName != "Anne Morel" || v.PractitionerProfession != "Ostéopathe" {
		t.Fatalf("practitioner snapshot incomplete: %+v", v)
	}
}

func TestVisits_OwnerCannotRequest(t *testing.T) {
	visits, listings, users := visitFixtures()
	uc := NewVisitUsecase(visits, listings, users)

	_, err := uc.Request(context.Background(), "owner", VisitInput{ListingID: "l1", Date: "2026-09-15", Time: "10:30"})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestVisits_StatusTransitions(t *testing.T) {
	visits, listings, users := visitFixtures()
	uc := NewVisitUsecase(visits, listings, users)

	v, err := uc.Request(context.Background(), "prac", VisitInput{ListingID: "l1", Date: "2026-09-15", Time: "10:30"})
	if err != nil {
		t.Fatalf("request: %v", err)
	}

	if _, err := uc.UpdateStatus(context.Background(), v.ID, "prac", visit.StatusConfirmed); !errors.Is(err, ErrForbidden) {
		t.Fatalf("practitioner must not confirm, got %v", err)
	}
	if _, err := uc.UpdateStatus(context.Background(), v.ID, "stranger", visit.StatusConfirmed); !errors.Is(err, ErrForbidden) {
		t.Fatalf("stranger must not touch the visit, got %v", err)
	}
	if _, err := uc.UpdateStatus(context.Background(), v.ID, "owner", "maybe"); !errors.Is(err, ErrInvalidVisitState) {
		t.Fatalf("expected ErrInvalidVisitState, got %v", err)
	}

	confirmed, err := uc.UpdateStatus(context.Background(), v.ID, "owner", visit.StatusConfirmed)
	if err != nil {
		t.Fatalf("owner confirm: %v", err)
	}
	if confirmed.Status != visit.StatusConfirmed {
		t.Fatalf("expected confirmed, got %s", confirmed.Status)
	}

	cancelled, err := uc.UpdateStatus(context.Background(), v.ID, "prac", visit.StatusCancelled)
	if err != nil {
		t.Fatalf("practitioner cancel: %v", err)
	}
	if cancelled.Status != visit.StatusCancelled {
		t.Fatalf("expected cancelled, got %s", cancelled.Status)
	}
}

func TestVisits_ListMineByRole(t *testing.T) {
	visits, listings, users := visitFixtures()
	uc := NewVisitUsecase(visits, listings, users)

	if _, err := uc.Request(context.Background(), "prac", VisitInput{ListingID: "l1", Date: "2026-09-15", Time: "10:30"}); err != nil {
		t.Fatalf("request: %v", err)
	}

	mine, err := uc.ListMine(context.Background(), "prac", user.TypeLocataire)
	if err != nil || len(mine) != 1 {
		t.Fatalf("practitioner list: %v, %d items", err, len(mine))
	}
	theirs, err := uc.ListMine(context.Background(), "owner", user.TypeProprietaire)
	if err != nil || len(theirs) != 1 {
		t.Fatalf("owner list: %v, %d items", err, len(theirs))
	}
}

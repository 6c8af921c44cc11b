package usecase

import (
	"context"
	"errors"
	"time"

	"cablib/internal/domain/alert"
	"cablib/internal/domain/listing"
	"cablib/internal/domain/user"
	"cablib/internal/repository"

	"github.com/google/uuid"
)

var ErrAlertNotFound = errors.New("alert not found")

type AlertInput struct {
	Name          string
	City          string
	RadiusKm      int
	StructureType string
	Profession    string
	MaxRent       int
	MinSize       int
}

type AlertUsecase interface {
	Create(ctx context.Context, userID, userType string, in AlertInput) (alert.Alert, error)
	List(ctx context.Context, userID, userType string) ([]alert.Alert, error)
	SetActive(ctx context.Context, id, userID string, active bool) (alert.Alert, error)
	Delete(ctx context.Context, id, userID string) error

	// Matches returns the listings created after the alert itself that
	// satisfy its criteria, and stamps the check time for reference.
	Matches(ctx context.Context, id, userID string) ([]listing.Listing, error)
}

type Alerts struct {
	alerts repository.AlertRepository
	search ListingSearchUsecase
	now    func() time.Time
}

func NewAlertUsecase(alerts repository.AlertRepository, searchUC ListingSearchUsecase) *Alerts {
	return &Alerts{alerts: alerts, search: searchUC, now: time.Now}
}

// Create saves an alert. Alerts belong to practitioners; owners and
// admins get ErrForbidden.
func (u *Alerts) Create(ctx context.Context, userID, userType string, in AlertInput) (alert.Alert, error) {
	if userType != user.TypeLocataire {
		return alert.Alert{}, ErrForbidden
	}
	if in.Name == "" {
		return alert.Alert{}, ErrInvalidInput
	}
	if in.City == "" && in.StructureType == "" && in.Profession == "" && in.MaxRent == 0 && in.MinSize == 0 {
		return alert.Alert{}, ErrInvalidInput
	}
	if in.RadiusKm < 0 || in.MaxRent < 0 || in.MinSize < 0 {
		return alert.Alert{}, ErrInvalidInput
	}

	a := alert.Alert{
		ID:            uuid.NewString(),
		UserID:        userID,
		Name:          in.Name,
		City:          in.City,
		RadiusKm:      in.RadiusKm,
		StructureType: in.StructureType,
		Profession:    in.Profession,
		MaxRent:       in.MaxRent,
		MinSize:       in.MinSize,
		Active:        true,
		CreatedAt:     u.now().UTC(),
	}
	if err := u.alerts.Create(ctx, a); err != nil {
		return alert.Alert{}, ErrInternal
	}
	return a, nil
}

func (u *Alerts) List(ctx context.Context, userID, userType string) ([]alert.Alert, error) {
	if userType != user.TypeLocataire {
		return nil, ErrForbidden
	}
	out, err := u.alerts.FindByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Alerts) SetActive(ctx context.Context, id, userID string, active bool) (alert.Alert, error) {
	a, err := u.alerts.SetActive(ctx, id, userID, active)
	if err != nil {
		if errors.Is(err, alert.ErrNotFound) {
			return alert.Alert{}, ErrAlertNotFound
		}
		return alert.Alert{}, ErrInternal
	}
	return a, nil
}

func (u *Alerts) Delete(ctx context.Context, id, userID string) error {
	if err := u.alerts.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, alert.ErrNotFound) {
			return ErrAlertNotFound
		}
		return ErrInternal
	}
	return nil
}

func (u *Alerts) Matches(ctx context.Context, id, userID string) ([]listing.Listing, error) {
	a, err := u.alerts.GetForUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, alert.ErrNotFound) {
			return nil, ErrAlertNotFound
		}
		return nil, ErrInternal
	}

	res, err := u.search.Search(ctx, ListingSearchParams{
		City:          a.City,
		RadiusKm:      a.RadiusKm,
		StructureType: a.StructureType,
		MinSize:       a.MinSize,
		MaxRent:       a.MaxRent,
		Profession:    a.Profession,
	})
	if err != nil {
		return nil, err
	}

	// Every call reports the full set of listings newer than the alert;
	// last_checked is informational only, never a reporting cutoff.
	out := make([]listing.Listing, 0)
	for _, l := range res.Listings {
		if l.CreatedAt.After(a.CreatedAt) {
			out = append(out, l.Listing)
		}
	}

	if err := u.alerts.TouchLastChecked(ctx, id, userID, u.now().UTC()); err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

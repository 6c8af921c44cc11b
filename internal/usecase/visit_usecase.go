package usecase

import (
	"context"
	"errors"
	"time"

	"cablib/internal/domain/listing"
	"cablib/internal/domain/user"
	"cablib/internal/domain/visit"
	"cablib/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrVisitNotFound     = errors.New("visit not found")
	ErrInvalidVisitState = errors.New("invalid visit status")
)

type VisitInput struct {
	ListingID string
	Date      string
	Time      string
	Message   string
}

type VisitUsecase interface {
	Request(ctx context.Context, practitionerID string, in VisitInput) (visit.Visit, error)
	ListMine(ctx context.Context, callerID, callerType string) ([]visit.Visit, error)
	UpdateStatus(ctx context.Context, id, callerID, status string) (visit.Visit, error)
	Cancel(ctx context.Context, id, callerID string) error
}

type Visits struct {
	visits   repository.VisitRepository
	listings repository.ListingRepository
	users    repository.UserRepository
}

func NewVisitUsecase(visits repository.VisitRepository, listings repository.ListingRepository, users repository.UserRepository) *Visits {
	return &Visits{visits: visits, listings: listings, users: users}
}

// Request books a pending visit. Only practitioners ask for visits,
// and never on their own listings.
func (u *Visits) Request(ctx context.Context, practitionerID string, in VisitInput) (visit.Visit, error) {
	if in.ListingID == "" || in.Date == "" || in.Time == "" {
		return visit.Visit{}, ErrInvalidInput
	}

	practitioner, err := u.users.GetByID(ctx, practitionerID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return visit.Visit{}, ErrUnauthorized
		}
		return visit.Visit{}, ErrInternal
	}
	if practitioner.UserType != user.TypeLocataire {
		return visit.Visit{}, ErrForbidden
	}

	l, err := u.listings.GetByID(ctx, in.ListingID)
	if err != nil {
		if errors.Is(err, listing.ErrNotFound) {
			return visit.Visit{}, ErrListingNotFound
		}
		return visit.Visit{}, ErrInternal
	}

	v := visit.Visit{
		ID:                     uuid.NewString(),
		ListingID:              l.ID,
		PractitionerID:         practitioner.ID,
		PractitionerName:       practitioner.FullName(),
		PractitionerEmail:      practitioner.Email,
		PractitionerProfession: practitioner.Profession,
		OwnerID:                l.OwnerID,
		Date:                   in.Date,
		Time:                   in.Time,
		Message:                in.Message,
		Status:                 visit.StatusPending,
		CreatedAt:              time.Now().UTC(),
	}
	if err := u.visits.Create(ctx, v); err != nil {
		return visit.Visit{}, ErrInternal
	}
	return v, nil
}

func (u *Visits) ListMine(ctx context.Context, callerID, callerType string) ([]visit.Visit, error) {
	var (
		out []visit.Visit
		err error
	)
	if callerType == user.TypeProprietaire {
		out, err = u.visits.FindByOwner(ctx, callerID)
	} else {
		out, err = u.visits.FindByPractitioner(ctx, callerID)
	}
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

// UpdateStatus lets the owner confirm or cancel, and the practitioner
// cancel their own request.
func (u *Visits) UpdateStatus(ctx context.Context, id, callerID, status string) (visit.Visit, error) {
	if !visit.ValidStatus(status) {
		return visit.Visit{}, ErrInvalidVisitState
	}

	v, err := u.visits.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, visit.ErrNotFound) {
			return visit.Visit{}, ErrVisitNotFound
		}
		return visit.Visit{}, ErrInternal
	}

	switch callerID {
	case v.OwnerID:
	case v.PractitionerID:
		if status != visit.StatusCancelled {
			return visit.Visit{}, ErrForbidden
		}
	default:
		return visit.Visit{}, ErrForbidden
	}

	updated, err := u.visits.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, visit.ErrNotFound) {
			return visit.Visit{}, ErrVisitNotFound
		}
		return visit.Visit{}, ErrInternal
	}
	return updated, nil
}

func (u *Visits) Cancel(ctx context.Context, id, callerID string) error {
	if err := u.visits.DeleteForParticipant(ctx, id, callerID); err != nil {
		if errors.Is(err, visit.ErrNotFound) {
			return ErrVisitNotFound
		}
		return ErrInternal
	}
	return nil
}

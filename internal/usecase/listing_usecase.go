package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"cablib/internal/domain/listing"
	"cablib/internal/domain/user"
	"cablib/internal/repository"

	"github.com/google/uuid"
)

var ErrListingNotFound = errors.New("listing not found")

type ListingInput struct {
	Title                string
	City                 string
	Address              string
	StructureType        string
	Size                 int
	MonthlyRent          int
	Description          string
	Photos               []string
	ProfessionalsPresent []string
	ProfilesSearched     []string
}

type ListingUsecase interface {
	Create(ctx context.Context, ownerID, ownerType string, in ListingInput) (listing.Listing, error)
	Get(ctx context.Context, id string) (listing.Listing, error)
	Update(ctx context.Context, id, callerID string, in ListingInput) (listing.Listing, error)
	Delete(ctx context.Context, id, callerID string) error
}

type Listings struct {
	listings repository.ListingRepository
	cache    SearchCache
	logger   *log.Logger
}

func NewListingUsecase(listings repository.ListingRepository, cache SearchCache, logger *log.Logger) *Listings {
	return &Listings{listings: listings, cache: cache, logger: logger}
}

func (u *Listings) Create(ctx context.Context, ownerID, ownerType string, in ListingInput) (listing.Listing, error) {
	if ownerType != user.TypeProprietaire {
		return listing.Listing{}, ErrForbidden
	}
	if err := validateListingInput(in); err != nil {
		return listing.Listing{}, err
	}

	l := listing.Listing{
		ID:                   uuid.NewString(),
		Title:                in.Title,
		City:                 in.City,
		Address:              in.Address,
		StructureType:        in.StructureType,
		Size:                 in.Size,
		MonthlyRent:          in.MonthlyRent,
		Description:          in.Description,
		Photos:               in.Photos,
		ProfessionalsPresent: in.ProfessionalsPresent,
		ProfilesSearched:     in.ProfilesSearched,
		OwnerID:              ownerID,
		CreatedAt:            time.Now().UTC(),
	}
	if err := u.listings.Create(ctx, l); err != nil {
		return listing.Listing{}, ErrInternal
	}
	u.invalidateSearches(ctx)
	return l, nil
}

func (u *Listings) Get(ctx context.Context, id string) (listing.Listing, error) {
	l, err := u.listings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, listing.ErrNotFound) {
			return listing.Listing{}, ErrListingNotFound
		}
		return listing.Listing{}, ErrInternal
	}
	return l, nil
}

func (u *Listings) Update(ctx context.Context, id, callerID string, in ListingInput) (listing.Listing, error) {
	current, err := u.Get(ctx, id)
	if err != nil {
		return listing.Listing{}, err
	}
	if current.OwnerID != callerID {
		return listing.Listing{}, ErrForbidden
	}
	if err := validateListingInput(in); err != nil {
		return listing.Listing{}, err
	}

	current.Title = in.Title
	current.City = in.City
	current.Address = in.Address
	current.StructureType = in.StructureType
	current.Size = in.Size
	current.MonthlyRent = in.MonthlyRent
	current.Description = in.Description
	current.Photos = in.Photos
	current.ProfessionalsPresent = in.ProfessionalsPresent
	current.ProfilesSearched = in.ProfilesSearched

	if err := u.listings.Update(ctx, current); err != nil {
		if errors.Is(err, listing.ErrNotFound) {
			return listing.Listing{}, ErrListingNotFound
		}
		return listing.Listing{}, ErrInternal
	}
	u.invalidateSearches(ctx)
	return current, nil
}

func (u *Listings) Delete(ctx context.Context, id, callerID string) error {
	current, err := u.Get(ctx, id)
	if err != nil {
		return err
	}
	if current.OwnerID != callerID {
		return ErrForbidden
	}

	if err := u.listings.Delete(ctx, id); err != nil {
		if errors.Is(err, listing.ErrNotFound) {
			return ErrListingNotFound
		}
		return ErrInternal
	}
	u.invalidateSearches(ctx)
	return nil
}

func (u *Listings) invalidateSearches(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.InvalidateListings(ctx); err != nil && u.logger != nil {
		u.logger.Printf("[Listings] cache invalidation failed: %v", err)
	}
}

func validateListingInput(in ListingInput) error {
	if in.Title == "" || in.City == "" || in.StructureType == "" {
		return ErrInvalidInput
	}
	if in.Size <= 0 || in.MonthlyRent <= 0 {
		return ErrInvalidInput
	}
	return nil
}

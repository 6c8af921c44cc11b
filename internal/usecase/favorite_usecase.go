package usecase

import (
	"context"
	"errors"
	"time"

	"cablib/internal/domain/favorite"
	"cablib/internal/domain/listing"
	"cablib/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrAlreadyFavorited = errors.New("listing already in favorites")
	ErrFavoriteNotFound = errors.New("favorite not found")
)

type FavoriteUsecase interface {
	Add(ctx context.Context, userID, listingID string) (favorite.Favorite, error)
	List(ctx context.Context, userID string) ([]listing.Listing, error)
	Remove(ctx context.Context, userID, listingID string) error
}

type Favorites struct {
	favorites repository.FavoriteRepository
	listings  repository.ListingRepository
}

func NewFavoriteUsecase(favorites repository.FavoriteRepository, listings repository.ListingRepository) *Favorites {
	return &Favorites{favorites: favorites, listings: listings}
}

func (u *Favorites) Add(ctx context.Context, userID, listingID string) (favorite.Favorite, error) {
	if listingID == "" {
		return favorite.Favorite{}, ErrInvalidInput
	}

	if _, err := u.listings.GetByID(ctx, listingID); err != nil {
		if errors.Is(err, listing.ErrNotFound) {
			return favorite.Favorite{}, ErrListingNotFound
		}
		return favorite.Favorite{}, ErrInternal
	}

	exists, err := u.favorites.Exists(ctx, userID, listingID)
	if err != nil {
		return favorite.Favorite{}, ErrInternal
	}
	if exists {
		return favorite.Favorite{}, ErrAlreadyFavorited
	}

	f := favorite.Favorite{
		ID:        uuid.NewString(),
		UserID:    userID,
		ListingID: listingID,
		CreatedAt: time.Now().UTC(),
	}
	if err := u.favorites.Create(ctx, f); err != nil {
		return favorite.Favorite{}, ErrInternal
	}
	return f, nil
}

// List returns the favorited listings, newest favorite first.
// Favorites whose listing has since been deleted are skipped.
func (u *Favorites) List(ctx context.Context, userID string) ([]listing.Listing, error) {
	favs, err := u.favorites.FindByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]listing.Listing, 0, len(favs))
	for _, f := range favs {
		l, err := u.listings.GetByID(ctx, f.ListingID)
		if err != nil {
			if errors.Is(err, listing.ErrNotFound) {
				continue
			}
			return nil, ErrInternal
		}
		out = append(out, l)
	}
	return out, nil
}

func (u *Favorites) Remove(ctx context.Context, userID, listingID string) error {
	err := u.favorites.Delete(ctx, userID, listingID)
	if err != nil {
		if errors.Is(err, favorite.ErrNotFound) {
			return ErrFavoriteNotFound
		}
		return ErrInternal
	}
	return nil
}

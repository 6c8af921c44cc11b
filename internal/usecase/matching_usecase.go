package usecase

import (
	"context"
	"errors"

	"cablib/internal/domain/listing"
	"cablib/internal/domain/matching"
	"cablib/internal/domain/user"
	"cablib/internal/repository"
)

const defaultTopMatches = 3

// MatchResult pairs a listing with its compatibility score.
type MatchResult struct {
	Listing listing.Listing `json:"listing"`
	Score   int             `json:"score"`
	Reasons []string        `json:"reasons"`
}

type MatchingUsecase interface {
	Matches(ctx context.Context, userID string) ([]MatchResult, error)
	TopMatches(ctx context.Context, userID string, limit int) ([]MatchResult, error)
}

type Matching struct {
	users    repository.UserRepository
	listings repository.ListingRepository
}

func NewMatchingUsecase(users repository.UserRepository, listings repository.ListingRepository) *Matching {
	return &Matching{users: users, listings: listings}
}

// Matches scores every listing against the practitioner's profile and
// returns the ranked non-zero results.
func (u *Matching) Matches(ctx context.Context, userID string) ([]MatchResult, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, ErrInternal
	}
	if usr.UserType != user.TypeLocataire {
		return nil, ErrForbidden
	}

	rows, err := u.listings.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	profile := matching.Profile{
		Profession:             usr.Profession,
		PreferredCity:          usr.PreferredCity,
		MaxBudget:              usr.MaxBudget,
		MinSize:                usr.MinSize,
		PreferredStructureType: usr.PreferredStructureType,
	}

	candidates := make([]matching.Listing, len(rows))
	for i, l := range rows {
		candidates[i] = matching.Listing{
			City:             l.City,
			StructureType:    l.StructureType,
			Size:             l.Size,
			MonthlyRent:      l.MonthlyRent,
			ProfilesSearched: l.ProfilesSearched,
		}
	}

	ranked := matching.Rank(profile, candidates)
	out := make([]MatchResult, 0, len(ranked))
	for _, s := range ranked {
		out = append(out, MatchResult{
			Listing: rows[s.Index],
			Score:   s.Score,
			Reasons: s.Reasons,
		})
	}
	return out, nil
}

func (u *Matching) TopMatches(ctx context.Context, userID string, limit int) ([]MatchResult, error) {
	if limit <= 0 {
		limit = defaultTopMatches
	}
	all, err := u.Matches(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

package usecase

import (
	"context"
	"strings"
	"time"

	"cablib/internal/domain/searchlog"
	"cablib/internal/domain/user"
	"cablib/internal/repository"

	"github.com/google/uuid"
)

const searchLogStatsWindow = 500

type SearchLogUsecase interface {
	Log(ctx context.Context, userID string, params ListingSearchParams) error
	Stats(ctx context.Context, callerType string) (searchlog.Stats, error)
	ByCity(ctx context.Context, callerType, city string) ([]searchlog.SearchLog, error)
}

type SearchLogs struct {
	logs  repository.SearchLogRepository
	users repository.UserRepository
	now   func() time.Time
}

func NewSearchLogUsecase(logs repository.SearchLogRepository, users repository.UserRepository) *SearchLogs {
	return &SearchLogs{logs: logs, users: users, now: time.Now}
}

// Log records a search with a snapshot of who ran it. Failures here
// never surface to the searcher.
func (u *SearchLogs) Log(ctx context.Context, userID string, params ListingSearchParams) error {
	entry := searchlog.SearchLog{
		ID:            uuid.NewString(),
		UserID:        userID,
		City:          params.City,
		RadiusKm:      params.RadiusKm,
		StructureType: params.StructureType,
		Profession:    params.Profession,
		Timestamp:     u.now().UTC(),
	}
	if usr, err := u.users.GetByID(ctx, userID); err == nil {
		entry.UserEmail = usr.Email
		entry.UserName = usr.FullName()
		entry.UserProfession = usr.Profession
	}
	return u.logs.Create(ctx, entry)
}

func (u *SearchLogs) Stats(ctx context.Context, callerType string) (searchlog.Stats, error) {
	if callerType != user.TypeAdmin {
		return searchlog.Stats{}, ErrForbidden
	}

	rows, err := u.logs.ListRecent(ctx, searchLogStatsWindow)
	if err != nil {
		return searchlog.Stats{}, ErrInternal
	}

	byCity := make(map[string]int)
	for _, l := range rows {
		if city := strings.TrimSpace(strings.ToLower(l.City)); city != "" {
			byCity[city]++
		}
	}

	recent := rows
	if len(recent) > 50 {
		recent = recent[:50]
	}
	return searchlog.Stats{
		TotalSearches:  len(rows),
		SearchesByCity: byCity,
		RecentSearches: recent,
	}, nil
}

func (u *SearchLogs) ByCity(ctx context.Context, callerType, city string) ([]searchlog.SearchLog, error) {
	if callerType != user.TypeAdmin {
		return nil, ErrForbidden
	}
	if strings.TrimSpace(city) == "" {
		return nil, ErrInvalidInput
	}
	out, err := u.logs.ListByCity(ctx, city, searchLogStatsWindow)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

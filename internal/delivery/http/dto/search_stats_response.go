package dto

import (
	"time"

	"cablib/internal/domain/searchlog"
)

type SearchLogResponse struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	UserEmail      string    `json:"user_email,omitempty"`
	UserName       string    `json:"user_name,omitempty"`
	UserProfession string    `json:"user_profession,omitempty"`
	City           string    `json:"city,omitempty"`
	RadiusKm       int       `json:"radius_km,omitempty"`
	StructureType  string    `json:"structure_type,omitempty"`
	Profession     string    `json:"profession,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

func FromSearchLog(l searchlog.SearchLog) SearchLogResponse {
	return SearchLogResponse{
		ID:             l.ID,
		UserID:         l.UserID,
		UserEmail:      l.UserEmail,
		UserName:       l.UserName,
		UserProfession: l.UserProfession,
		City:           l.City,
		RadiusKm:       l.RadiusKm,
		StructureType:  l.StructureType,
		Profession:     l.Profession,
		Timestamp:      l.Timestamp,
	}
}

func FromSearchLogs(ls []searchlog.SearchLog) []SearchLogResponse {
	out := make([]SearchLogResponse, 0, len(ls))
	for _, l := range ls {
		out = append(out, FromSearchLog(l))
	}
	return out
}

type SearchStatsResponse struct {
	TotalSearches  int                 `json:"total_searches"`
	SearchesByCity map[string]int      `json:"searches_by_city"`
	RecentSearches []SearchLogResponse `json:"recent_searches"`
}

func FromSearchStats(s searchlog.Stats) SearchStatsResponse {
	byCity := s.SearchesByCity
	if byCity == nil {
		byCity = map[string]int{}
	}
	return SearchStatsResponse{
		TotalSearches:  s.TotalSearches,
		SearchesByCity: byCity,
		RecentSearches: FromSearchLogs(s.RecentSearches),
	}
}

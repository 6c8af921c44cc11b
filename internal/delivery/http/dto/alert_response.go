package dto

import (
	"time"

	"cablib/internal/domain/alert"
)

type AlertResponse struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	City          string     `json:"city,omitempty"`
	RadiusKm      int        `json:"radius_km,omitempty"`
	StructureType string     `json:"structure_type,omitempty"`
	Profession    string     `json:"profession,omitempty"`
	MaxRent       int        `json:"max_rent,omitempty"`
	MinSize       int        `json:"min_size,omitempty"`
	Active        bool       `json:"active"`
	CreatedAt     time.Time  `json:"created_at"`
	LastChecked   *time.Time `json:"last_checked,omitempty"`
}

func FromAlert(a alert.Alert) AlertResponse {
	return AlertResponse{
		ID:            a.ID,
		Name:          a.Name,
		City:          a.City,
		RadiusKm:      a.RadiusKm,
		StructureType: a.StructureType,
		Profession:    a.Profession,
		MaxRent:       a.MaxRent,
		MinSize:       a.MinSize,
		Active:        a.Active,
		CreatedAt:     a.CreatedAt,
		LastChecked:   a.LastChecked,
	}
}

func FromAlerts(as []alert.Alert) []AlertResponse {
	out := make([]AlertResponse, 0, len(as))
	for _, a := range as {
		out = append(out, FromAlert(a))
	}
	return out
}

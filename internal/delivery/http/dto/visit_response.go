package dto

import (
	"time"

	"cablib/internal/domain/visit"
)

type VisitResponse struct {
	ID                     string    `json:"id"`
	ListingID              string    `json:"listing_id"`
	PractitionerID         string    `json:"practitioner_id"`
	PractitionerName       string    `json:"practitioner_name"`
	PractitionerEmail      string    `json:"practitioner_email"`
	PractitionerProfession string    `json:"practitioner_profession"`
	OwnerID                string    `json:"owner_id"`
	Date                   string    `json:"date"`
	Time                   string    `json:"time"`
	Message                string    `json:"message,omitempty"`
	Status                 string    `json:"status"`
	CreatedAt              time.Time `json:"created_at"`
}

func FromVisit(v visit.Visit) VisitResponse {
	return VisitResponse{
		ID:                     v.ID,
		ListingID:              v.ListingID,
		PractitionerID:         v.PractitionerID,
		PractitionerName:       v.PractitionerName,
		PractitionerEmail:      v.PractitionerEmail,
		PractitionerProfession: v.PractitionerProfession,
		OwnerID:                v.OwnerID,
		Date:                   v.Date,
		Time:                   v.Time,
		Message:                v.Message,
		Status:                 v.Status,
		CreatedAt:              v.CreatedAt,
	}
}

func FromVisits(vs []visit.Visit) []VisitResponse {
	out := make([]VisitResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromVisit(v))
	}
	return out
}

package dto

import (
	"time"

	"cablib/internal/domain/user"
)

type UserResponse struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	RPPSNumber string `json:"rpps_number"`
	Profession string `json:"profession"`
	UserType   string `json:"user_type"`

	PreferredCity          string `json:"preferred_city,omitempty"`
	MaxBudget              int    `json:"max_budget,omitempty"`
	MinSize                int    `json:"min_size,omitempty"`
	PreferredStructureType string `json:"preferred_structure_type,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func FromUser(u user.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		RPPSNumber: u.RPPSNumber,
		Profession: u.Profession,
		UserType:   u.UserType,

		PreferredCity:          u.PreferredCity,
		MaxBudget:              u.MaxBudget,
		MinSize:                u.MinSize,
		PreferredStructureType: u.PreferredStructureType,

		CreatedAt: u.CreatedAt,
	}
}

type AuthResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

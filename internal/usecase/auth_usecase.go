package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"cablib/internal/domain/user"
	"cablib/internal/pkg/jwt"
	"cablib/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidRPPS            = errors.New("invalid RPPS number")
)

type RegisterInput struct {
	Email      string
	Password   string
	FirstName  string
	LastName   string
	RPPSNumber string
	Profession string
	UserType   string

	PreferredCity          string
	MaxBudget              int
	MinSize                int
	PreferredStructureType string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (user.User, string, string, error)
	Login(ctx context.Context, in LoginInput) (user.User, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
	Me(ctx context.Context, userID string) (user.User, error)
}

type Auth struct {
	users repository.UserRepository
	jwt   jwt.Service
}

func NewAuthUsecase(users repository.UserRepository, jwtSvc jwt.Service) *Auth {
	return &Auth{users: users, jwt: jwtSvc}
}

func (u *Auth) Register(ctx context.Context, in RegisterInput) (user.User, string, string, error) {
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	if in.Email == "" || in.Password == "" || in.FirstName == "" || in.LastName == "" {
		return user.User{}, "", "", ErrInvalidInput
	}
	if !validUserType(in.UserType) {
		return user.User{}, "", "", ErrInvalidInput
	}
	if !validRPPS(in.RPPSNumber) {
		return user.User{}, "", "", ErrInvalidRPPS
	}

	_, err := u.users.GetByEmail(ctx, in.Email)
	if err == nil {
		return user.User{}, "", "", ErrEmailAlreadyRegistered
	}
	if !errors.Is(err, user.ErrNotFound) {
		return user.User{}, "", "", ErrInternal
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, "", "", ErrInternal
	}

	usr := user.User{
		ID:           uuid.NewString(),
		Email:        in.Email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		RPPSNumber:   in.RPPSNumber,
		Profession:   in.Profession,
		UserType:     in.UserType,

		PreferredCity:          in.PreferredCity,
		MaxBudget:              in.MaxBudget,
		MinSize:                in.MinSize,
		PreferredStructureType: in.PreferredStructureType,

		CreatedAt: time.Now().UTC(),
	}
	if err := u.users.Create(ctx, usr); err != nil {
		return user.User{}, "", "", ErrInternal
	}

	return u.withTokens(usr)
}

func (u *Auth) Login(ctx context.Context, in LoginInput) (user.User, string, string, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" || in.Password == "" {
		return user.User{}, "", "", ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, "", "", ErrInvalidCredentials
		}
		return user.User{}, "", "", ErrInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(in.Password)) != nil {
		return user.User{}, "", "", ErrInvalidCredentials
	}

	return u.withTokens(usr)
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	if refreshToken == "" {
		return "", "", ErrUnauthorized
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrRefreshTokenExpired
		}
		return "", "", ErrInvalidRefreshToken
	}
	if !u.jwt.IsRefreshToken(claims) {
		return "", "", ErrInvalidRefreshToken
	}

	usr, err := u.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return "", "", ErrInvalidRefreshToken
		}
		return "", "", ErrInternal
	}

	_, access, refresh, err := u.withTokens(usr)
	return access, refresh, err
}

func (u *Auth) Me(ctx context.Context, userID string) (user.User, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrUnauthorized
		}
		return user.User{}, ErrInternal
	}
	return usr, nil
}

func (u *Auth) withTokens(usr user.User) (user.User, string, string, error) {
	access, err := u.jwt.GenerateAccessToken(usr.ID, usr.UserType)
	if err != nil {
		return user.User{}, "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(usr.ID)
	if err != nil {
		return user.User{}, "", "", ErrInternal
	}
	return usr, access, refresh, nil
}

func validUserType(t string) bool {
	return t == user.TypeLocataire || t == user.TypeProprietaire || t == user.TypeAdmin
}

// validRPPS checks the licensing identifier for format only: exactly
// 11 digits.
func validRPPS(rpps string) bool {
	if len(rpps) != 11 {
		return false
	}
	for _, r := range rpps {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

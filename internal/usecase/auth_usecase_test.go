package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"cablib/internal/domain/user"
	"cablib/internal/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

type mutableUserRepo struct {
	byID    map[string]user.User
	byEmail map[string]user.User
}

func newMutableUserRepo() *mutableUserRepo {
	return &mutableUserRepo{byID: map[string]user.User{}, byEmail: map[string]user.User{}}
}

func (m *mutableUserRepo) Create(_ context.Context, u user.User) error {
	m.byID[u.ID] = u
	m.byEmail[u.Email] = u
	return nil
}
func (m *mutableUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}
func (m *mutableUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func testJWT() jwt.Service {
	return jwt.NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
}

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Email:      "jean.dupont@example.fr",
		Password:   "s3cret!",
		FirstName:  "Jean",
		LastName:   "Dupont",
		RPPSNumber: "12345678901",
		Profession: "Dentiste",
		UserType:   user.TypeLocataire,
	}
}

func TestAuth_RegisterAndLogin(t *testing.T) {
	repo := newMutableUserRepo()
	uc := NewAuthUsecase(repo, testJWT())

	usr, access, refresh, err := uc.Register(context.Background(), validRegisterInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if usr.ID == "" || access == "" || refresh == "" {
		t.Fatalf("expected user id and both tokens")
	}
	if usr.PasswordHash == "s3cret!" {
		t.Fatalf("password stored in clear")
	}
	if bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte("s3cret!")) != nil {
		t.Fatalf("stored hash does not verify")
	}

	got, _, _, err := uc.Login(context.Background(), LoginInput{Email: "Jean.Dupont@Example.FR", Password: "s3cret!"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if got.ID != usr.ID {
		t.Fatalf("login returned wrong user")
	}
}

func TestAuth_RegisterDuplicateEmail(t *testing.T) {
	repo := newMutableUserRepo()
	uc := NewAuthUsecase(repo, testJWT())

	if _, _, _, err := uc.Register(context.Background(), validRegisterInput()); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, _, _, err := uc.Register(context.Background(), validRegisterInput()); !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestAuth_RegisterRejectsBadRPPS(t *testing.T) {
	uc := NewAuthUsecase(newMutableUserRepo(), testJWT())

	for _, rpps := range []string{"", "123", "123456789012", "1234567890a"} {
		in := validRegisterInput()
		in.RPPSNumber = rpps
		if _, _, _, err := uc.Register(context.Background(), in); !errors.Is(err, ErrInvalidRPPS) {
			t.Fatalf("rpps %q: expected ErrInvalidRPPS, got %v", rpps, err)
		}
	}
}

func TestAuth_LoginWrongPassword(t *testing.T) {
	repo := newMutableUserRepo()
	uc := NewAuthUsecase(repo, testJWT())

	if _, _, _, err := uc.Register(context.Background(), validRegisterInput()); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, _, _, err := uc.Login(context.Background(), LoginInput{Email: "jean.dupont@example.fr", Password: "nope"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuth_RefreshRejectsAccessToken(t *testing.T) {
	repo := newMutableUserRepo()
	svc := testJWT()
	uc := NewAuthUsecase(repo, svc)

	usr, access, refresh, err := uc.Register(context.Background(), validRegisterInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, _, err := uc.Refresh(context.Background(), access); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("access token must not refresh, got %v", err)
	}

	newAccess, newRefresh, err := uc.Refresh(context.Background(), refresh)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if newAccess == "" || newRefresh == "" {
		t.Fatalf("expected reissued token pair")
	}

	claims, err := svc.ValidateToken(newAccess)
	if err != nil {
		t.Fatalf("validate reissued access: %v", err)
	}
	if claims.UserID != usr.ID {
		t.Fatalf("reissued token for wrong user")
	}
}

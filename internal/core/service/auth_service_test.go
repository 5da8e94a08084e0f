package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/adventureworks/catalog-api/internal/core/domain"
)

type stubUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User), nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	copy := cloneUser(user)
	copy.ID = r.nextID
	r.nextID++
	r.users[copy.ID] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	user, err := svc.Register(context.Background(), "alice", "alice@example.com", "Abcdef12")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if user.PasswordHash == "Abcdef12" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Abcdef12")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_PasswordPolicy(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	for _, password := range []string{"short1A", "abcdefg1", "ABCDEFG1", "Abcdefgh"} {
		if _, err := svc.Register(context.Background(), "bob", "bob@example.com", password); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("password %q: expected ErrValidation, got %v", password, err)
		}
	}
	if len(repo.users) != 0 {
		t.Fatalf("no user should be persisted on policy failure")
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	first, err := svc.Register(context.Background(), "bob", "bob@example.com", "Abcdef12")
	if err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	if _, err := svc.Register(context.Background(), "bobby", "bob@example.com", "Abcdef12"); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	// first user remains retrievable
	got, err := repo.FindByID(context.Background(), first.ID)
	if err != nil || got.Username != "bob" {
		t.Fatalf("first user lost after conflict: %v %+v", err, got)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	created, err := svc.Register(context.Background(), "carol", "carol@example.com", "S3cretPwd")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol", "S3cretPwd")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.ID != created.ID {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["sub"] != "1" {
		t.Fatalf("unexpected sub claim: %v", claims["sub"])
	}
	if _, ok := claims["exp"]; !ok {
		t.Fatalf("missing exp claim")
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "dave", "dave@example.com", "Abcdef12"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "dave", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, _, err := svc.Login(context.Background(), "ghost", "Abcdef12"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestAuthService_IssueAndVerifyToken(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)

	token, err := svc.IssueToken("alice")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	sub, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}
	if sub != "alice" {
		t.Fatalf("expected subject alice, got %q", sub)
	}
}

func TestAuthService_VerifyToken_Expired(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})
	signed, err := expired.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.VerifyToken(signed); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for expired token, got %v", err)
	}
}

func TestAuthService_VerifyToken_BadSignature(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)

	other := NewAuthService(newStubUserRepo(), "other-secret", time.Hour)
	token, err := other.IssueToken("alice")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	if _, err := svc.VerifyToken(token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for wrong signature, got %v", err)
	}
}

func TestAuthService_VerifyToken_MissingSubject(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)

	noSub := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := noSub.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.VerifyToken(signed); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for missing sub, got %v", err)
	}
}

func TestAuthService_CurrentUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	created, err := svc.Register(context.Background(), "erin", "erin@example.com", "Abcdef12")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, _, err := svc.Login(context.Background(), "erin", "Abcdef12")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	user, err := svc.CurrentUser(context.Background(), token)
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if user.ID != created.ID || user.Email != "erin@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthService_UserBySubject_Unknown(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)

	if _, err := svc.UserBySubject(context.Background(), "999"); !errors.Is(err, domain.ErrUnknownSubject) {
		t.Fatalf("expected ErrUnknownSubject, got %v", err)
	}
	if _, err := svc.UserBySubject(context.Background(), "not-a-number"); !errors.Is(err, domain.ErrUnknownSubject) {
		t.Fatalf("expected ErrUnknownSubject for malformed subject, got %v", err)
	}
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/adventureworks/catalog-api/internal/api/metrics"
	"github.com/adventureworks/catalog-api/internal/core/domain"
	"github.com/adventureworks/catalog-api/internal/core/ports"
)

const defaultTokenTTL = 30 * time.Minute

// AuthService implements registration, login and token verification.
type AuthService struct {
	users     ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(users ports.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthService{users: users, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Register validates the username and password policy, rejects duplicate
// emails, and persists the user with a bcrypt hash. The plaintext password is
// discarded.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	if err := domain.ValidateUsername(username); err != nil {
		return nil, err
	}
	if err := domain.ValidatePassword(password); err != nil {
		return nil, err
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	return s.users.Create(ctx, user)
}

// Login authenticates by username and password. A missing user and a wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.AuthLoginsTotal.WithLabelValues("failure").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.AuthLoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.IssueToken(strconv.FormatInt(user.ID, 10))
	if err != nil {
		return "", nil, err
	}

	metrics.AuthLoginsTotal.WithLabelValues("success").Inc()
	return token, user, nil
}

// IssueToken mints an HS256 token carrying the subject and an absolute expiry.
func (s *AuthService) IssueToken(subject string) (string, error) {
	claims := jwt.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// VerifyToken validates the signature and expiry and returns the subject
// claim. Any failure mode collapses into ErrTokenInvalid.
func (s *AuthService) VerifyToken(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return "", domain.ErrTokenInvalid
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", fmt.Errorf("%w: missing subject claim", domain.ErrTokenInvalid)
	}
	return sub, nil
}

// UserBySubject resolves a verified subject claim to a stored user.
func (s *AuthService) UserBySubject(ctx context.Context, subject string) (*domain.User, error) {
	id, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return nil, domain.ErrUnknownSubject
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnknownSubject
		}
		return nil, err
	}
	return user, nil
}

// CurrentUser composes VerifyToken with the subject lookup.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	sub, err := s.VerifyToken(token)
	if err != nil {
		return nil, err
	}
	return s.UserBySubject(ctx, sub)
}

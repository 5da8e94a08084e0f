package ports

import (
	"context"

	"github.com/adventureworks/catalog-api/internal/core/domain"
)

// AuthService handles identity verification and the token lifecycle.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	// Login authenticates by username and returns a signed bearer token.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// IssueToken mints a signed token for the given subject.
	IssueToken(subject string) (string, error)
	// VerifyToken validates signature and expiry and returns the subject claim.
	VerifyToken(token string) (string, error)
	// UserBySubject resolves a verified subject claim to a stored user.
	UserBySubject(ctx context.Context, subject string) (*domain.User, error)
	// CurrentUser composes VerifyToken and UserBySubject.
	CurrentUser(ctx context.Context, token string) (*domain.User, error)
}

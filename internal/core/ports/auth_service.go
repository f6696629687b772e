package ports

import (
	"context"

	"github.com/99minutos/todo-service/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*domain.User, error)
	// AdminLogin checks the admin credentials and returns a signed admin token.
	AdminLogin(ctx context.Context, username, password string) (string, error)
}

// AdminVerifier decides whether a username/password pair is the administrator.
type AdminVerifier interface {
	Verify(username, password string) bool
}

// AdminTokens mints and verifies the signed, time-limited admin credential.
type AdminTokens interface {
	Issue(username string) (string, error)
	Verify(token string) (*domain.AdminClaims, error)
}

package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/99minutos/todo-service/internal/core/domain"
	"github.com/99minutos/todo-service/internal/core/ports"
)

// AuthService implements user registration and login, and admin login.
type AuthService struct {
	users  ports.UserRepository
	admin  ports.AdminVerifier
	tokens ports.AdminTokens
	log    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, admin ports.AdminVerifier, tokens ports.AdminTokens, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, admin: admin, tokens: tokens, log: log}
}

// Register creates a user with an empty todo list. The existence check and the
// insert are separate calls; the unique index on username catches the race.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	created, err := s.users.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Todos:        []string{},
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", created.Username).Str("user_id", created.ID).Msg("user registered")
	return created, nil
}

// Login returns the user matching both username and password. Unknown users and
// wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}

func (s *AuthService) AdminLogin(_ context.Context, username, password string) (string, error) {
	if !s.admin.Verify(username, password) {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(username)
	if err != nil {
		return "", err
	}

	s.log.Info().Str("username", username).Msg("admin logged in")
	return token, nil
}

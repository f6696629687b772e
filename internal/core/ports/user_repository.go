package ports

import (
	"context"

	"github.com/99minutos/todo-service/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// Create inserts a user with an empty todo list and returns it with its ID set.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// AppendTodo pushes a todo reference onto the user's todo list.
	AppendTodo(ctx context.Context, userID, todoID string) error
	List(ctx context.Context) ([]*domain.User, error)
	// DeleteByUsername removes the first user with the given name. The user's
	// todos are left in place.
	DeleteByUsername(ctx context.Context, username string) error
}

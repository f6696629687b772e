package ports

import (
	"context"

	"github.com/99minutos/todo-service/internal/core/domain"
)

// AdminService defines the unscoped operations available to the administrator.
type AdminService interface {
	ListTodos(ctx context.Context) ([]*domain.Todo, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	DeleteUser(ctx context.Context, username string) error
	DeleteTodo(ctx context.Context, todoID string) error
}

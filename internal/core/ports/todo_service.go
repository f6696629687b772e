package ports

import (
	"context"

	"github.com/99minutos/todo-service/internal/core/domain"
)

// Owner identifies the logged-in user on whose behalf a todo operation runs.
type Owner struct {
	UserID   string
	Username string
}

// CreateTodoInput carries the fields submitted by the todo form.
type CreateTodoInput struct {
	Task        string
	Description string
}

// TodoService defines the user-scoped todo use cases.
type TodoService interface {
	Create(ctx context.Context, owner Owner, input CreateTodoInput) (*domain.Todo, error)
	ListForUser(ctx context.Context, userID string) ([]*domain.Todo, error)
	SetCompleted(ctx context.Context, owner Owner, todoID string, completed bool) error
	Delete(ctx context.Context, owner Owner, todoID string) error
}

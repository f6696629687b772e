package ports

import (
	"context"

	"github.com/99minutos/todo-service/internal/core/domain"
)

// TodoRepository defines persistence operations for todos.
type TodoRepository interface {
	Create(ctx context.Context, todo *domain.Todo) (*domain.Todo, error)
	// FindByIDs resolves references, silently skipping ids that no longer exist.
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Todo, error)
	List(ctx context.Context) ([]*domain.Todo, error)
	// SetCompleted updates the completed flag. When owner is non-empty the
	// update is scoped to todos whose username matches. Returns
	// domain.ErrTodoNotFound when nothing matched.
	SetCompleted(ctx context.Context, id, owner string, completed bool) error
	// Delete removes a todo, scoped to owner when non-empty. Returns
	// domain.ErrTodoNotFound when nothing matched.
	Delete(ctx context.Context, id, owner string) error
}

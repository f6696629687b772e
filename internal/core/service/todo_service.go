package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/todo-service/internal/core/domain"
	"github.com/99minutos/todo-service/internal/core/ports"
)

type TodoService struct {
	users  ports.UserRepository
	todos  ports.TodoRepository
	logger zerolog.Logger
}

func NewTodoService(users ports.UserRepository, todos ports.TodoRepository, logger zerolog.Logger) *TodoService {
	return &TodoService{users: users, todos: todos, logger: logger}
}

// Create inserts the todo and then links it to the owner. The two writes are
// not atomic: if linking fails the todo remains in the collection unlinked.
func (s *TodoService) Create(ctx context.Context, owner ports.Owner, input ports.CreateTodoInput) (*domain.Todo, error) {
	user, err := s.users.FindByID(ctx, owner.UserID)
	if err != nil {
		return nil, err
	}

	todo, err := s.todos.Create(ctx, &domain.Todo{
		Task:        input.Task,
		Description: input.Description,
		Completed:   false,
		Username:    owner.Username,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("failed to create todo")
		return nil, err
	}

	if err := s.users.AppendTodo(ctx, user.ID, todo.ID); err != nil {
		s.logger.Error().Err(err).
			Str("user_id", user.ID).
			Str("todo_id", todo.ID).
			Msg("todo saved but not linked to user")
		return nil, fmt.Errorf("link todo: %w", err)
	}

	s.logger.Info().Str("todo_id", todo.ID).Str("username", owner.Username).Msg("todo created")
	return todo, nil
}

// ListForUser resolves the user's todo references in list order.
func (s *TodoService) ListForUser(ctx context.Context, userID string) ([]*domain.Todo, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(user.Todos) == 0 {
		return []*domain.Todo{}, nil
	}
	return s.todos.FindByIDs(ctx, user.Todos)
}

func (s *TodoService) SetCompleted(ctx context.Context, owner ports.Owner, todoID string, completed bool) error {
	if err := s.requireOwned(ctx, owner, todoID); err != nil {
		return err
	}
	if err := s.todos.SetCompleted(ctx, todoID, owner.Username, completed); err != nil {
		return err
	}
	s.logger.Info().Str("todo_id", todoID).Bool("completed", completed).Msg("todo updated")
	return nil
}

// Delete removes the todo only. The reference in the owner's list is kept and
// skipped on the next read.
func (s *TodoService) Delete(ctx context.Context, owner ports.Owner, todoID string) error {
	if err := s.requireOwned(ctx, owner, todoID); err != nil {
		return err
	}
	if err := s.todos.Delete(ctx, todoID, owner.Username); err != nil {
		return err
	}
	s.logger.Info().Str("todo_id", todoID).Str("username", owner.Username).Msg("todo deleted")
	return nil
}

// requireOwned checks todoID against the reference list of the user id in the
// session, not the username copied onto the todo, since a deleted user's name
// can be registered again. A missing user or an unlisted id both report
// domain.ErrTodoNotFound.
func (s *TodoService) requireOwned(ctx context.Context, owner ports.Owner, todoID string) error {
	user, err := s.users.FindByID(ctx, owner.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrInvalidID) {
			return domain.ErrTodoNotFound
		}
		return err
	}
	if !slices.Contains(user.Todos, todoID) {
		return domain.ErrTodoNotFound
	}
	return nil
}

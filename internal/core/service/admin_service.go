package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/99minutos/todo-service/internal/core/domain"
	"github.com/99minutos/todo-service/internal/core/ports"
)

type adminService struct {
	users ports.UserRepository
	todos ports.TodoRepository
	log   zerolog.Logger
}

// NewAdminService returns an AdminService implementation. None of its
// operations are scoped to an owner.
func NewAdminService(users ports.UserRepository, todos ports.TodoRepository, log zerolog.Logger) ports.AdminService {
	return &adminService{users: users, todos: todos, log: log}
}

func (s *adminService) ListTodos(ctx context.Context) ([]*domain.Todo, error) {
	return s.todos.List(ctx)
}

func (s *adminService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

// DeleteUser removes the user document. Its todos stay in the todo collection.
func (s *adminService) DeleteUser(ctx context.Context, username string) error {
	if err := s.users.DeleteByUsername(ctx, username); err != nil {
		return err
	}
	s.log.Info().Str("username", username).Msg("admin deleted user")
	return nil
}

func (s *adminService) DeleteTodo(ctx context.Context, todoID string) error {
	if err := s.todos.Delete(ctx, todoID, ""); err != nil {
		return err
	}
	s.log.Info().Str("todo_id", todoID).Msg("admin deleted todo")
	return nil
}

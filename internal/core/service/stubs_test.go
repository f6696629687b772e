package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/99minutos/todo-service/internal/core/domain"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users     []*domain.User
	nextID    int
	findErr   error
	appendErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Todos = append([]string(nil), u.Todos...)
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	c := cloneUser(user)
	c.ID = fmt.Sprintf("user-%d", r.nextID)
	r.users = append(r.users, c)
	return cloneUser(c), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) AppendTodo(_ context.Context, userID, todoID string) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	for _, u := range r.users {
		if u.ID == userID {
			u.Todos = append(u.Todos, todoID)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) DeleteByUsername(_ context.Context, username string) error {
	for i, u := range r.users {
		if u.Username == username {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

type stubTodoRepo struct {
	todos     []*domain.Todo
	nextID    int
	createErr error
}

func newStubTodoRepo() *stubTodoRepo {
	return &stubTodoRepo{}
}

func (r *stubTodoRepo) Create(_ context.Context, todo *domain.Todo) (*domain.Todo, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.nextID++
	clone := *todo
	clone.ID = fmt.Sprintf("todo-%d", r.nextID)
	r.todos = append(r.todos, &clone)
	out := clone
	return &out, nil
}

func (r *stubTodoRepo) find(id string) *domain.Todo {
	for _, t := range r.todos {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func (r *stubTodoRepo) FindByIDs(_ context.Context, ids []string) ([]*domain.Todo, error) {
	out := make([]*domain.Todo, 0, len(ids))
	for _, id := range ids {
		if t := r.find(id); t != nil {
			clone := *t
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubTodoRepo) List(_ context.Context) ([]*domain.Todo, error) {
	out := make([]*domain.Todo, 0, len(r.todos))
	for _, t := range r.todos {
		clone := *t
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubTodoRepo) SetCompleted(_ context.Context, id, owner string, completed bool) error {
	t := r.find(id)
	if t == nil || (owner != "" && t.Username != owner) {
		return domain.ErrTodoNotFound
	}
	t.Completed = completed
	return nil
}

func (r *stubTodoRepo) Delete(_ context.Context, id, owner string) error {
	for i, t := range r.todos {
		if t.ID == id && (owner == "" || t.Username == owner) {
			r.todos = append(r.todos[:i], r.todos[i+1:]...)
			return nil
		}
	}
	return domain.ErrTodoNotFound
}

var errStore = errors.New("store unavailable")

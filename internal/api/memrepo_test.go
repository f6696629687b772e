package api

import (
	"context"
	"fmt"
	"sync"

	"github.com/99minutos/todo-service/internal/core/domain"
)

// memUserRepo and memTodoRepo keep documents in maps so the router can run
// end to end without MongoDB.
type memUserRepo struct {
	mu    sync.Mutex
	seq   int
	users []*domain.User
}

func (r *memUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return nil, domain.ErrUserExists
		}
	}
	r.seq++
	cp := *u
	cp.ID = fmt.Sprintf("u%d", r.seq)
	cp.Todos = append([]string{}, u.Todos...)
	r.users = append(r.users, &cp)
	out := cp
	return &out, nil
}

func (r *memUserRepo) find(match func(*domain.User) bool) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if match(u) {
			cp := *u
			cp.Todos = append([]string{}, u.Todos...)
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	return r.find(func(u *domain.User) bool { return u.ID == id })
}

func (r *memUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	return r.find(func(u *domain.User) bool { return u.Username == username })
}

func (r *memUserRepo) AppendTodo(_ context.Context, userID, todoID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == userID {
			u.Todos = append(u.Todos, todoID)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *memUserRepo) List(_ context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.User, len(r.users))
	for i, u := range r.users {
		cp := *u
		out[i] = &cp
	}
	return out, nil
}

func (r *memUserRepo) DeleteByUsername(_ context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, u := range r.users {
		if u.Username == username {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *memUserRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

type memTodoRepo struct {
	mu    sync.Mutex
	seq   int
	todos []*domain.Todo
}

func (r *memTodoRepo) Create(_ context.Context, t *domain.Todo) (*domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	cp := *t
	cp.ID = fmt.Sprintf("t%d", r.seq)
	r.todos = append(r.todos, &cp)
	out := cp
	return &out, nil
}

func (r *memTodoRepo) FindByIDs(_ context.Context, ids []string) ([]*domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Todo
	for _, id := range ids {
		for _, t := range r.todos {
			if t.ID == id {
				cp := *t
				out = append(out, &cp)
			}
		}
	}
	return out, nil
}

func (r *memTodoRepo) List(_ context.Context) ([]*domain.Todo, error) {
	return r.FindByIDs(context.Background(), r.ids())
}

func (r *memTodoRepo) ids() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, len(r.todos))
	for i, t := range r.todos {
		ids[i] = t.ID
	}
	return ids
}

func (r *memTodoRepo) SetCompleted(_ context.Context, id, owner string, completed bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.todos {
		if t.ID == id && (owner == "" || t.Username == owner) {
			t.Completed = completed
			return nil
		}
	}
	return domain.ErrTodoNotFound
}

func (r *memTodoRepo) Delete(_ context.Context, id, owner string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, t := range r.todos {
		if t.ID == id && (owner == "" || t.Username == owner) {
			r.todos = append(r.todos[:i], r.todos[i+1:]...)
			return nil
		}
	}
	return domain.ErrTodoNotFound
}

func (r *memTodoRepo) get(id string) *domain.Todo {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.todos {
		if t.ID == id {
			cp := *t
			return &cp
		}
	}
	return nil
}

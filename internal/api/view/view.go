// Package view holds the typed page models of every rendered route and the
// echo.Renderer that turns them into HTML.
package view

import (
	"time"

	"github.com/99minutos/todo-service/internal/core/domain"
)

// Template names accepted by Renderer.
const (
	Login      = "login.html"
	AdminLogin = "adminlogin.html"
	Admin      = "admin.html"
	Register   = "register.html"
	Index      = "index.html"
	AdminTodos = "admin_tl.html"
	AdminUsers = "admin_ul.html"
)

// LoginPage backs the user login view. Error is shown inline when set.
type LoginPage struct {
	Error string
}

// FormPage backs the views that render a static form.
type FormPage struct{}

// IndexPage is the logged-in user's todo list.
type IndexPage struct {
	Username string
	Todos    []TodoItem
}

// AdminTodosPage lists every todo in the store.
type AdminTodosPage struct {
	Todos []TodoItem
}

// AdminUsersPage lists every registered user.
type AdminUsersPage struct {
	Users []UserItem
}

type TodoItem struct {
	ID          string
	Task        string
	Description string
	Completed   bool
	Username    string
	CreatedAt   time.Time
}

type UserItem struct {
	ID        string
	Username  string
	TodoCount int
}

func TodoItems(todos []*domain.Todo) []TodoItem {
	out := make([]TodoItem, len(todos))
	for i, t := range todos {
		out[i] = TodoItem{
			ID:          t.ID,
			Task:        t.Task,
			Description: t.Description,
			Completed:   t.Completed,
			Username:    t.Username,
			CreatedAt:   t.CreatedAt,
		}
	}
	return out
}

func UserItems(users []*domain.User) []UserItem {
	out := make([]UserItem, len(users))
	for i, u := range users {
		out[i] = UserItem{ID: u.ID, Username: u.Username, TodoCount: len(u.Todos)}
	}
	return out
}

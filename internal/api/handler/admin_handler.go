package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/todo-service/internal/api/metrics"
	"github.com/99minutos/todo-service/internal/api/middleware"
	"github.com/99minutos/todo-service/internal/api/view"
	"github.com/99minutos/todo-service/internal/core/domain"
	"github.com/99minutos/todo-service/internal/core/ports"
)

const (
	adminUsersPath = "/admin/Userlist"
	adminTodosPath = "/admin/Todolist"
)

// AdminHandler serves the administrator views. Every route sits behind
// middleware.RequireAdmin.
type AdminHandler struct {
	service ports.AdminService
	log     zerolog.Logger
}

func NewAdminHandler(service ports.AdminService, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{service: service, log: log}
}

// Todos lists every todo of every user.
//
// @Summary      List all todos
// @Tags         admin
// @Produce      html
// @Success      200  {string}  string  "All-todos view"
// @Success      302  "Redirect to /login without a valid admin token"
// @Router       /admin/Todolist [get]
func (h *AdminHandler) Todos(c echo.Context) error {
	todos, err := h.service.ListTodos(c.Request().Context())
	if err != nil {
		h.logFailure(c, err, "list todos")
		return c.String(http.StatusOK, msgAdminListFailed)
	}
	return c.Render(http.StatusOK, view.AdminTodos, view.AdminTodosPage{Todos: view.TodoItems(todos)})
}

// Users lists every registered user.
//
// @Summary      List all users
// @Tags         admin
// @Produce      html
// @Success      200  {string}  string  "All-users view"
// @Success      302  "Redirect to /login without a valid admin token"
// @Router       /admin/Userlist [get]
func (h *AdminHandler) Users(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		h.logFailure(c, err, "list users")
		return c.String(http.StatusOK, msgAdminListFailed)
	}
	return c.Render(http.StatusOK, view.AdminUsers, view.AdminUsersPage{Users: view.UserItems(users)})
}

// DeleteUser removes a user by username. The user's todos are kept.
//
// @Summary      Delete a user
// @Tags         admin
// @Param        username  path  string  true  "Username"
// @Success      302  "Redirect to /admin/Userlist"
// @Router       /admin/delete/{username} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	username := c.Param("username")
	err := h.service.DeleteUser(c.Request().Context(), username)
	switch {
	case err == nil:
		metrics.AdminDeletesTotal.WithLabelValues("user").Inc()
	case errors.Is(err, domain.ErrUserNotFound):
		h.log.Warn().Str("username", username).Msg("admin delete: user not found")
	default:
		h.logFailure(c, err, "delete user")
		return c.String(http.StatusOK, msgDeleteUserFailed)
	}
	return c.Redirect(http.StatusFound, adminUsersPath)
}

// DeleteTodo removes any todo by id.
//
// @Summary      Delete any todo
// @Tags         admin
// @Param        _id  path  string  true  "Todo id"
// @Success      302  "Redirect to /admin/Todolist"
// @Router       /admin/deletet/{_id} [delete]
func (h *AdminHandler) DeleteTodo(c echo.Context) error {
	id := c.Param("_id")
	err := h.service.DeleteTodo(c.Request().Context(), id)
	switch {
	case err == nil:
		metrics.AdminDeletesTotal.WithLabelValues("todo").Inc()
	case isMissingTodo(err):
		h.log.Warn().Str("todo_id", id).Msg("admin delete: todo not found")
	default:
		h.logFailure(c, err, "delete todo")
		return c.String(http.StatusOK, msgDeleteTodoFailed)
	}
	return c.Redirect(http.StatusFound, adminTodosPath)
}

func (h *AdminHandler) logFailure(c echo.Context, err error, msg string) {
	ev := h.log.Error().Err(err).Str("path", c.Request().URL.Path)
	if claims := middleware.AdminClaimsFrom(c); claims != nil {
		ev = ev.Str("admin", claims.Username)
	}
	ev.Msg(msg)
}

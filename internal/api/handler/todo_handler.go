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
	"github.com/99minutos/todo-service/internal/session"
)

// TodoHandler handles the logged-in user's todo list. Every route sits
// behind middleware.RequireUser.
type TodoHandler struct {
	service  ports.TodoService
	sessions *session.Manager
	log      zerolog.Logger
}

func NewTodoHandler(service ports.TodoService, sessions *session.Manager, log zerolog.Logger) *TodoHandler {
	return &TodoHandler{service: service, sessions: sessions, log: log}
}

// Home renders the user's own todos in reference order.
//
// @Summary      List own todos
// @Tags         todos
// @Produce      html
// @Success      200  {string}  string  "Todo list view"
// @Success      302  "Redirect to /login without a session"
// @Router       / [get]
func (h *TodoHandler) Home(c echo.Context) error {
	owner := ownerFrom(c)

	todos, err := h.service.ListForUser(c.Request().Context(), owner.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// The account was removed while the session was alive.
			if err := h.sessions.Destroy(c.Request().Context(), c.Response(), middleware.SessionFrom(c)); err != nil {
				h.log.Error().Err(err).Msg("destroy orphaned session")
			}
			return c.Redirect(http.StatusFound, middleware.LoginPath)
		}
		h.log.Error().Err(err).Str("username", owner.Username).Msg("list todos")
		return c.String(http.StatusOK, msgLoadTodosFailed)
	}

	return c.Render(http.StatusOK, view.Index, view.IndexPage{
		Username: owner.Username,
		Todos:    view.TodoItems(todos),
	})
}

// Create adds a todo to the user's list.
//
// @Summary      Create a todo
// @Tags         todos
// @Accept       x-www-form-urlencoded
// @Param        task         formData  string  false  "Task"
// @Param        description  formData  string  false  "Description"
// @Success      302  "Redirect to /"
// @Success      200  {string}  string  "Failure message"
// @Router       /todo [post]
func (h *TodoHandler) Create(c echo.Context) error {
	var req todoForm
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	owner := ownerFrom(c)
	_, err := h.service.Create(c.Request().Context(), owner, ports.CreateTodoInput{
		Task:        req.Task,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.String(http.StatusOK, msgUserNotFound)
		}
		h.log.Error().Err(err).Str("username", owner.Username).Msg("create todo")
		return c.String(http.StatusOK, msgSaveTodoFailed)
	}

	metrics.TodosCreatedTotal.Inc()
	return c.Redirect(http.StatusFound, "/")
}

// Update sets the completed flag of one of the user's todos.
//
// @Summary      Toggle completion
// @Tags         todos
// @Accept       x-www-form-urlencoded
// @Param        id         path      string  true   "Todo id"
// @Param        completed  formData  string  false  "true, false, on or empty"
// @Success      302  "Redirect to /"
// @Failure      400  {string}  string
// @Router       /todo/{id} [put]
func (h *TodoHandler) Update(c echo.Context) error {
	var req completedForm
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	completed, err := parseCompleted(req.Completed)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "completed must be a boolean")
	}

	owner := ownerFrom(c)
	id := c.Param("id")
	if err := h.service.SetCompleted(c.Request().Context(), owner, id, completed); err != nil {
		if isMissingTodo(err) {
			h.log.Warn().Str("todo_id", id).Str("username", owner.Username).Msg("update skipped, todo not owned or missing")
			return c.Redirect(http.StatusFound, "/")
		}
		h.log.Error().Err(err).Str("todo_id", id).Msg("update todo")
		return c.String(http.StatusOK, msgUpdateTodoFailed)
	}

	return c.Redirect(http.StatusFound, "/")
}

// Delete removes one of the user's todos. The reference in the user's list
// is left behind and skipped on read.
//
// @Summary      Delete a todo
// @Tags         todos
// @Param        id  path  string  true  "Todo id"
// @Success      302  "Redirect to /"
// @Router       /todo/{id} [delete]
func (h *TodoHandler) Delete(c echo.Context) error {
	owner := ownerFrom(c)
	id := c.Param("id")
	if err := h.service.Delete(c.Request().Context(), owner, id); err != nil {
		if isMissingTodo(err) {
			h.log.Warn().Str("todo_id", id).Str("username", owner.Username).Msg("delete skipped, todo not owned or missing")
			return c.Redirect(http.StatusFound, "/")
		}
		h.log.Error().Err(err).Str("todo_id", id).Msg("delete todo")
		return c.String(http.StatusOK, msgDeleteTodoFailed)
	}

	return c.Redirect(http.StatusFound, "/")
}

func isMissingTodo(err error) bool {
	return errors.Is(err, domain.ErrTodoNotFound) || errors.Is(err, domain.ErrInvalidID)
}

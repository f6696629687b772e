package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/todo-service/internal/api/middleware"
	"github.com/99minutos/todo-service/internal/core/ports"
)

// ownerFrom builds the todo owner from the session. RequireUser has already
// rejected anonymous sessions.
func ownerFrom(c echo.Context) ports.Owner {
	sess := middleware.SessionFrom(c)
	return ports.Owner{UserID: sess.UserID, Username: sess.Username}
}

// parseCompleted accepts the values a form or script may send for the flag.
// An absent value means unchecked.
func parseCompleted(raw string) (bool, error) {
	switch raw {
	case "", "off":
		return false, nil
	case "on":
		return true, nil
	}
	return strconv.ParseBool(raw)
}

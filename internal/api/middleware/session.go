package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/todo-service/internal/session"
)

const sessionContextKey = "session"

// Session loads the request's session and stores it on the echo context.
// A store failure is logged and the request continues with an anonymous
// session.
func Session(manager *session.Manager, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := manager.Load(c.Request())
			if err != nil {
				log.Error().Err(err).
					Str("method", c.Request().Method).
					Str("path", c.Request().URL.Path).
					Msg("session store unavailable")
			}
			c.Set(sessionContextKey, sess)
			return next(c)
		}
	}
}

// SessionFrom returns the session loaded by the Session middleware. Without
// the middleware it returns an empty, unsaved session.
func SessionFrom(c echo.Context) *session.Session {
	if s, ok := c.Get(sessionContextKey).(*session.Session); ok && s != nil {
		return s
	}
	return &session.Session{}
}

// WithSession attaches s to c, for handlers exercised without the middleware.
func WithSession(c echo.Context, s *session.Session) {
	c.Set(sessionContextKey, s)
}

package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/todo-service/internal/api/metrics"
	"github.com/99minutos/todo-service/internal/core/domain"
	"github.com/99minutos/todo-service/internal/core/ports"
)

const (
	LoginPath             = "/login"
	adminClaimsContextKey = "admin"
)

// RequireUser lets the request through when the session carries a logged-in
// user and redirects to the login page otherwise.
func RequireUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !SessionFrom(c).LoggedIn() {
				metrics.GuardRedirectsTotal.WithLabelValues("user").Inc()
				return c.Redirect(http.StatusFound, LoginPath)
			}
			return next(c)
		}
	}
}

// RequireAdmin verifies the admin token held in the session and injects its
// claims into the context. Missing, forged and expired tokens all redirect to
// the login page; the reason is only logged.
func RequireAdmin(tokens ports.AdminTokens, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := SessionFrom(c).AdminToken
			if token == "" {
				metrics.GuardRedirectsTotal.WithLabelValues("admin").Inc()
				return c.Redirect(http.StatusFound, LoginPath)
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				log.Warn().Err(err).
					Str("path", c.Request().URL.Path).
					Msg("admin token rejected")
				metrics.GuardRedirectsTotal.WithLabelValues("admin").Inc()
				return c.Redirect(http.StatusFound, LoginPath)
			}

			c.Set(adminClaimsContextKey, claims)
			return next(c)
		}
	}
}

// AdminClaimsFrom returns the claims injected by RequireAdmin, or nil.
func AdminClaimsFrom(c echo.Context) *domain.AdminClaims {
	claims, _ := c.Get(adminClaimsContextKey).(*domain.AdminClaims)
	return claims
}

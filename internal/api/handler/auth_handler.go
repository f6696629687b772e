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

// AuthHandler serves registration, the two login flows and logout.
type AuthHandler struct {
	authService ports.AuthService
	sessions    *session.Manager
	log         zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, sessions *session.Manager, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions, log: log}
}

func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, view.Login, view.LoginPage{})
}

func (h *AuthHandler) RegisterPage(c echo.Context) error {
	return c.Render(http.StatusOK, view.Register, view.FormPage{})
}

func (h *AuthHandler) AdminLoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, view.AdminLogin, view.FormPage{})
}

// AdminPage renders the admin shell. The page itself holds no data, so it is
// not guarded.
func (h *AuthHandler) AdminPage(c echo.Context) error {
	return c.Render(http.StatusOK, view.Admin, view.FormPage{})
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      plain
// @Param        username  formData  string  true  "Username"
// @Param        password  formData  string  true  "Password"
// @Success      302  "Redirect to /login"
// @Success      200  {string}  string  "Conflict or failure message"
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req credentialsForm
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	_, err := h.authService.Register(c.Request().Context(), req.Username, req.Password)
	switch {
	case err == nil:
		metrics.RegistrationsTotal.WithLabelValues("created").Inc()
		return c.Redirect(http.StatusFound, middleware.LoginPath)
	case errors.Is(err, domain.ErrUserExists):
		metrics.RegistrationsTotal.WithLabelValues("exists").Inc()
		return c.String(http.StatusOK, msgUsernameTaken)
	default:
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		h.log.Error().Err(err).Str("username", req.Username).Msg("register failed")
		return c.String(http.StatusOK, msgRegisterFailed)
	}
}

// Login authenticates a user and starts a session.
//
// @Summary      User login
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      plain
// @Param        username  formData  string  true  "Username"
// @Param        password  formData  string  true  "Password"
// @Success      302  "Redirect to /"
// @Success      200  {string}  string  "Invalid credentials"
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsForm
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("user", "invalid").Inc()
			return c.String(http.StatusOK, msgInvalidCredentials)
		}
		metrics.LoginsTotal.WithLabelValues("user", "error").Inc()
		h.log.Error().Err(err).Str("username", req.Username).Msg("login failed")
		return c.String(http.StatusOK, msgLoginFailed)
	}

	sess := middleware.SessionFrom(c)
	ctx := c.Request().Context()
	if err := h.sessions.Regenerate(ctx, sess); err != nil {
		h.log.Warn().Err(err).Msg("drop previous session")
	}
	sess.SetUser(user.ID, user.Username)
	if err := h.sessions.Save(ctx, c.Response(), sess); err != nil {
		metrics.LoginsTotal.WithLabelValues("user", "error").Inc()
		h.log.Error().Err(err).Str("username", user.Username).Msg("save session")
		return c.String(http.StatusOK, msgLoginFailed)
	}

	metrics.LoginsTotal.WithLabelValues("user", "success").Inc()
	return c.Redirect(http.StatusFound, "/")
}

// AdminLogin checks the administrator credentials and stores a signed admin
// token in the session.
//
// @Summary      Admin login
// @Tags         admin
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        username  formData  string  true  "Admin username"
// @Param        password  formData  string  true  "Admin password"
// @Success      302  "Redirect to /admin"
// @Success      200  {string}  string  "Login view with an inline error"
// @Router       /adminlogin [post]
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req credentialsForm
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	token, err := h.authService.AdminLogin(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("admin", "invalid").Inc()
		} else {
			metrics.LoginsTotal.WithLabelValues("admin", "error").Inc()
			h.log.Error().Err(err).Msg("issue admin token")
		}
		return c.Render(http.StatusOK, view.Login, view.LoginPage{Error: msgInvalidCredentials})
	}

	sess := middleware.SessionFrom(c)
	ctx := c.Request().Context()
	if err := h.sessions.Regenerate(ctx, sess); err != nil {
		h.log.Warn().Err(err).Msg("drop previous session")
	}
	sess.SetAdminToken(token)
	if err := h.sessions.Save(ctx, c.Response(), sess); err != nil {
		metrics.LoginsTotal.WithLabelValues("admin", "error").Inc()
		h.log.Error().Err(err).Msg("save admin session")
		return c.String(http.StatusOK, msgLoginFailed)
	}

	metrics.LoginsTotal.WithLabelValues("admin", "success").Inc()
	return c.Redirect(http.StatusFound, "/admin")
}

// Logout destroys the session and clears the cookie.
//
// @Summary      Logout
// @Tags         auth
// @Success      302  "Redirect to /login"
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessions.Destroy(c.Request().Context(), c.Response(), middleware.SessionFrom(c)); err != nil {
		h.log.Error().Err(err).Msg("destroy session")
	}
	return c.Redirect(http.StatusFound, middleware.LoginPath)
}

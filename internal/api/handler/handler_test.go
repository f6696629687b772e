package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/todo-service/internal/api/middleware"
	"github.com/99minutos/todo-service/internal/api/view"
	"github.com/99minutos/todo-service/internal/core/domain"
	"github.com/99minutos/todo-service/internal/core/ports"
	"github.com/99minutos/todo-service/internal/session"
)

// --- Stubs ---

type stubAuthService struct {
	registerFn   func(ctx context.Context, username, password string) (*domain.User, error)
	loginFn      func(ctx context.Context, username, password string) (*domain.User, error)
	adminLoginFn func(ctx context.Context, username, password string) (string, error)
}

func (s *stubAuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	return s.registerFn(ctx, username, password)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) AdminLogin(ctx context.Context, username, password string) (string, error) {
	return s.adminLoginFn(ctx, username, password)
}

type stubTodoService struct {
	setCompletedFn func(owner ports.Owner, id string, completed bool) error
	deleteFn       func(owner ports.Owner, id string) error
}

func (s *stubTodoService) Create(context.Context, ports.Owner, ports.CreateTodoInput) (*domain.Todo, error) {
	return nil, errors.New("not implemented")
}

func (s *stubTodoService) ListForUser(context.Context, string) ([]*domain.Todo, error) {
	return nil, errors.New("not implemented")
}

func (s *stubTodoService) SetCompleted(_ context.Context, owner ports.Owner, id string, completed bool) error {
	return s.setCompletedFn(owner, id, completed)
}

func (s *stubTodoService) Delete(_ context.Context, owner ports.Owner, id string) error {
	return s.deleteFn(owner, id)
}

type stubAdminService struct {
	deleteUserErr error
	deleteTodoErr error
}

func (s *stubAdminService) ListTodos(context.Context) ([]*domain.Todo, error) { return nil, nil }
func (s *stubAdminService) ListUsers(context.Context) ([]*domain.User, error) { return nil, nil }
func (s *stubAdminService) DeleteUser(context.Context, string) error          { return s.deleteUserErr }
func (s *stubAdminService) DeleteTodo(context.Context, string) error          { return s.deleteTodoErr }

// --- Helpers ---

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Renderer = view.MustNewRenderer()
	e.Validator = NewValidator()
	return e
}

func newTestManager() *session.Manager {
	return session.NewManager(session.NewMemoryStore(), session.Options{Secret: "test-secret"})
}

func formRequest(method, target string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return req
}

// newContext builds an echo context with a freshly loaded session attached.
func newContext(t *testing.T, e *echo.Echo, m *session.Manager, req *http.Request) (echo.Context, *httptest.ResponseRecorder, *session.Session) {
	t.Helper()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	sess, err := m.Load(req)
	if err != nil {
		t.Fatalf("load session: %v", err)
	}
	middleware.WithSession(c, sess)
	return c, rec, sess
}

func assertRedirect(t *testing.T, rec *httptest.ResponseRecorder, location string) {
	t.Helper()
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d (%q)", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get(echo.HeaderLocation); got != location {
		t.Fatalf("expected redirect to %q, got %q", location, got)
	}
}

// --- AuthHandler ---

func TestAuthHandler_Register_Success(t *testing.T) {
	e, m := newTestEcho(), newTestManager()
	stub := &stubAuthService{
		registerFn: func(_ context.Context, username, password string) (*domain.User, error) {
			if username != "alice" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return &domain.User{ID: "u1", Username: username}, nil
		},
	}
	h := NewAuthHandler(stub, m, zerolog.Nop())

	c, rec, _ := newContext(t, e, m, formRequest(http.MethodPost, "/register", url.Values{
		"username": {"alice"}, "password": {"secret"},
	}))
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	assertRedirect(t, rec, "/login")
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	e, m := newTestEcho(), newTestManager()
	stub := &stubAuthService{
		registerFn: func(context.Context, string, string) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	h := NewAuthHandler(stub, m, zerolog.Nop())

	c, rec, _ := newContext(t, e, m, formRequest(http.MethodPost, "/register", url.Values{
		"username": {"alice"}, "password": {"secret"},
	}))
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != msgUsernameTaken {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

func TestAuthHandler_Register_StoreError(t *testing.T) {
	e, m := newTestEcho(), newTestManager()
	stub := &stubAuthService{
		registerFn: func(context.Context, string, string) (*domain.User, error) {
			return nil, errors.New("connection refused")
		},
	}
	h := NewAuthHandler(stub, m, zerolog.Nop())

	c, rec, _ := newContext(t, e, m, formRequest(http.MethodPost, "/register", url.Values{
		"username": {"alice"}, "password": {"secret"},
	}))
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Body.String() != msgRegisterFailed {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

func TestAuthHandler_Register_PassesEmptyFieldsThrough(t *testing.T) {
	e, m := newTestEcho(), newTestManager()
	called := false
	stub := &stubAuthService{
		registerFn: func(_ context.Context, username, password string) (*domain.User, error) {
			called = true
			if username != "alice" || password != "" {
				t.Fatalf("unexpected args: %q %q", username, password)
			}
			return &domain.User{ID: "u1", Username: username}, nil
		},
	}
	h := NewAuthHandler(stub, m, zerolog.Nop())

	c, rec, _ := newContext(t, e, m, formRequest(http.MethodPost, "/register", url.Values{
		"username": {"alice"},
	}))
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatal("service not called")
	}
	assertRedirect(t, rec, "/login")
}

func TestAuthHandler_Login_SetsSession(t *testing.T) {
	e, m := newTestEcho(), newTestManager()
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (*domain.User, error) {
			return &domain.User{ID: "u1", Username: "alice"}, nil
		},
	}
	h := NewAuthHandler(stub, m, zerolog.Nop())

	c, rec, sess := newContext(t, e, m, formRequest(http.MethodPost, "/login", url.Values{
		"username": {"alice"}, "password": {"secret"},
	}))
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	assertRedirect(t, rec, "/")
	if sess.UserID != "u1" || sess.Username != "alice" {
		t.Fatalf("session not populated: %+v", sess.Data)
	}
	if len(rec.Result().Cookies()) != 1 {
		t.Fatalf("expected one session cookie, got %d", len(rec.Result().Cookies()))
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e, m := newTestEcho(), newTestManager()
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (*domain.User, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub, m, zerolog.Nop())

	c, rec, sess := newContext(t, e, m, formRequest(http.MethodPost, "/login", url.Values{
		"username": {"alice"}, "password": {"wrong"},
	}))
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK || rec.Body.String() != msgInvalidCredentials {
		t.Fatalf("unexpected response %d %q", rec.Code, rec.Body.String())
	}
	if sess.LoggedIn() {
		t.Fatal("session must stay anonymous")
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatal("no cookie expected on failed login")
	}
}

func TestAuthHandler_AdminLogin_FailureRendersLoginView(t *testing.T) {
	e, m := newTestEcho(), newTestManager()
	stub := &stubAuthService{
		adminLoginFn: func(context.Context, string, string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub, m, zerolog.Nop())

	c, rec, sess := newContext(t, e, m, formRequest(http.MethodPost, "/adminlogin", url.Values{
		"username": {"admin"}, "password": {"nope"},
	}))
	if err := h.AdminLogin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), msgInvalidCredentials) {
		t.Fatalf("login view missing inline error: %q", rec.Body.String())
	}
	if sess.AdminToken != "" {
		t.Fatal("no admin token expected")
	}
}

func TestAuthHandler_AdminLogin_StoresToken(t *testing.T) {
	e, m := newTestEcho(), newTestManager()
	stub := &stubAuthService{
		adminLoginFn: func(context.Context, string, string) (string, error) {
			return "signed-token", nil
		},
	}
	h := NewAuthHandler(stub, m, zerolog.Nop())

	c, rec, sess := newContext(t, e, m, formRequest(http.MethodPost, "/adminlogin", url.Values{
		"username": {"admin"}, "password": {"pass"},
	}))
	if err := h.AdminLogin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	assertRedirect(t, rec, "/admin")
	if sess.AdminToken != "signed-token" {
		t.Fatalf("expected token in session, got %q", sess.AdminToken)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	e, m := newTestEcho(), newTestManager()
	h := NewAuthHandler(&stubAuthService{}, m, zerolog.Nop())

	c, rec, sess := newContext(t, e, m, httptest.NewRequest(http.MethodPost, "/logout", nil))
	sess.SetUser("u1", "alice")
	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	assertRedirect(t, rec, "/login")
	if sess.LoggedIn() {
		t.Fatal("session data must be cleared")
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge >= 0 {
		t.Fatalf("expected an expiring cookie, got %+v", cookies)
	}
}

// --- TodoHandler ---

func TestTodoHandler_Update_ParsesCompleted(t *testing.T) {
	e, m := newTestEcho(), newTestManager()
	var gotCompleted bool
	var gotOwner ports.Owner
	stub := &stubTodoService{
		setCompletedFn: func(owner ports.Owner, id string, completed bool) error {
			if id != "t1" {
				t.Fatalf("unexpected id %q", id)
			}
			gotOwner, gotCompleted = owner, completed
			return nil
		},
	}
	h := NewTodoHandler(stub, m, zerolog.Nop())

	c, rec, sess := newContext(t, e, m, formRequest(http.MethodPut, "/todo/t1", url.Values{"completed": {"on"}}))
	sess.SetUser("u1", "alice")
	c.SetParamNames("id")
	c.SetParamValues("t1")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	assertRedirect(t, rec, "/")
	if !gotCompleted {
		t.Fatal("expected completed=true")
	}
	if gotOwner.Username != "alice" || gotOwner.UserID != "u1" {
		t.Fatalf("unexpected owner %+v", gotOwner)
	}
}

func TestTodoHandler_Update_RejectsNonBoolean(t *testing.T) {
	e, m := newTestEcho(), newTestManager()
	h := NewTodoHandler(&stubTodoService{}, m, zerolog.Nop())

	c, _, sess := newContext(t, e, m, formRequest(http.MethodPut, "/todo/t1", url.Values{"completed": {"maybe"}}))
	sess.SetUser("u1", "alice")
	c.SetParamNames("id")
	c.SetParamValues("t1")

	err := h.Update(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestTodoHandler_Delete_NotOwnedStillRedirects(t *testing.T) {
	e, m := newTestEcho(), newTestManager()
	stub := &stubTodoService{
		deleteFn: func(ports.Owner, string) error { return domain.ErrTodoNotFound },
	}
	h := NewTodoHandler(stub, m, zerolog.Nop())

	c, rec, sess := newContext(t, e, m, httptest.NewRequest(http.MethodDelete, "/todo/t9", nil))
	sess.SetUser("u1", "alice")
	c.SetParamNames("id")
	c.SetParamValues("t9")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	assertRedirect(t, rec, "/")
}

func TestTodoHandler_Delete_StoreError(t *testing.T) {
	e, m := newTestEcho(), newTestManager()
	stub := &stubTodoService{
		deleteFn: func(ports.Owner, string) error { return errors.New("timeout") },
	}
	h := NewTodoHandler(stub, m, zerolog.Nop())

	c, rec, sess := newContext(t, e, m, httptest.NewRequest(http.MethodDelete, "/todo/t1", nil))
	sess.SetUser("u1", "alice")
	c.SetParamNames("id")
	c.SetParamValues("t1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Body.String() != msgDeleteTodoFailed {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

// --- AdminHandler ---

func TestAdminHandler_DeleteUser_MissingStillRedirects(t *testing.T) {
	e := newTestEcho()
	h := NewAdminHandler(&stubAdminService{deleteUserErr: domain.ErrUserNotFound}, zerolog.Nop())

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/admin/delete/ghost", nil), rec)
	c.SetParamNames("username")
	c.SetParamValues("ghost")

	if err := h.DeleteUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	assertRedirect(t, rec, "/admin/Userlist")
}

func TestAdminHandler_DeleteUser_StoreError(t *testing.T) {
	e := newTestEcho()
	h := NewAdminHandler(&stubAdminService{deleteUserErr: errors.New("boom")}, zerolog.Nop())

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/admin/delete/alice", nil), rec)
	c.SetParamNames("username")
	c.SetParamValues("alice")

	if err := h.DeleteUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Body.String() != msgDeleteUserFailed {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

func TestAdminHandler_DeleteTodo(t *testing.T) {
	e := newTestEcho()
	h := NewAdminHandler(&stubAdminService{}, zerolog.Nop())

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/admin/deletet/t1", nil), rec)
	c.SetParamNames("_id")
	c.SetParamValues("t1")

	if err := h.DeleteTodo(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	assertRedirect(t, rec, "/admin/Todolist")
}

// --- HealthHandler ---

func TestHealthHandler_ReadinessDegraded(t *testing.T) {
	e := echo.New()
	h := NewHealthHandler(
		DependencyCheck{Name: "mongodb", Ping: func(context.Context) error { return nil }},
		DependencyCheck{Name: "redis", Ping: func(context.Context) error { return errors.New("dial tcp: refused") }},
	)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health/ready", nil), rec)
	if err := h.Readiness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"status":"degraded"`) || !strings.Contains(body, "dial tcp: refused") {
		t.Fatalf("unexpected body %s", body)
	}
}

func TestParseCompleted(t *testing.T) {
	for raw, want := range map[string]bool{"": false, "off": false, "on": true, "true": true, "false": false, "1": true} {
		got, err := parseCompleted(raw)
		if err != nil || got != want {
			t.Fatalf("parseCompleted(%q) = %v, %v; want %v", raw, got, err, want)
		}
	}
	if _, err := parseCompleted("yes"); err == nil {
		t.Fatal("expected an error for an unknown value")
	}
}

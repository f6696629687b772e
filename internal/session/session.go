// Package session keeps per-browser state on the server, keyed by an opaque
// id carried in a signed cookie. The backing Store is injected so tests and
// single-process deployments can use the in-memory store and production can
// use Redis.
package session

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
)

const (
	DefaultCookieName = "todo_session"
	defaultTTL        = 24 * time.Hour
)

// ErrNotFound is returned by a Store when no live session exists for an id.
var ErrNotFound = errors.New("session not found")

// Data is the typed session payload. The user fields and the admin token are
// independent; a browser may carry both.
type Data struct {
	UserID     string `json:"user_id,omitempty"`
	Username   string `json:"username,omitempty"`
	AdminToken string `json:"admin_token,omitempty"`
}

// Store persists session data by id.
type Store interface {
	Get(ctx context.Context, id string) (*Data, error)
	Save(ctx context.Context, id string, data *Data, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}

// Session is the state attached to one request.
type Session struct {
	ID string
	Data

	isNew bool
}

// IsNew reports whether the session has never been saved.
func (s *Session) IsNew() bool { return s.isNew }

// LoggedIn reports whether an ordinary user is authenticated.
func (s *Session) LoggedIn() bool { return s.UserID != "" }

func (s *Session) SetUser(id, username string) {
	s.UserID = id
	s.Username = username
}

func (s *Session) SetAdminToken(token string) {
	s.AdminToken = token
}

// Options configures a Manager.
type Options struct {
	CookieName string
	// Secret keys the HMAC that signs the cookie value.
	Secret string
	// TTL bounds how long the store keeps an idle session.
	TTL    time.Duration
	Secure bool
}

// Manager loads and saves sessions for HTTP requests.
type Manager struct {
	store  Store
	codec  *securecookie.SecureCookie
	cookie string
	ttl    time.Duration
	secure bool
}

func NewManager(store Store, opts Options) *Manager {
	name := opts.CookieName
	if name == "" {
		name = DefaultCookieName
	}
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Manager{
		store:  store,
		codec:  securecookie.New([]byte(opts.Secret), nil),
		cookie: name,
		ttl:    ttl,
		secure: opts.Secure,
	}
}

// Load returns the session referenced by the request cookie, or a new empty
// session when the cookie is absent, tampered with, or expired. Only store
// failures are returned as errors; the session is still usable in that case.
func (m *Manager) Load(r *http.Request) (*Session, error) {
	ck, err := r.Cookie(m.cookie)
	if err != nil {
		return m.fresh(), nil
	}

	var id string
	if err := m.codec.Decode(m.cookie, ck.Value, &id); err != nil || id == "" {
		return m.fresh(), nil
	}

	data, err := m.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return m.fresh(), nil
		}
		return m.fresh(), fmt.Errorf("load session: %w", err)
	}

	return &Session{ID: id, Data: *data}, nil
}

// Save persists the session and writes the cookie. It must be called before
// the response is committed.
func (m *Manager) Save(ctx context.Context, w http.ResponseWriter, s *Session) error {
	data := s.Data
	if err := m.store.Save(ctx, s.ID, &data, m.ttl); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	value, err := m.codec.Encode(m.cookie, s.ID)
	if err != nil {
		return fmt.Errorf("encode session cookie: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookie,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	s.isNew = false
	return nil
}

// Regenerate moves the session to a fresh id, dropping the old store entry.
// Call it before Save whenever the privilege level of the session changes.
func (m *Manager) Regenerate(ctx context.Context, s *Session) error {
	if !s.isNew {
		if err := m.store.Delete(ctx, s.ID); err != nil {
			return fmt.Errorf("regenerate session: %w", err)
		}
	}
	s.ID = newID()
	s.isNew = true
	return nil
}

// Destroy deletes the session from the store and expires the cookie.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, s *Session) error {
	if !s.isNew {
		if err := m.store.Delete(ctx, s.ID); err != nil {
			return fmt.Errorf("delete session: %w", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	s.Data = Data{}
	return nil
}

func (m *Manager) fresh() *Session {
	return &Session{ID: newID(), isNew: true}
}

func newID() string {
	return base64.RawURLEncoding.EncodeToString(securecookie.GenerateRandomKey(32))
}

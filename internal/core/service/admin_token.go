package service

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/99minutos/todo-service/internal/core/domain"
)

const defaultAdminTokenTTL = time.Hour

type adminClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTAdminTokens issues HS256 admin tokens carrying the admin username.
type JWTAdminTokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTAdminTokens(secret string, ttl time.Duration) *JWTAdminTokens {
	if ttl <= 0 {
		ttl = defaultAdminTokenTTL
	}
	return &JWTAdminTokens{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (t *JWTAdminTokens) Issue(username string) (string, error) {
	now := t.now()
	claims := adminClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tkn.SignedString(t.secret)
}

// Verify checks signature and expiry and returns the decoded claims.
func (t *JWTAdminTokens) Verify(token string) (*domain.AdminClaims, error) {
	if token == "" {
		return nil, domain.ErrInvalidToken
	}

	claims := &adminClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}

	out := &domain.AdminClaims{Username: claims.Username}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

// StaticAdminVerifier accepts a single configured username/password pair.
type StaticAdminVerifier struct {
	Username string
	Password string
}

func (v StaticAdminVerifier) Verify(username, password string) bool {
	if v.Username == "" || v.Password == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(v.Password)) == 1
	return userOK && passOK
}

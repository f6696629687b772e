package domain

import (
	"errors"
	"time"
)

var (
	ErrInvalidToken = errors.New("invalid admin token")
	ErrExpiredToken = errors.New("admin token has expired")
)

// AdminClaims is the decoded payload of a verified admin token.
type AdminClaims struct {
	Username  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

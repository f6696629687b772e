package domain

import (
	"errors"
	"time"
)

var (
	ErrTodoNotFound = errors.New("todo not found")
	ErrInvalidID    = errors.New("invalid id")
)

// Todo is a single task. Username is a denormalized copy of the owner's name.
type Todo struct {
	ID          string    `json:"id"`
	Task        string    `json:"task"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	Username    string    `json:"username"`
	CreatedAt   time.Time `json:"created_at"`
}

// Package store persists todo items in PostgreSQL.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no todo matches the requested id.
var ErrNotFound = errors.New("todo not found")

// Todo is the persisted resource record.
type Todo struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Store is the persistence boundary the HTTP layer depends on.
type Store interface {
	Create(ctx context.Context, title string) (Todo, error)
	List(ctx context.Context) ([]Todo, error)
	Get(ctx context.Context, id int) (Todo, error)
	Update(ctx context.Context, id int, title string) (Todo, error)
	Delete(ctx context.Context, id int) error
}

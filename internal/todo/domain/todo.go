package domain

import (
	"time"

	"github.com/aussiebroadwan/todo/pkg/idx"
)

// Status codes seeded by the initial migration.
const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
)

// TodoStatus is reference data: the set of states a todo can be in.
type TodoStatus struct {
	ID   idx.ID[TodoStatus]
	Code string
	Name string
}

type Todo struct {
	ID          idx.ID[Todo]
	Title       string
	Description string
	Status      TodoStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTodo is inserted with the default status.
type NewTodo struct {
	ID          idx.ID[Todo]
	Title       string
	Description string
}

// UpdateTodo is a partial update: nil fields keep their stored value.
type UpdateTodo struct {
	ID          idx.ID[Todo]
	Title       *string
	Description *string
	Status      *TodoStatus
}

// IsEmpty reports whether the update would change nothing.
func (u UpdateTodo) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Status == nil
}

// UpsertTodo replaces every field of the todo, creating it when missing.
type UpsertTodo struct {
	ID          idx.ID[Todo]
	Title       string
	Description string
	Status      TodoStatus
}

package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/pkg/idx"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. Repositories hang off the Store so a Tx hands out the same
// repositories bound to the transaction instead of the pool.
type Store interface {
	Users() Users
	Todos() Todos
	TodoStatuses() TodoStatuses

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error, the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases the connection pool.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
// Nested transactions are not supported.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id idx.ID[domain.User]) (domain.User, error)

	// GetUserByUsername is used during login and registration checks.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new user and returns the stored row. The email
	// column is initialised from the username. ErrAlreadyExists when the
	// username is taken.
	CreateUser(ctx context.Context, u domain.NewUser) (domain.User, error)
}

type Todos interface {
	// GetTodo returns a todo with its status joined in.
	GetTodo(ctx context.Context, id idx.ID[domain.Todo]) (domain.Todo, error)

	// FindTodos lists todos oldest first, optionally restricted to one
	// status. An empty result is not an error.
	FindTodos(ctx context.Context, status *domain.TodoStatus) ([]domain.Todo, error)

	// CreateTodo inserts with the default status and returns the stored row.
	CreateTodo(ctx context.Context, t domain.NewTodo) (domain.Todo, error)

	// UpdateTodo applies the non-nil fields and bumps updated_at.
	UpdateTodo(ctx context.Context, t domain.UpdateTodo) (domain.Todo, error)

	// UpsertTodo inserts or fully replaces the todo keyed by id.
	UpsertTodo(ctx context.Context, t domain.UpsertTodo) (domain.Todo, error)

	// DeleteTodo removes the todo and returns what was deleted.
	DeleteTodo(ctx context.Context, id idx.ID[domain.Todo]) (domain.Todo, error)
}

type TodoStatuses interface {
	// GetByCode resolves a status code such as "open".
	GetByCode(ctx context.Context, code string) (domain.TodoStatus, error)

	// List returns every status ordered by code.
	List(ctx context.Context) ([]domain.TodoStatus, error)
}

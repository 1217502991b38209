package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/store"
	"github.com/aussiebroadwan/todo/internal/todo/store/drivers/sqlite"
	"github.com/aussiebroadwan/todo/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())
	return s
}

func ptr[T any](v T) *T { return &v }

func TestMigrationsSeedStatuses(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	statuses, err := s.TodoStatuses().List(ctx)
	require.NoError(t, err)
	require.Len(t, statuses, 3)

	codes := make([]string, 0, len(statuses))
	for _, st := range statuses {
		codes = append(codes, st.Code)
	}
	require.ElementsMatch(t, []string{domain.StatusOpen, domain.StatusInProgress, domain.StatusDone}, codes)

	_, err = s.TodoStatuses().GetByCode(ctx, "archived")
	require.ErrorIs(t, err, store.ErrNotFound)

	// Running again is a no-op.
	require.NoError(t, s.ApplyMigrations())
}

func TestUsers(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	nu := domain.NewUser{
		ID:           idx.New[domain.User](),
		Username:     "alice@example.com",
		PasswordHash: "hash",
		Fullname:     "Alice",
	}
	u, err := s.Users().CreateUser(ctx, nu)
	require.NoError(t, err)
	require.Equal(t, nu.ID, u.ID)
	require.Equal(t, "alice@example.com", u.Email)
	require.False(t, u.CreatedAt.IsZero())

	got, err := s.Users().GetUserByUsername(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, u, got)

	nu.ID = idx.New[domain.User]()
	_, err = s.Users().CreateUser(ctx, nu)
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	_, err = s.Users().GetUserByID(ctx, idx.New[domain.User]())
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestTodosLifecycle(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	repo := s.Todos()

	first, err := repo.CreateTodo(ctx, domain.NewTodo{ID: idx.New[domain.Todo](), Title: "first", Description: "d1"})
	require.NoError(t, err)
	require.Equal(t, domain.StatusOpen, first.Status.Code)
	require.Equal(t, "Open", first.Status.Name)

	second, err := repo.CreateTodo(ctx, domain.NewTodo{ID: idx.New[domain.Todo](), Title: "second"})
	require.NoError(t, err)

	done, err := s.TodoStatuses().GetByCode(ctx, domain.StatusDone)
	require.NoError(t, err)

	t.Run("update keeps unset fields", func(t *testing.T) {
		updated, err := repo.UpdateTodo(ctx, domain.UpdateTodo{ID: first.ID, Status: &done})
		require.NoError(t, err)
		require.Equal(t, "first", updated.Title)
		require.Equal(t, "d1", updated.Description)
		require.Equal(t, domain.StatusDone, updated.Status.Code)
		require.False(t, updated.UpdatedAt.Before(first.UpdatedAt))

		updated, err = repo.UpdateTodo(ctx, domain.UpdateTodo{ID: first.ID, Title: ptr("renamed")})
		require.NoError(t, err)
		require.Equal(t, "renamed", updated.Title)
		require.Equal(t, domain.StatusDone, updated.Status.Code)
	})

	t.Run("update missing", func(t *testing.T) {
		_, err := repo.UpdateTodo(ctx, domain.UpdateTodo{ID: idx.New[domain.Todo](), Title: ptr("x")})
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("find filters and orders", func(t *testing.T) {
		all, err := repo.FindTodos(ctx, nil)
		require.NoError(t, err)
		require.Len(t, all, 2)
		require.Equal(t, first.ID, all[0].ID)
		require.Equal(t, second.ID, all[1].ID)

		onlyDone, err := repo.FindTodos(ctx, &done)
		require.NoError(t, err)
		require.Len(t, onlyDone, 1)
		require.Equal(t, first.ID, onlyDone[0].ID)

		inProgress, err := s.TodoStatuses().GetByCode(ctx, domain.StatusInProgress)
		require.NoError(t, err)
		none, err := repo.FindTodos(ctx, &inProgress)
		require.NoError(t, err)
		require.NotNil(t, none)
		require.Empty(t, none)
	})

	t.Run("upsert inserts then replaces", func(t *testing.T) {
		id := idx.New[domain.Todo]()
		created, err := repo.UpsertTodo(ctx, domain.UpsertTodo{ID: id, Title: "u", Description: "v", Status: done})
		require.NoError(t, err)
		require.Equal(t, domain.StatusDone, created.Status.Code)

		open, err := s.TodoStatuses().GetByCode(ctx, domain.StatusOpen)
		require.NoError(t, err)
		replaced, err := repo.UpsertTodo(ctx, domain.UpsertTodo{ID: id, Title: "u2", Description: "", Status: open})
		require.NoError(t, err)
		require.Equal(t, "u2", replaced.Title)
		require.Empty(t, replaced.Description)
		require.Equal(t, domain.StatusOpen, replaced.Status.Code)
		require.Equal(t, created.CreatedAt, replaced.CreatedAt)
	})

	t.Run("delete returns removed row", func(t *testing.T) {
		deleted, err := repo.DeleteTodo(ctx, second.ID)
		require.NoError(t, err)
		require.Equal(t, second.ID, deleted.ID)

		_, err = repo.GetTodo(ctx, second.ID)
		require.ErrorIs(t, err, store.ErrNotFound)

		_, err = repo.DeleteTodo(ctx, second.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestWithTxRollsBack(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	id := idx.New[domain.Todo]()

	err := s.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Todos().CreateTodo(ctx, domain.NewTodo{ID: id, Title: "tmp"}); err != nil {
			return err
		}
		return store.ErrNotFound
	})
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Todos().GetTodo(ctx, id)
	require.ErrorIs(t, err, store.ErrNotFound)

	err = s.WithTx(ctx, func(tx store.Tx) error {
		require.ErrorIs(t, tx.WithTx(ctx, func(store.Tx) error { return nil }), sql.ErrTxDone)
		_, err := tx.Todos().CreateTodo(ctx, domain.NewTodo{ID: id, Title: "kept"})
		return err
	})
	require.NoError(t, err)

	got, err := s.Todos().GetTodo(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "kept", got.Title)
}

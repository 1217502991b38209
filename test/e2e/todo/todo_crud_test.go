package todo_test

import (
	"testing"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/pkg/idx"
	"github.com/aussiebroadwan/todo/pkg/todosdk"
	"github.com/stretchr/testify/require"
)

func TestTodoLifecycle(t *testing.T) {
	client := setupTodoServer(t)
	session := registerAndLogin(t, client)
	ctx := t.Context()

	todos, err := session.FindTodos(ctx, "")
	require.NoError(t, err)
	require.Empty(t, todos)

	created, err := session.CreateTodo(ctx, todosdk.CreateTodoRequest{
		Title:       "Write tests",
		Description: "Cover the todo lifecycle end to end",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, domain.StatusOpen, created.Status.Code)

	got, err := session.GetTodo(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.Title, got.Title)
	require.Equal(t, created.Description, got.Description)
	require.Equal(t, domain.StatusOpen, got.Status.Code)

	t.Run("patch keeps unset fields", func(t *testing.T) {
		updated, err := session.UpdateTodo(ctx, created.ID, todosdk.UpdateTodoRequest{Title: ptr("Write more tests")})
		require.NoError(t, err)
		require.Equal(t, "Write more tests", updated.Title)
		require.Equal(t, created.Description, updated.Description)
		require.Equal(t, domain.StatusOpen, updated.Status.Code)
		require.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
	})

	t.Run("patch status", func(t *testing.T) {
		updated, err := session.UpdateTodo(ctx, created.ID, todosdk.UpdateTodoRequest{StatusCode: ptr(domain.StatusInProgress)})
		require.NoError(t, err)
		require.Equal(t, domain.StatusInProgress, updated.Status.Code)
		require.Equal(t, "In Progress", updated.Status.Name)
	})

	t.Run("patch with unknown status", func(t *testing.T) {
		_, err := session.UpdateTodo(ctx, created.ID, todosdk.UpdateTodoRequest{StatusCode: ptr("archived")})
		requireAPIError(t, err, "`statusCode` is invalid.")
	})

	t.Run("put replaces every field", func(t *testing.T) {
		replaced, err := session.UpsertTodo(ctx, created.ID, todosdk.UpsertTodoRequest{
			Title:       "Ship it",
			Description: "Everything replaced",
			StatusCode:  domain.StatusDone,
		})
		require.NoError(t, err)
		require.Equal(t, created.ID, replaced.ID)
		require.Equal(t, "Ship it", replaced.Title)
		require.Equal(t, "Everything replaced", replaced.Description)
		require.Equal(t, domain.StatusDone, replaced.Status.Code)
		require.True(t, replaced.CreatedAt.Equal(created.CreatedAt))
	})

	t.Run("put creates missing todo", func(t *testing.T) {
		id := idx.New[domain.Todo]().String()
		upserted, err := session.UpsertTodo(ctx, id, todosdk.UpsertTodoRequest{
			Title:       "Brand new",
			Description: "Created by PUT",
			StatusCode:  domain.StatusOpen,
		})
		require.NoError(t, err)
		require.Equal(t, id, upserted.ID)
	})

	t.Run("filter by status", func(t *testing.T) {
		done, err := session.FindTodos(ctx, domain.StatusDone)
		require.NoError(t, err)
		require.Len(t, done, 1)
		require.Equal(t, created.ID, done[0].ID)

		all, err := session.FindTodos(ctx, "")
		require.NoError(t, err)
		require.Len(t, all, 2)
		require.Equal(t, created.ID, all[0].ID)
	})

	t.Run("delete once", func(t *testing.T) {
		deleted, err := session.DeleteTodo(ctx, created.ID)
		require.NoError(t, err)
		require.Equal(t, "Ship it", deleted.Title)

		_, err = session.DeleteTodo(ctx, created.ID)
		requireAPIError(t, err, "data not found")

		_, err = session.GetTodo(ctx, created.ID)
		requireAPIError(t, err, "data not found")
	})
}

func TestListStatuses(t *testing.T) {
	client := setupTodoServer(t)
	session := registerAndLogin(t, client)

	statuses, err := session.ListStatuses(t.Context())
	require.NoError(t, err)
	require.Equal(t, []todosdk.TodoStatus{
		{Code: domain.StatusDone, Name: "Done"},
		{Code: domain.StatusInProgress, Name: "In Progress"},
		{Code: domain.StatusOpen, Name: "Open"},
	}, statuses)
}

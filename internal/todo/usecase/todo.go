package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/store"
	"github.com/aussiebroadwan/todo/pkg/idx"
	"github.com/aussiebroadwan/todo/pkg/slogx"
)

type TodoUseCase struct {
	Store store.Store
}

type CreateTodoInput struct {
	Title       string
	Description string
}

// UpdateTodoInput is a partial update; nil fields are left alone.
type UpdateTodoInput struct {
	Title       *string
	Description *string
	StatusCode  *string
}

type UpsertTodoInput struct {
	Title       string
	Description string
	StatusCode  string
}

func (u *TodoUseCase) GetTodo(ctx context.Context, id idx.ID[domain.Todo]) (domain.Todo, error) {
	t, err := u.Store.Todos().GetTodo(ctx, id)
	return t, mapTodoNotFound(err)
}

// FindTodos lists todos, restricted to statusCode when it is not empty.
// No matches is an empty slice, not an error.
func (u *TodoUseCase) FindTodos(ctx context.Context, statusCode string) ([]domain.Todo, error) {
	var filter *domain.TodoStatus
	if statusCode != "" {
		status, err := resolveStatus(ctx, u.Store, statusCode)
		if err != nil {
			return nil, err
		}
		filter = &status
	}
	return u.Store.Todos().FindTodos(ctx, filter)
}

func (u *TodoUseCase) CreateTodo(ctx context.Context, in CreateTodoInput) (domain.Todo, error) {
	var created domain.Todo
	err := u.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		created, err = tx.Todos().CreateTodo(ctx, domain.NewTodo{
			ID:          idx.New[domain.Todo](),
			Title:       in.Title,
			Description: in.Description,
		})
		return err
	})
	if err != nil {
		return domain.Todo{}, err
	}

	slogx.FromContext(ctx).Debug("todo created", slog.String("todo_id", created.ID.String()))
	return created, nil
}

func (u *TodoUseCase) UpdateTodo(ctx context.Context, id idx.ID[domain.Todo], in UpdateTodoInput) (domain.Todo, error) {
	upd := domain.UpdateTodo{ID: id, Title: in.Title, Description: in.Description}

	var updated domain.Todo
	err := u.Store.WithTx(ctx, func(tx store.Tx) error {
		if in.StatusCode != nil {
			status, err := resolveStatus(ctx, tx, *in.StatusCode)
			if err != nil {
				return err
			}
			upd.Status = &status
		}
		if upd.IsEmpty() {
			return newError(ErrNothingToUpdate, "nothing to update")
		}

		var err error
		updated, err = tx.Todos().UpdateTodo(ctx, upd)
		return mapTodoNotFound(err)
	})
	if err != nil {
		return domain.Todo{}, err
	}
	return updated, nil
}

// UpsertTodo replaces every field of the todo, creating it under id when it
// does not exist yet.
func (u *TodoUseCase) UpsertTodo(ctx context.Context, id idx.ID[domain.Todo], in UpsertTodoInput) (domain.Todo, error) {
	var upserted domain.Todo
	err := u.Store.WithTx(ctx, func(tx store.Tx) error {
		status, err := resolveStatus(ctx, tx, in.StatusCode)
		if err != nil {
			return err
		}
		upserted, err = tx.Todos().UpsertTodo(ctx, domain.UpsertTodo{
			ID:          id,
			Title:       in.Title,
			Description: in.Description,
			Status:      status,
		})
		return err
	})
	if err != nil {
		return domain.Todo{}, err
	}
	return upserted, nil
}

// DeleteTodo removes the todo and returns it. A second delete of the same id
// reports ErrTodoNotFound.
func (u *TodoUseCase) DeleteTodo(ctx context.Context, id idx.ID[domain.Todo]) (domain.Todo, error) {
	var deleted domain.Todo
	err := u.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		deleted, err = tx.Todos().DeleteTodo(ctx, id)
		return mapTodoNotFound(err)
	})
	if err != nil {
		return domain.Todo{}, err
	}

	slogx.FromContext(ctx).Debug("todo deleted", slog.String("todo_id", deleted.ID.String()))
	return deleted, nil
}

func (u *TodoUseCase) ListStatuses(ctx context.Context) ([]domain.TodoStatus, error) {
	return u.Store.TodoStatuses().List(ctx)
}

func resolveStatus(ctx context.Context, s store.Store, code string) (domain.TodoStatus, error) {
	status, err := s.TodoStatuses().GetByCode(ctx, code)
	if errors.Is(err, store.ErrNotFound) {
		return domain.TodoStatus{}, newError(ErrInvalidStatusCode, "`statusCode` is invalid.")
	}
	return status, err
}

func mapTodoNotFound(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return newError(ErrTodoNotFound, dataNotFound)
	}
	return err
}

package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/store"
	"github.com/aussiebroadwan/todo/pkg/idx"
)

type todosRepo struct {
	db dbtx
}

const selectTodo = `
SELECT t.id, t.title, t.description, s.id, s.code, s.name, t.created_at, t.updated_at
FROM todos t
INNER JOIN todo_statuses s ON s.id = t.status_id`

func (r *todosRepo) GetTodo(ctx context.Context, id idx.ID[domain.Todo]) (domain.Todo, error) {
	t, err := scanTodo(r.db.QueryRowContext(ctx, selectTodo+` WHERE t.id = $1`, id))
	if err != nil {
		return domain.Todo{}, mapNotFound(err)
	}
	return t, nil
}

func (r *todosRepo) FindTodos(ctx context.Context, status *domain.TodoStatus) ([]domain.Todo, error) {
	query := selectTodo + ` WHERE t.status_id IN (SELECT id FROM todo_statuses)`
	var args []any
	if status != nil {
		query = selectTodo + ` WHERE t.status_id = $1`
		args = append(args, status.ID)
	}

	rows, err := r.db.QueryContext(ctx, query+` ORDER BY t.created_at ASC, t.id ASC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Todo{}
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *todosRepo) CreateTodo(ctx context.Context, t domain.NewTodo) (domain.Todo, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO todos (id, title, description) VALUES ($1, $2, $3)`,
		t.ID, t.Title, t.Description,
	)
	if err != nil {
		return domain.Todo{}, mapConstraint(err)
	}
	return r.GetTodo(ctx, t.ID)
}

func (r *todosRepo) UpdateTodo(ctx context.Context, t domain.UpdateTodo) (domain.Todo, error) {
	var statusID any
	if t.Status != nil {
		statusID = t.Status.ID
	}

	res, err := r.db.ExecContext(ctx, `
UPDATE todos SET
    title       = coalesce($1, title),
    description = coalesce($2, description),
    status_id   = coalesce($3, status_id),
    updated_at  = current_timestamp
WHERE id = $4`,
		t.Title, t.Description, statusID, t.ID,
	)
	if err != nil {
		return domain.Todo{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return domain.Todo{}, err
	}
	if n == 0 {
		return domain.Todo{}, store.ErrNotFound
	}
	return r.GetTodo(ctx, t.ID)
}

func (r *todosRepo) UpsertTodo(ctx context.Context, t domain.UpsertTodo) (domain.Todo, error) {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO todos (id, title, description, status_id)
VALUES ($1, $2, $3, $4)
ON CONFLICT ON CONSTRAINT pk_todos_id DO UPDATE SET
    title       = excluded.title,
    description = excluded.description,
    status_id   = excluded.status_id,
    updated_at  = current_timestamp`,
		t.ID, t.Title, t.Description, t.Status.ID,
	)
	if err != nil {
		return domain.Todo{}, err
	}
	return r.GetTodo(ctx, t.ID)
}

func (r *todosRepo) DeleteTodo(ctx context.Context, id idx.ID[domain.Todo]) (domain.Todo, error) {
	existing, err := r.GetTodo(ctx, id)
	if err != nil {
		return domain.Todo{}, err
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE id = $1`, id); err != nil {
		return domain.Todo{}, err
	}
	return existing, nil
}

type todoRow struct {
	ID          string
	Title       string
	Description string
	Status      statusRow
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (r todoRow) toDomain() (domain.Todo, error) {
	id, err := idx.Parse[domain.Todo](r.ID)
	if err != nil {
		return domain.Todo{}, fmt.Errorf("todos.id: %w", err)
	}
	status, err := r.Status.toDomain()
	if err != nil {
		return domain.Todo{}, err
	}
	return domain.Todo{
		ID:          id,
		Title:       r.Title,
		Description: r.Description,
		Status:      status,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}, nil
}

func scanTodo(row rowScanner) (domain.Todo, error) {
	var r todoRow
	err := row.Scan(
		&r.ID, &r.Title, &r.Description,
		&r.Status.ID, &r.Status.Code, &r.Status.Name,
		&r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return domain.Todo{}, err
	}
	return r.toDomain()
}

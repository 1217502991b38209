package sqlite

import (
	"context"
	"fmt"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/pkg/idx"
)

type statusesRepo struct {
	db dbtx
}

func (r *statusesRepo) GetByCode(ctx context.Context, code string) (domain.TodoStatus, error) {
	s, err := scanStatus(r.db.QueryRowContext(ctx,
		`SELECT id, code, name FROM todo_statuses WHERE code = ?`, code))
	if err != nil {
		return domain.TodoStatus{}, mapNotFound(err)
	}
	return s, nil
}

func (r *statusesRepo) List(ctx context.Context) ([]domain.TodoStatus, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, code, name FROM todo_statuses ORDER BY code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.TodoStatus
	for rows.Next() {
		s, err := scanStatus(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

type statusRow struct {
	ID   string
	Code string
	Name string
}

func (r statusRow) toDomain() (domain.TodoStatus, error) {
	id, err := idx.Parse[domain.TodoStatus](r.ID)
	if err != nil {
		return domain.TodoStatus{}, fmt.Errorf("todo_statuses.id: %w", err)
	}
	return domain.TodoStatus{ID: id, Code: r.Code, Name: r.Name}, nil
}

func scanStatus(row rowScanner) (domain.TodoStatus, error) {
	var r statusRow
	if err := row.Scan(&r.ID, &r.Code, &r.Name); err != nil {
		return domain.TodoStatus{}, err
	}
	return r.toDomain()
}

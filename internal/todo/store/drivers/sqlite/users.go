package sqlite

import (
	"context"
	"fmt"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/pkg/idx"
)

type usersRepo struct {
	db dbtx
}

const selectUser = `
SELECT id, username, email, password_hash, fullname, created_at, updated_at
FROM users`

func (r *usersRepo) GetUserByID(ctx context.Context, id idx.ID[domain.User]) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, selectUser+` WHERE id = ?`, id)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, selectUser+` WHERE username = ?`, username)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.NewUser) (domain.User, error) {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO users (id, username, email, password_hash, fullname)
VALUES (?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.Username, u.PasswordHash, u.Fullname,
	)
	if err != nil {
		return domain.User{}, mapConstraint(err)
	}
	return r.GetUserByID(ctx, u.ID)
}

type rowScanner interface {
	Scan(dest ...any) error
}

type userRow struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Fullname     string
	CreatedAt    timestamp
	UpdatedAt    timestamp
}

func (r userRow) toDomain() (domain.User, error) {
	id, err := idx.Parse[domain.User](r.ID)
	if err != nil {
		return domain.User{}, fmt.Errorf("users.id: %w", err)
	}
	return domain.User{
		ID:           id,
		Username:     r.Username,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Fullname:     r.Fullname,
		CreatedAt:    r.CreatedAt.Time,
		UpdatedAt:    r.UpdatedAt.Time,
	}, nil
}

func scanUser(row rowScanner) (domain.User, error) {
	var r userRow
	if err := row.Scan(&r.ID, &r.Username, &r.Email, &r.PasswordHash, &r.Fullname, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return domain.User{}, err
	}
	return r.toDomain()
}

package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/pkg/idx"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, username, email, password_hash, fullname, created_at, updated_at`

func (r *usersRepo) GetUserByID(ctx context.Context, id idx.ID[domain.User]) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.NewUser) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
INSERT INTO users (id, username, email, password_hash, fullname)
VALUES ($1, $2, $2, $3, $4)
RETURNING `+userColumns,
		u.ID, u.Username, u.PasswordHash, u.Fullname,
	)
	created, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapConstraint(err)
	}
	return created, nil
}

type userRow struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Fullname     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
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
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}, nil
}

func scanUser(row rowScanner) (domain.User, error) {
	var r userRow
	if err := row.Scan(&r.ID, &r.Username, &r.Email, &r.PasswordHash, &r.Fullname, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return domain.User{}, err
	}
	return r.toDomain()
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/store"
	"github.com/aussiebroadwan/todo/pkg/cryptox"
	"github.com/aussiebroadwan/todo/pkg/idx"
	"github.com/aussiebroadwan/todo/pkg/jwtx"
	"github.com/aussiebroadwan/todo/pkg/slogx"
)

type UserUseCase struct {
	Store    store.Store
	Signer   jwtx.Signer
	Issuer   string
	TokenTTL time.Duration

	// Now is overridable in tests.
	Now func() time.Time
}

type CreateUserInput struct {
	Username string
	Password string
	Fullname string
}

// Session is the outcome of a successful login.
type Session struct {
	User      domain.User
	Token     string
	ExpiresAt time.Time
}

func (u *UserUseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}

// CreateUser registers a new account. The username is checked up front and
// again by the unique constraint, so a concurrent registration still fails
// with ErrUserAlreadyExists.
func (u *UserUseCase) CreateUser(ctx context.Context, in CreateUserInput) (domain.User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return domain.User{}, newError(ErrEmptyUsername, "username is empty")
	}

	hash, err := cryptox.HashPassword(in.Password)
	if errors.Is(err, cryptox.ErrPasswordTooLong) {
		return domain.User{}, newError(ErrPasswordTooLong, "password must be at most %d bytes", cryptox.MaxPasswordBytes)
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	var created domain.User
	err = u.Store.WithTx(ctx, func(tx store.Tx) error {
		_, err := tx.Users().GetUserByUsername(ctx, username)
		switch {
		case err == nil:
			return newError(ErrUserAlreadyExists, "username %s already exists", username)
		case !errors.Is(err, store.ErrNotFound):
			return err
		}

		created, err = tx.Users().CreateUser(ctx, domain.NewUser{
			ID:           idx.New[domain.User](),
			Username:     username,
			PasswordHash: hash,
			Fullname:     in.Fullname,
		})
		if errors.Is(err, store.ErrAlreadyExists) {
			return newError(ErrUserAlreadyExists, "username %s already exists", username)
		}
		return err
	})
	if err != nil {
		return domain.User{}, err
	}

	slogx.FromContext(ctx).Info("user created", slog.String("user_id", created.ID.String()))
	return created, nil
}

// LoginUser checks the credentials and issues a signed session token.
func (u *UserUseCase) LoginUser(ctx context.Context, username, password string) (Session, error) {
	log := slogx.FromContext(ctx)

	user, err := u.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Session{}, newError(ErrUserNotRegistered, "username %s is not registered", username)
		}
		return Session{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Error("verify password failed", slog.String("user_id", user.ID.String()), slog.Any("err", err))
		}
		return Session{}, newError(ErrBadPassword, "bad password.")
	}

	ttl := u.TokenTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}
	claims := jwtx.NewSessionClaims(user.ID.String(), user.Username, u.Issuer, ttl, u.now())
	token, err := u.Signer.Sign(claims)
	if err != nil {
		return Session{}, fmt.Errorf("sign token: %w", err)
	}

	log.Info("user logged in", slog.String("user_id", user.ID.String()))
	return Session{User: user, Token: token, ExpiresAt: claims.ExpiresAt.Time}, nil
}

func (u *UserUseCase) GetUser(ctx context.Context, id idx.ID[domain.User]) (domain.User, error) {
	user, err := u.Store.Users().GetUserByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, newError(ErrUserNotFound, dataNotFound)
	}
	return user, err
}

// GetUserByUsername returns ErrUserNotFound when nobody has that username.
func (u *UserUseCase) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	if strings.TrimSpace(username) == "" {
		return domain.User{}, newError(ErrEmptyUsername, "username is empty")
	}
	user, err := u.Store.Users().GetUserByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, newError(ErrUserNotFound, "user not found.")
	}
	return user, err
}

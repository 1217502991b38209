package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrUserNotRegistered = errors.New("user not registered")
	ErrUserNotFound      = errors.New("user not found")
	ErrEmptyUsername     = errors.New("empty username")
	ErrBadPassword       = errors.New("bad password")
	ErrPasswordTooLong   = errors.New("password too long")
	ErrTodoNotFound      = errors.New("todo not found")
	ErrInvalidStatusCode = errors.New("invalid status code")
	ErrNothingToUpdate   = errors.New("nothing to update")
)

// Error carries the message shown to API clients while still matching its
// sentinel with errors.Is.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }
func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

const dataNotFound = "data not found"

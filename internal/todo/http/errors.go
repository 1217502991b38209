package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/usecase"
	"github.com/aussiebroadwan/todo/pkg/httpx"
	"github.com/aussiebroadwan/todo/pkg/idx"
	"github.com/aussiebroadwan/todo/pkg/slogx"
	"github.com/aussiebroadwan/todo/pkg/todosdk"
)

const maxBodyBytes = 1 << 20

// badRequestError is answered with 400 and its message verbatim.
type badRequestError struct {
	msg string
}

func (e *badRequestError) Error() string { return e.msg }

func badRequest(format string, args ...any) error {
	return &badRequestError{msg: fmt.Sprintf(format, args...)}
}

type validatable interface {
	Validate() error
}

// decodeRequest reads a JSON body into dst and runs its validation rules.
func decodeRequest(w http.ResponseWriter, r *http.Request, dst validatable) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return badRequest("request body is empty")
		}
		return badRequest("%s", err.Error())
	}
	return dst.Validate()
}

func parseID[T any](r *http.Request) (idx.ID[T], error) {
	raw := r.PathValue("id")
	id, err := idx.Parse[T](raw)
	if err != nil {
		return "", badRequest("invalid id(%s).", raw)
	}
	return id, nil
}

func parseTodoID(r *http.Request) (idx.ID[domain.Todo], error) { return parseID[domain.Todo](r) }
func parseUserID(r *http.Request) (idx.ID[domain.User], error) { return parseID[domain.User](r) }

// writeError maps an error from any layer onto the response envelope.
// Domain failures keep HTTP 200 with result=false; existing clients rely on it.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		badReq  *badRequestError
		invalid *todosdk.ValidationError
		ucErr   *usecase.Error
	)

	switch {
	case errors.As(err, &badReq):
		httpx.WriteFailure(w, http.StatusBadRequest, badReq.msg)
	case errors.As(err, &invalid):
		httpx.WriteFailure(w, http.StatusBadRequest, invalid.Error())
	case errors.As(err, &ucErr):
		httpx.WriteFailure(w, http.StatusOK, httpx.ErrorMessage(ucErr.Msg))
	case errors.Is(err, context.DeadlineExceeded):
		httpx.WriteFailure(w, http.StatusServiceUnavailable, httpx.TimeoutMessage)
	case errors.Is(err, context.Canceled):
		// Client went away; nobody is reading the response.
		slogx.FromContext(r.Context()).Debug("request cancelled", "err", err)
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		httpx.WriteFailure(w, http.StatusOK, httpx.ErrorMessage(err.Error()))
	}
}

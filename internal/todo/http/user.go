package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/todo/internal/todo/usecase"
	"github.com/aussiebroadwan/todo/pkg/httpx"
	"github.com/aussiebroadwan/todo/pkg/todosdk"
)

type UserHandler struct {
	UserUseCase *usecase.UserUseCase
}

// HandleGet godoc
//
//	@Summary	Get a user by id
//	@Tags		Users
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"User ULID"
//	@Success	200	{object}	todosdk.Response[todosdk.UserPayload]
//	@Failure	400	{object}	httpx.Envelope	"Malformed id"
//	@Failure	401	{object}	httpx.Envelope	"Missing or expired jwt"
//	@Router		/v1/user/{id} [get].
func (h *UserHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := parseUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.UserUseCase.GetUser(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, msgSuccess, todosdk.UserPayload{UserView: toUserView(user)})
}

// HandleFind godoc
//
//	@Summary		Look up a user by username
//	@Description	An unknown username is not an error: the envelope is successful with a null payload.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			username	query		string	true	"Username (email)"
//	@Success		200			{object}	todosdk.Response[todosdk.UserPayload]
//	@Failure		401			{object}	httpx.Envelope	"Missing or expired jwt"
//	@Router			/v1/user [get].
func (h *UserHandler) HandleFind(w http.ResponseWriter, r *http.Request) {
	user, err := h.UserUseCase.GetUserByUsername(r.Context(), r.URL.Query().Get("username"))
	if err != nil {
		var ucErr *usecase.Error
		if errors.Is(err, usecase.ErrUserNotFound) && errors.As(err, &ucErr) {
			httpx.WriteSuccess(w, ucErr.Msg, nil)
			return
		}
		writeError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, msgSuccess, todosdk.UserPayload{UserView: toUserView(user)})
}

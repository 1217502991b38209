package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/usecase"
	"github.com/aussiebroadwan/todo/pkg/httpx"
	"github.com/aussiebroadwan/todo/pkg/todosdk"
)

// SessionCookie is the cookie login sets and the authn middleware reads when
// no Authorization header is present.
const SessionCookie = "token"

type AuthHandler struct {
	UserUseCase *usecase.UserUseCase

	CookieMaxAge time.Duration
	CookieSecure bool
}

// HandleCreate godoc
//
//	@Summary		Register a user
//	@Description	Creates an account. The username must be an email address and becomes the contact email.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		todosdk.CreateUserRequest	true	"Account details"
//	@Success		200		{object}	todosdk.Response[todosdk.UserPayload]
//	@Failure		400		{object}	httpx.Envelope	"Validation failed"
//	@Router			/v1/auth/create [post].
func (h *AuthHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req todosdk.CreateUserRequest
	if err := decodeRequest(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.UserUseCase.CreateUser(r.Context(), usecase.CreateUserInput{
		Username: req.Username,
		Password: req.Password,
		Fullname: req.Fullname,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteSuccess(w, msgSuccess, todosdk.UserPayload{UserView: toUserView(user)})
}

// HandleLogin godoc
//
//	@Summary		Log in
//	@Description	Verifies the credentials and returns a session JWT, also set as the HttpOnly "token" cookie.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		todosdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	todosdk.Response[todosdk.LoginPayload]
//	@Failure		400		{object}	httpx.Envelope	"Validation failed"
//	@Router			/v1/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req todosdk.LoginRequest
	if err := decodeRequest(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	sess, err := h.UserUseCase.LoginUser(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    sess.Token,
		Path:     "/",
		MaxAge:   int(h.CookieMaxAge / time.Second),
		HttpOnly: true,
		Secure:   h.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	httpx.WriteSuccess(w, msgLoginSuccess, todosdk.LoginPayload{
		UserView: toUserView(sess.User),
		Token:    sess.Token,
	})
}

const (
	msgSuccess      = "success"
	msgLoginSuccess = "success."
)

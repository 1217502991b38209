package todosdk_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/todo/pkg/todosdk"
	"github.com/stretchr/testify/require"
)

func writeEnvelope(w http.ResponseWriter, code int, result bool, msg string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]any{"result": result, "message": msg, "data": data})
}

func TestClientLoginAndSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req todosdk.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Password != "Passw0rd!" {
			writeEnvelope(w, http.StatusOK, false, "error(bad password.).", nil)
			return
		}
		writeEnvelope(w, http.StatusOK, true, "success.", map[string]any{
			"userView": map[string]any{"id": "01J8ZK0000000000000000US01", "username": req.Username},
			"token":    "tok",
		})
	})
	mux.HandleFunc("GET /v1/todo/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			writeEnvelope(w, http.StatusUnauthorized, false, "Missing or expired jwt(missing bearer token).", nil)
			return
		}
		writeEnvelope(w, http.StatusOK, true, "success", map[string]any{
			"todoView": map[string]any{"id": r.PathValue("id"), "title": "t", "status": map[string]any{"code": "open", "name": "Open"}},
		})
	})
	mux.HandleFunc("GET /v1/user", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, true, "user not found.", nil)
	})
	mux.HandleFunc("GET /v1/hc", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := todosdk.NewClient(srv.URL + "/")
	ctx := context.Background()

	require.NoError(t, client.Health(ctx))

	_, err := client.Login(ctx, todosdk.LoginRequest{Username: "a@example.com", Password: "wrong"})
	var apiErr *todosdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusOK, apiErr.StatusCode)
	require.True(t, apiErr.Contains("bad password"))

	session, err := client.Login(ctx, todosdk.LoginRequest{Username: "a@example.com", Password: "Passw0rd!"})
	require.NoError(t, err)
	require.Equal(t, "tok", session.Token())
	require.Equal(t, "a@example.com", session.User().Username)

	todo, err := session.GetTodo(ctx, "01J8ZK0000000000000000TD01")
	require.NoError(t, err)
	require.Equal(t, "01J8ZK0000000000000000TD01", todo.ID)
	require.Equal(t, todosdk.StatusOpen, todo.Status.Code)

	_, err = client.Session("bad").GetTodo(ctx, "x")
	require.ErrorAs(t, err, &apiErr)
	require.True(t, apiErr.IsUnauthorized())
	require.True(t, errors.Is(err, &todosdk.APIError{
		StatusCode: http.StatusUnauthorized,
		Message:    "Missing or expired jwt(missing bearer token).",
	}))

	u, err := session.GetUserByUsername(ctx, "ghost@example.com")
	require.NoError(t, err)
	require.Nil(t, u)
}

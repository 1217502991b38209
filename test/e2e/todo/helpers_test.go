package todo_test

import (
	"errors"
	"fmt"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aussiebroadwan/todo/internal/testutil"
	"github.com/aussiebroadwan/todo/internal/todo/app"
	"github.com/aussiebroadwan/todo/pkg/httpx"
	"github.com/aussiebroadwan/todo/pkg/todosdk"
	"github.com/stretchr/testify/require"
)

/*
 * End-to-end tests run the whole service in process against a Postgres
 * container and talk to it through the public SDK only.
 */

const (
	jwtSecret    = "e2e-secret-0123456789abcdef0123456789"
	testPassword = "Sup3r$ecret"
	testFullname = "Test User"
)

var userSeq atomic.Int64

// setupTodoServer starts Postgres, boots the application on top of it and
// returns an SDK client pointed at the running server.
func setupTodoServer(t *testing.T) *todosdk.Client {
	t.Helper()

	dsn := testutil.StartPostgres(t)

	limits := httpx.DefaultRateLimitProfiles()
	unlimited := httpx.RateLimitConfig{RequestsPerWindow: 100000, Window: time.Minute, Burst: 100000}
	limits.Strict, limits.Moderate, limits.Lenient = unlimited, unlimited, unlimited

	application, err := app.New(app.Config{
		Env:                 "test",
		DatabaseURL:         dsn,
		JWTSecret:           jwtSecret,
		JWTIssuer:           "todo",
		JWTDuration:         time.Hour,
		JWTMaxAge:           time.Hour,
		AllowedOrigins:      []string{"http://localhost:3000"},
		Port:                8080,
		LogLevel:            "warn",
		LogFormat:           "json",
		RequestTimeout:      10 * time.Second,
		ShutdownGracePeriod: time.Second,
		RateLimits:          limits,
	})
	require.NoError(t, err)

	srv := httptest.NewServer(application.Handler())
	t.Cleanup(func() {
		srv.Close()
		_ = application.Shutdown()
	})

	return todosdk.NewClient(srv.URL)
}

func uniqueUsername() string {
	return fmt.Sprintf("user%d-%d@example.com", time.Now().UnixNano(), userSeq.Add(1))
}

// registerAndLogin creates a fresh account and returns its session.
func registerAndLogin(t *testing.T, client *todosdk.Client) *todosdk.Session {
	t.Helper()

	username := uniqueUsername()
	_, err := client.CreateUser(t.Context(), todosdk.CreateUserRequest{
		Username: username,
		Password: testPassword,
		Fullname: testFullname,
	})
	require.NoError(t, err)

	session, err := client.Login(t.Context(), todosdk.LoginRequest{Username: username, Password: testPassword})
	require.NoError(t, err)
	require.NotEmpty(t, session.Token())
	return session
}

// requireAPIError asserts err is an envelope failure whose message contains msg.
func requireAPIError(t *testing.T, err error, msg string) *todosdk.APIError {
	t.Helper()
	require.Error(t, err)

	var apiErr *todosdk.APIError
	require.True(t, errors.As(err, &apiErr), "expected *todosdk.APIError, got %T: %v", err, err)
	require.True(t, apiErr.Contains(msg), "message %q does not contain %q", apiErr.Message, msg)
	return apiErr
}

func ptr[T any](v T) *T { return &v }

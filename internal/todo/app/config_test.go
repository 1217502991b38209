package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aussiebroadwan/todo/pkg/httpx"
	"github.com/stretchr/testify/require"
)

const validSecret = "0123456789abcdef0123456789abcdef"

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{
		"DEBUG", "ENV", "JWT_KEY", "JWT_ISSUER", "JWT_DURATION_MINUTES", "JWT_MAX_AGE",
		"ALLOWED_ORIGIN", "HOST", "PORT", "LOG_LEVEL", "LOG_FORMAT", "REQUEST_TIMEOUT",
		"SHUTDOWN_GRACE_PERIOD", "RATELIMIT_STRICT_REQUESTS",
	} {
		t.Setenv(k, "")
	}
	t.Setenv("DATABASE_URL", "sqlite://:memory:")
	t.Setenv("JWT_SECRET", validSecret)

	cfg := LoadConfig()
	require.False(t, cfg.Debug)
	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, "todo", cfg.JWTIssuer)
	require.Equal(t, 60*time.Minute, cfg.JWTDuration)
	require.Equal(t, 24*time.Hour, cfg.JWTMaxAge)
	require.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.RequestTimeout)
	require.Equal(t, 5, cfg.RateLimits.Strict.RequestsPerWindow)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DEBUG", "true")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/todo")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_KEY", validSecret)
	t.Setenv("JWT_DURATION_MINUTES", "15")
	t.Setenv("JWT_MAX_AGE", "2")
	t.Setenv("ALLOWED_ORIGIN", "https://a.example, https://b.example ,")
	t.Setenv("PORT", "9090")
	t.Setenv("REQUEST_TIMEOUT", "3")
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "1m")
	t.Setenv("RATELIMIT_STRICT_REQUESTS", "50")

	cfg := LoadConfig()
	require.True(t, cfg.Debug)
	require.Equal(t, validSecret, cfg.JWTSecret)
	require.Equal(t, 15*time.Minute, cfg.JWTDuration)
	require.Equal(t, 2*time.Hour, cfg.JWTMaxAge)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, 3*time.Second, cfg.RequestTimeout)
	require.Equal(t, time.Minute, cfg.ShutdownGracePeriod)
	require.Equal(t, 50, cfg.RateLimits.Strict.RequestsPerWindow)
}

func TestValidate(t *testing.T) {
	err := Config{Port: 8080, JWTDuration: time.Hour}.Validate()
	require.ErrorContains(t, err, "DATABASE_URL is required")
	require.ErrorContains(t, err, "JWT_SECRET (or JWT_KEY) is required")

	err = Config{DatabaseURL: "sqlite://x", JWTSecret: "short", Port: 8080, JWTDuration: time.Hour}.Validate()
	require.ErrorContains(t, err, "at least 32 bytes")

	err = Config{DatabaseURL: "sqlite://x", JWTSecret: validSecret, Port: 0, JWTDuration: time.Hour}.Validate()
	require.ErrorContains(t, err, "PORT")
}

func TestOpenStoreScheme(t *testing.T) {
	_, err := OpenStore(context.Background(), "mysql://localhost/todo")
	require.ErrorContains(t, err, `unsupported DATABASE_URL scheme "mysql"`)

	st, err := OpenStore(context.Background(), "sqlite://:memory:")
	require.NoError(t, err)
	require.NoError(t, st.Ping(context.Background()))
	require.NoError(t, st.Close())
}

func TestNewServesRequests(t *testing.T) {
	cfg := Config{
		Env:                 "test",
		DatabaseURL:         "sqlite://:memory:",
		JWTSecret:           validSecret,
		JWTIssuer:           "todo",
		JWTDuration:         time.Hour,
		JWTMaxAge:           time.Hour,
		Port:                8080,
		LogLevel:            "error",
		RequestTimeout:      5 * time.Second,
		ShutdownGracePeriod: time.Second,
		RateLimits:          httpx.DefaultRateLimitProfiles(),
	}

	a, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Shutdown() })

	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/hc/postgres", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)

	_, err = New(Config{})
	require.ErrorContains(t, err, "invalid configuration")
}

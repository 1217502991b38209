package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/todo/pkg/httpx"
	"github.com/aussiebroadwan/todo/pkg/jwtx"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug bool   // DEBUG: forces debug logging with source locations
	Env   string // ENV: dev, staging, prod (default: dev)

	DatabaseURL string // DATABASE_URL: postgres://..., sqlite://path or file:path (required)

	JWTSecret   string        // JWT_SECRET or JWT_KEY: HMAC key, at least 32 bytes (required)
	JWTIssuer   string        // JWT_ISSUER (default: todo)
	JWTDuration time.Duration // JWT_DURATION_MINUTES: token lifetime (default: 60)
	JWTMaxAge   time.Duration // JWT_MAX_AGE: session cookie lifetime in hours (default: 24)

	AllowedOrigins []string // ALLOWED_ORIGIN: comma separated (default: http://localhost:3000)

	Host string // HOST (default: all interfaces)
	Port int    // PORT (default: 8080)

	LogLevel  string // LOG_LEVEL (default: info)
	LogFormat string // LOG_FORMAT: json or text (default: json)

	RequestTimeout      time.Duration // REQUEST_TIMEOUT (default: 10s)
	ShutdownGracePeriod time.Duration // SHUTDOWN_GRACE_PERIOD (default: 10s)

	RateLimits httpx.RateLimitProfiles // RATELIMIT_<PROFILE>_{REQUESTS,WINDOW_SEC,BURST}
}

// LoadConfig reads the environment, after loading .env from the working
// directory when one exists.
func LoadConfig() Config {
	_ = godotenv.Load()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = os.Getenv("JWT_KEY")
	}

	return Config{
		Debug:               getEnvBoolOrDefault("DEBUG", false),
		Env:                 getEnvOrDefault("ENV", "dev"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		JWTSecret:           secret,
		JWTIssuer:           getEnvOrDefault("JWT_ISSUER", "todo"),
		JWTDuration:         time.Duration(getEnvIntOrDefault("JWT_DURATION_MINUTES", 60)) * time.Minute,
		JWTMaxAge:           time.Duration(getEnvIntOrDefault("JWT_MAX_AGE", 24)) * time.Hour,
		AllowedOrigins:      splitList(getEnvOrDefault("ALLOWED_ORIGIN", "http://localhost:3000")),
		Host:                os.Getenv("HOST"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		RequestTimeout:      getEnvDurationOrDefault("REQUEST_TIMEOUT", 10*time.Second),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		RateLimits:          httpx.RateLimitProfilesFromEnv(),
	}
}

// Validate reports every missing or unusable setting at once.
func (c Config) Validate() error {
	var errs []error
	if c.DatabaseURL == "" {
		errs = append(errs, errors.New("DATABASE_URL is required"))
	}
	switch {
	case c.JWTSecret == "":
		errs = append(errs, errors.New("JWT_SECRET (or JWT_KEY) is required"))
	case len(c.JWTSecret) < jwtx.MinSecretSize:
		errs = append(errs, fmt.Errorf("JWT_SECRET must be at least %d bytes", jwtx.MinSecretSize))
	}
	if c.JWTDuration <= 0 {
		errs = append(errs, errors.New("JWT_DURATION_MINUTES must be positive"))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %d is out of range", c.Port))
	}
	return errors.Join(errs...)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Plain integers are seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}

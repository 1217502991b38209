package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/todo/internal/todo/store"
	"github.com/aussiebroadwan/todo/internal/todo/store/drivers/postgres"
	"github.com/aussiebroadwan/todo/internal/todo/store/drivers/sqlite"
)

// OpenStore picks the driver from the DATABASE_URL scheme.
func OpenStore(ctx context.Context, databaseURL string) (store.Store, error) {
	switch {
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		return postgres.NewStore(ctx, databaseURL)
	case strings.HasPrefix(databaseURL, "sqlite://"):
		return sqlite.NewStore(strings.TrimPrefix(databaseURL, "sqlite://"))
	case strings.HasPrefix(databaseURL, "file:"):
		return sqlite.NewStore(databaseURL)
	default:
		scheme, _, _ := strings.Cut(databaseURL, ":")
		return nil, fmt.Errorf("unsupported DATABASE_URL scheme %q", scheme)
	}
}

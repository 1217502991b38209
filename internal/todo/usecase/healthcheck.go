package usecase

import (
	"context"
	"fmt"

	"github.com/aussiebroadwan/todo/internal/todo/store"
)

type HealthCheckUseCase struct {
	Store store.Store
}

// DiagnoseDB reports whether the database answers a ping.
func (u *HealthCheckUseCase) DiagnoseDB(ctx context.Context) error {
	if err := u.Store.Ping(ctx); err != nil {
		return fmt.Errorf("database unreachable: %w", err)
	}
	return nil
}

package http

import (
	"net/http"

	"github.com/aussiebroadwan/todo/internal/todo/usecase"
	"github.com/aussiebroadwan/todo/pkg/httpx"
	"github.com/aussiebroadwan/todo/pkg/slogx"
)

type HealthHandler struct {
	HealthCheckUseCase *usecase.HealthCheckUseCase
}

// HandleLiveness godoc
//
//	@Summary		Liveness probe
//	@Description	Answers 204 while the process is serving requests.
//	@Tags			Health
//	@Success		204	"Service is up"
//	@Router			/v1/hc [get].
func (h *HealthHandler) HandleLiveness(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// HandleDatabase godoc
//
//	@Summary		Database probe
//	@Description	Pings the database. 204 when reachable, 503 otherwise.
//	@Tags			Health
//	@Produce		json
//	@Success		204	"Database reachable"
//	@Failure		503	{object}	httpx.Envelope	"Database unreachable"
//	@Router			/v1/hc/postgres [get].
func (h *HealthHandler) HandleDatabase(w http.ResponseWriter, r *http.Request) {
	if err := h.HealthCheckUseCase.DiagnoseDB(r.Context()); err != nil {
		slogx.FromContext(r.Context()).Warn("database health check failed", "err", err)
		httpx.WriteFailure(w, http.StatusServiceUnavailable, httpx.ErrorMessage(err.Error()))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/forgo/catalog/internal/model"
)

// Pinger is satisfied by every store the server can run against
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports whether the catalog store is reachable
type HealthHandler struct {
	store Pinger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(store Pinger) *HealthHandler {
	return &HealthHandler{store: store}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		WriteError(w, model.NewServiceUnavailableError("store unreachable"))
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

package handlers

import (
	"context"
	"net/http"
	"time"

	"freight-booking/internal/logx"
)

// API identity reported by GET /api/.
const (
	APIName    = "IshemaLink API"
	APIVersion = "v1"
)

// Handlers holds HTTP handlers dependencies (logger, store health).
type Handlers struct {
	Logger logx.Logger
	store  Pinger
}

// New creates a Handlers instance; a nil store reports the database as unchecked.
func New(logger logx.Logger, store Pinger) *Handlers {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Handlers{Logger: logger, store: store}
}

// Ping handles GET /ping and returns 200 with {"message":"pong"}.
func (h *Handlers) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.Logger, w, r, http.StatusOK, map[string]string{"message": "pong"})
}

// HealthcheckHead handles HEAD /healthcheck and returns 204 No Content.
func (h *Handlers) HealthcheckHead(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// APIRoot handles GET /api/.
func (h *Handlers) APIRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.Logger, w, r, http.StatusOK, map[string]string{"name": APIName, "version": APIVersion})
}

type statusResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Status handles GET /api/status/ and pings the store.
func (h *Handlers) Status(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		writeJSON(h.Logger, w, r, http.StatusOK, statusResponse{Status: "ok", Database: "unchecked"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := h.store.Ping(ctx); err != nil {
		h.Logger.Error("store ping failed", logx.String("req_id", reqID(r.Context())), logx.Err(err))
		writeJSON(h.Logger, w, r, http.StatusServiceUnavailable, statusResponse{Status: "degraded", Database: "unavailable"})
		return
	}
	writeJSON(h.Logger, w, r, http.StatusOK, statusResponse{Status: "ok", Database: "connected"})
}

// NotFound returns a JSON 404 error for unknown routes.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(h.Logger, w, r, http.StatusNotFound, "route not found")
}

// MethodNotAllowed returns a JSON 405 error.
func (h *Handlers) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(h.Logger, w, r, http.StatusMethodNotAllowed, "invalid method")
}

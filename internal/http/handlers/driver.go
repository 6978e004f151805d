package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"freight-booking/internal/apperr"
	"freight-booking/internal/logx"
)

// DriverHandler serves HTTP endpoints for the driver registry.
type DriverHandler struct {
	usecase driverUsecase
	logger  logx.Logger
}

// NewDriverHandler wires a driver usecase into HTTP handlers.
func NewDriverHandler(logger logx.Logger, uc driverUsecase) *DriverHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &DriverHandler{usecase: uc, logger: logger}
}

// GetByID handles GET /drivers/{id}.
func (h *DriverHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	d, err := h.usecase.Get(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, driverToResponse(*d))
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// List handles GET /drivers.
func (h *DriverHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, err := intQuery(r, "limit")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid limit")
		return
	}
	offset, err := intQuery(r, "offset")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid offset")
		return
	}

	list, err := h.usecase.List(r.Context(), limit, offset)
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, driversToResponse(list))
}

// Create handles POST /drivers.
func (h *DriverHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDriverRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	id, err := h.usecase.Create(r.Context(), req.toModel())
	switch {
	case err == nil:
		w.Header().Set("Location", "/drivers/"+strconv.FormatInt(id, 10))
		writeJSON(h.logger, w, r, http.StatusCreated, map[string]any{"id": id})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.logger, w, r, http.StatusConflict, "license number already exists")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Broadcast handles POST /notifications/broadcast/.
// The message comes from the JSON body or the "message" query parameter.
func (h *DriverHandler) Broadcast(w http.ResponseWriter, r *http.Request) {
	message := r.URL.Query().Get("message")
	if r.ContentLength > 0 {
		var req broadcastRequest
		if ok := decodeJSON(h.logger, w, r, &req); !ok {
			return
		}
		if req.Message != "" {
			message = req.Message
		}
	}

	sent, err := h.usecase.Broadcast(r.Context(), message)
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, broadcastResponse{Status: "broadcast sent", DriverCount: sent})
}

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"freight-booking/internal/apperr"
	"freight-booking/internal/domain"
	"freight-booking/internal/logx"
)

// BookingHandler serves shipment and payment endpoints.
type BookingHandler struct {
	usecase bookingUsecase
	logger  logx.Logger
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(logger logx.Logger, uc bookingUsecase) *BookingHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &BookingHandler{usecase: uc, logger: logger}
}

// Create handles POST /api/shipments/create/.
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createShipmentRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	res, err := h.usecase.CreateShipment(r.Context(), req.toModel())
	if err == nil {
		w.Header().Set("Location", "/api/shipments/"+strconv.FormatInt(res.ShipmentID, 10))
	}
	h.writeCreateResult(w, r, http.StatusCreated, res, err)
}

// RetryPayment handles POST /api/shipments/{id}/payment.
func (h *BookingHandler) RetryPayment(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	res, err := h.usecase.RetryPayment(r.Context(), id)
	h.writeCreateResult(w, r, http.StatusOK, res, err)
}

func (h *BookingHandler) writeCreateResult(w http.ResponseWriter, r *http.Request, okStatus int, res domain.CreateShipmentResult, err error) {
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, okStatus, createResultToResponse(res))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "shipment not found")
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.logger, w, r, http.StatusConflict, "shipment is not awaiting payment")
	case errors.Is(err, apperr.ErrGateway):
		h.logger.Warn("http error",
			logx.String("req_id", reqID(r.Context())),
			logx.Int("status", http.StatusBadGateway),
			logx.Int64("shipment_id", res.ShipmentID),
		)
		writeJSON(h.logger, w, r, http.StatusBadGateway, paymentFailedResponse{
			Error:      "payment request failed",
			Status:     string(res.Status),
			ShipmentID: res.ShipmentID,
			Tariff:     res.Tariff,
		})
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Get handles GET /api/shipments/{id}.
func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	sh, err := h.usecase.GetShipment(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, shipmentToResponse(*sh))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "shipment not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// PaymentWebhook handles POST /api/payments/webhook/.
// Unknown or already resolved shipments are acknowledged; only store failures return 500.
func (h *BookingHandler) PaymentWebhook(w http.ResponseWriter, r *http.Request) {
	var req paymentCallbackRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	if _, err := h.usecase.HandlePaymentCallback(r.Context(), req.toModel()); err != nil {
		h.logger.Error("payment callback failed",
			logx.String("req_id", reqID(r.Context())),
			logx.String("transaction_id", req.TransactionID),
			logx.Err(err),
		)
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, callbackResponse{Status: "callback processed"})
}

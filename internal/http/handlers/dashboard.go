package handlers

import (
	"net/http"

	"freight-booking/internal/logx"
)

type dashboardSummaryResponse struct {
	ActiveTrucks     int64 `json:"active_trucks"`
	TotalRevenue     int64 `json:"total_revenue"`
	AvailableDrivers int64 `json:"available_drivers"`
}

// DashboardHandler serves operator summaries.
type DashboardHandler struct {
	usecase dashboardUsecase
	logger  logx.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(logger logx.Logger, uc dashboardUsecase) *DashboardHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &DashboardHandler{usecase: uc, logger: logger}
}

// Summary handles GET /dashboard/summary/.
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.usecase.Summary(r.Context())
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, dashboardSummaryResponse{
		ActiveTrucks:     sum.ActiveTrucks,
		TotalRevenue:     sum.TotalRevenue,
		AvailableDrivers: sum.AvailableDrivers,
	})
}

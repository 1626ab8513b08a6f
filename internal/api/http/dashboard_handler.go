package http

import (
	"net/http"

	"scooter-backoffice/internal/service"
)

type DashboardHandler struct {
	dashboardSvc service.DashboardService
}

func NewDashboardHandler(dashboardSvc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc}
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardSvc.GetDashboardStats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, stats)
}

func (h *DashboardHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.dashboardSvc.GetAnalytics(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, analytics)
}

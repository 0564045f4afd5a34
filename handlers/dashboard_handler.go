package handlers

import (
	"net/http"

	"github.com/courtside/tournament-engine/services"
)

type DashboardHandler struct {
	dashboardService services.DashboardService
}

func NewDashboardHandler(ds services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: ds}
}

func (h *DashboardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboardService.Summary(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"dashboard": summary}); err != nil {
		serverErrorResponse(w, err)
	}
}

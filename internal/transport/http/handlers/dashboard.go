package handlers

import (
	"net/http"

	"github.com/jeunessebiere/site-api/internal/service"
	"github.com/jeunessebiere/site-api/internal/transport/http/response"
)

type DashboardHandler struct {
	svc *service.DashboardService
}

func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusOK, stats)
}

func (h *DashboardHandler) RecentEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.svc.RecentEvents(r.Context())
	if err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusOK, events)
}

func (h *DashboardHandler) RecentActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.svc.RecentActivities(r.Context())
	if err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusOK, activities)
}

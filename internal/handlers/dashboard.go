package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/internal/models"
)

func (h *Handler) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetDashboardStats(r.Context())
	if err != nil {
		// the dashboard renders zeros rather than erroring out
		h.sendJSON(w, http.StatusOK, Response{Success: true, Data: stats, Message: "Dashboard stats unavailable"})
		return
	}
	h.sendJSON(w, http.StatusOK, Response{Success: true, Data: stats})
}

func (h *Handler) GetAlerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.svc.ListAlerts(r.Context())
	if err != nil {
		h.sendJSON(w, http.StatusOK, Response{Success: true, Data: alerts, Message: "Alerts unavailable, showing empty"})
		return
	}
	h.sendJSON(w, http.StatusOK, Response{Success: true, Data: alerts})
}

type CreateAlertRequest struct {
	Type       string `json:"type"`
	Message    string `json:"message"`
	RouterName string `json:"routerName,omitempty"`
}

func (h *Handler) CreateAlert(w http.ResponseWriter, r *http.Request) {
	var req CreateAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	if req.Message == "" {
		h.sendJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Message is required"})
		return
	}

	alert, err := h.svc.CreateAlert(r.Context(), models.Alert{
		Type:       req.Type,
		Message:    req.Message,
		RouterName: req.RouterName,
	})
	if err != nil {
		h.sendUpstreamError(w, err)
		return
	}

	h.sendJSON(w, http.StatusCreated, Response{Success: true, Message: "Alert created", Data: alert})
}

func (h *Handler) MarkAlertRead(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.svc.MarkAlertRead(r.Context(), id); err != nil {
		h.sendUpstreamError(w, err)
		return
	}

	h.sendJSON(w, http.StatusOK, Response{Success: true, Message: "Alert marked as read"})
}

// GetMonitoringSnapshot serves the live connection view from the poller's
// latest snapshot; no upstream call happens on this path.
func (h *Handler) GetMonitoringSnapshot(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.monitor.Snapshot()
	if !ok {
		h.sendJSON(w, http.StatusOK, Response{Success: true, Message: "No poll has completed yet"})
		return
	}
	h.sendJSON(w, http.StatusOK, Response{Success: true, Data: snap})
}

// Monitoring can be toggled off entirely, e.g. during upstream
// maintenance windows.

func (h *Handler) StartMonitoring(w http.ResponseWriter, r *http.Request) {
	if err := h.monitor.Start(); err != nil {
		h.sendJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to start monitoring"})
		return
	}
	h.sendJSON(w, http.StatusOK, Response{Success: true, Message: "Monitoring started"})
}

func (h *Handler) StopMonitoring(w http.ResponseWriter, r *http.Request) {
	h.monitor.Stop()
	h.sendJSON(w, http.StatusOK, Response{Success: true, Message: "Monitoring stopped"})
}

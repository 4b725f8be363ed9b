package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/internal/models"
)

type PlanRequest struct {
	Name          string  `json:"name"`
	DownloadSpeed int     `json:"downloadSpeed"`
	UploadSpeed   int     `json:"uploadSpeed"`
	Price         float64 `json:"price"`
	PPPoEProfile  string  `json:"pppoeProfile"`
	Description   string  `json:"description,omitempty"`
}

func (req *PlanRequest) validate() string {
	if req.Name == "" {
		return "Name is required"
	}
	if req.DownloadSpeed <= 0 || req.UploadSpeed <= 0 {
		return "Download and upload speeds must be positive"
	}
	if req.Price < 0 {
		return "Price cannot be negative"
	}
	if req.PPPoEProfile == "" {
		return "PPPoE profile name is required"
	}
	return ""
}

func (req *PlanRequest) toModel() models.Plan {
	return models.Plan{
		Name:          req.Name,
		DownloadSpeed: req.DownloadSpeed,
		UploadSpeed:   req.UploadSpeed,
		Price:         req.Price,
		PPPoEProfile:  req.PPPoEProfile,
		Description:   req.Description,
	}
}

func (h *Handler) GetPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.svc.ListPlans(r.Context())
	if err != nil {
		h.sendJSON(w, http.StatusOK, Response{Success: true, Data: plans, Message: "Plan list unavailable, showing empty"})
		return
	}
	h.sendJSON(w, http.StatusOK, Response{Success: true, Data: plans})
}

func (h *Handler) GetPlan(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	plan, err := h.svc.GetPlan(r.Context(), id)
	if err != nil {
		h.sendUpstreamError(w, err)
		return
	}
	h.sendJSON(w, http.StatusOK, Response{Success: true, Data: plan})
}

func (h *Handler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var req PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	if msg := req.validate(); msg != "" {
		h.sendJSON(w, http.StatusBadRequest, Response{Success: false, Error: msg})
		return
	}

	plan, err := h.svc.CreatePlan(r.Context(), req.toModel())
	if err != nil {
		h.sendUpstreamError(w, err)
		return
	}

	h.sendJSON(w, http.StatusCreated, Response{Success: true, Message: "Plan created successfully", Data: plan})
}

func (h *Handler) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	if msg := req.validate(); msg != "" {
		h.sendJSON(w, http.StatusBadRequest, Response{Success: false, Error: msg})
		return
	}

	plan, err := h.svc.UpdatePlan(r.Context(), id, req.toModel())
	if err != nil {
		h.sendUpstreamError(w, err)
		return
	}

	h.sendJSON(w, http.StatusOK, Response{Success: true, Message: "Plan updated successfully", Data: plan})
}

func (h *Handler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.svc.DeletePlan(r.Context(), id); err != nil {
		h.sendUpstreamError(w, err)
		return
	}

	h.sendJSON(w, http.StatusOK, Response{Success: true, Message: "Plan deleted successfully"})
}

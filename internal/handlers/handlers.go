package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/internal/monitor"
	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/internal/service"
	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/internal/session"
	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/pkg/logger"
	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/pkg/upstream"
)

type Handler struct {
	svc      *service.Service
	sessions *session.Manager
	monitor  *monitor.Monitor
	logger   *logger.Logger
}

func New(svc *service.Service, sessions *session.Manager, mon *monitor.Monitor, l *logger.Logger) *Handler {
	return &Handler{svc: svc, sessions: sessions, monitor: mon, logger: l}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func (h *Handler) sendJSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

// sendUpstreamError translates the transport error taxonomy into a
// console response. Rejections keep the upstream status and message;
// no-response failures become a gateway timeout.
func (h *Handler) sendUpstreamError(w http.ResponseWriter, err error) {
	if tErr, ok := upstream.IsTransport(err); ok {
		msg := tErr.Message
		if msg == "" {
			msg = "Upstream request rejected"
		}
		h.sendJSON(w, tErr.StatusCode, Response{Success: false, Error: msg})
		return
	}
	if upstream.IsNetwork(err) {
		h.sendJSON(w, http.StatusGatewayTimeout, Response{Success: false, Error: "Upstream API unreachable"})
		return
	}
	h.sendJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Internal error"})
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	h.sendJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "ISP management console is running",
		Data: map[string]interface{}{
			"version":    "1.0.0",
			"timestamp":  time.Now().Format(time.RFC3339),
			"monitoring": h.monitor.Running(),
		},
	})
}

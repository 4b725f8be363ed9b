package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/internal/middleware"
	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/internal/session"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	if req.Email == "" || req.Password == "" {
		h.sendJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Email and password are required"})
		return
	}

	user, token, err := h.sessions.Login(req.Email, req.Password)
	if err == session.ErrInvalidCredentials {
		h.logger.Warn("Login failed", "email", req.Email)
		h.sendJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "Invalid credentials"})
		return
	}
	if err != nil {
		h.logger.Error("Failed to establish session", "error", err.Error())
		h.sendJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to generate token"})
		return
	}

	h.logger.Info("Operator logged in", "user_id", user.ID, "email", user.Email)

	h.sendJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Login successful",
		Data: map[string]interface{}{
			"token": token,
			"user":  user,
		},
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r)
	h.sessions.Logout()
	if claims != nil {
		h.logger.Info("Operator logged out", "user_id", claims.UserID)
	}
	h.sendJSON(w, http.StatusOK, Response{Success: true, Message: "Logged out"})
}

func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r)
	if claims == nil {
		h.sendJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "Invalid token"})
		return
	}

	token, err := h.sessions.Refresh(claims)
	if err != nil {
		h.sendJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to refresh token"})
		return
	}

	h.sendJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    map[string]string{"token": token},
	})
}

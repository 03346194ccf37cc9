package web

import (
	"net/http"

	"gym-ledger/internal/models"
)

type loginRequest struct {
	Role     models.Role `json:"role" validate:"required,oneof=member admin"`
	Username string      `json:"username" validate:"required"`
	Password string      `json:"password" validate:"required"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.Registration
	if !h.decode(w, r, &req) {
		return
	}

	id, err := h.authService.Register(r.Context(), req)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, messageResponse{
		Message: "Registration successful! Please login.",
		Data:    map[string]interface{}{"id": id, "role": req.Role},
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !h.decode(w, r, &req) {
		return
	}

	session, err := h.authService.Login(r.Context(), req.Role, req.Username, req.Password)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, session)
}

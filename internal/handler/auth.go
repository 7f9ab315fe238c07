package handler

import (
	"net/http"

	"github.com/pawtime-dev/pawtime/internal/api"
	"github.com/pawtime-dev/pawtime/internal/domain"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	req, err := DecodeValidate[api.RegisterRequest](r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	id, err := h.auth.Register(req.Email, req.Nick, req.Password)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.respond(w, http.StatusCreated, api.StatusCreate, "User registered", map[string]int64{"user_id": id})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	req, err := DecodeValidate[api.LoginRequest](r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	token, err := h.auth.Login(domain.Credentials{Email: req.Email, Password: req.Password})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.respond(w, http.StatusOK, api.StatusSuccess, "Logged in", api.TokenResponse{Token: token})
}

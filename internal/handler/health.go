package handler

import (
	"net/http"

	"github.com/pawtime-dev/pawtime/internal/api"
)

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.respond(w, http.StatusOK, api.StatusSuccess, "OK", nil)
}

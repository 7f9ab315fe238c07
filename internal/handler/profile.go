package handler

import (
	"net/http"

	"github.com/pawtime-dev/pawtime/internal/api"
	"github.com/pawtime-dev/pawtime/internal/domain"
	internal_errors "github.com/pawtime-dev/pawtime/internal/errors"
	"github.com/pawtime-dev/pawtime/internal/middleware"
)

func (h *Handler) GetProfileImage(w http.ResponseWriter, r *http.Request) {
	userId, err := parseIdParam(r, "userId")
	if err != nil {
		h.writeError(w, err)
		return
	}

	img, err := h.profiles.Get(userId)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.respond(w, http.StatusOK, api.StatusSuccess, "Profile image fetched", profileImgFrom(img))
}

func (h *Handler) UpdateProfileImage(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r)
	if !ok {
		h.writeError(w, internal_errors.New(internal_errors.Unauthenticated, "Missing credential"))
		return
	}

	userId, err := parseIdParam(r, "userId")
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := r.ParseMultipartForm(h.cfg.Public.MaxImageBytes); err != nil {
		h.writeError(w, internal_errors.New(internal_errors.Invalid, "Invalid multipart form"))
		return
	}

	_, fileHeader, err := r.FormFile("image")
	if err != nil {
		h.writeError(w, internal_errors.New(internal_errors.Invalid, "Missing image file"))
		return
	}

	img, err := h.profiles.Update(r.Context(), identity, userId, fileHeader)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.respond(w, http.StatusOK, api.StatusUpdate, "Profile image updated", profileImgFrom(img))
}

func (h *Handler) DeleteProfileImage(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r)
	if !ok {
		h.writeError(w, internal_errors.New(internal_errors.Unauthenticated, "Missing credential"))
		return
	}

	userId, err := parseIdParam(r, "userId")
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := h.profiles.Delete(r.Context(), identity, userId); err != nil {
		h.writeError(w, err)
		return
	}
	h.respond(w, http.StatusOK, api.StatusDelete, "Profile image removed", nil)
}

func profileImgFrom(img domain.ProfileImg) api.ProfileImgResponse {
	return api.ProfileImgResponse{UserId: img.UserId, Url: img.Url}
}

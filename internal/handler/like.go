package handler

import (
	"net/http"

	"github.com/pawtime-dev/pawtime/internal/api"
	internal_errors "github.com/pawtime-dev/pawtime/internal/errors"
	"github.com/pawtime-dev/pawtime/internal/middleware"
)

func (h *Handler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r)
	if !ok {
		h.writeError(w, internal_errors.New(internal_errors.Unauthenticated, "Missing credential"))
		return
	}

	postId, err := parseIdParam(r, "postId")
	if err != nil {
		h.writeError(w, err)
		return
	}

	liked, likes, err := h.likes.Toggle(identity, postId)
	if err != nil {
		h.writeError(w, err)
		return
	}

	message := "Post liked"
	if !liked {
		message = "Like removed"
	}
	h.respond(w, http.StatusOK, api.StatusSuccess, message, api.LikeResponse{Liked: liked, Likes: likes})
}

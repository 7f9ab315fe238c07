package handler

import (
	"net/http"

	"github.com/pawtime-dev/pawtime/internal/api"
	"github.com/pawtime-dev/pawtime/internal/domain"
	internal_errors "github.com/pawtime-dev/pawtime/internal/errors"
	"github.com/pawtime-dev/pawtime/internal/middleware"
)

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
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

	req, err := DecodeValidate[api.CreateCommentRequest](r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	comment, err := h.comments.Create(identity, domain.CommentCreationData{
		PostId:  postId,
		Content: req.Content,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.respond(w, http.StatusCreated, api.StatusCreate, "Comment created", api.CommentFrom(comment))
}

func (h *Handler) GetComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.comments.List(h.parsePageRequest(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.respondComments(w, comments)
}

func (h *Handler) GetPostComments(w http.ResponseWriter, r *http.Request) {
	postId, err := parseIdParam(r, "postId")
	if err != nil {
		h.writeError(w, err)
		return
	}

	comments, err := h.comments.ListByPost(postId, h.parsePageRequest(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.respondComments(w, comments)
}

// GetMyComments lists the caller's own comments across all posts.
func (h *Handler) GetMyComments(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r)
	if !ok {
		h.writeError(w, internal_errors.New(internal_errors.Unauthenticated, "Missing credential"))
		return
	}

	comments, err := h.comments.ListByUser(identity.UserId, h.parsePageRequest(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.respondComments(w, comments)
}

func (h *Handler) UpdateComment(w http.ResponseWriter, r *http.Request) {
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
	commentId, err := parseIdParam(r, "commentId")
	if err != nil {
		h.writeError(w, err)
		return
	}

	req, err := DecodeValidate[api.UpdateCommentRequest](r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := h.comments.Update(identity, commentId, postId, req.Content); err != nil {
		h.writeError(w, err)
		return
	}
	h.respond(w, http.StatusOK, api.StatusUpdate, "Comment updated", nil)
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
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
	commentId, err := parseIdParam(r, "commentId")
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := h.comments.Delete(identity, commentId, postId); err != nil {
		h.writeError(w, err)
		return
	}
	h.respond(w, http.StatusOK, api.StatusDelete, "Comment deleted", nil)
}

func (h *Handler) respondComments(w http.ResponseWriter, comments []domain.Comment) {
	resp := make([]api.CommentResponse, 0, len(comments))
	for _, c := range comments {
		resp = append(resp, api.CommentFrom(c))
	}
	h.respond(w, http.StatusOK, api.StatusSuccess, "Comments fetched", resp)
}

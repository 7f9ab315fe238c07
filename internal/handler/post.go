package handler

import (
	"net/http"
	"strconv"

	"github.com/pawtime-dev/pawtime/internal/api"
	"github.com/pawtime-dev/pawtime/internal/domain"
	internal_errors "github.com/pawtime-dev/pawtime/internal/errors"
	"github.com/pawtime-dev/pawtime/internal/middleware"
)

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r)
	if !ok {
		h.writeError(w, internal_errors.New(internal_errors.Unauthenticated, "Missing credential"))
		return
	}

	req, err := DecodeValidate[api.CreatePostRequest](r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	post, err := h.posts.Create(identity, domain.PostCreationData{
		BoardId: req.BoardId,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.respond(w, http.StatusCreated, api.StatusCreate, "Post created", h.postDetail(post, false))
}

// GetPost is open to anonymous callers; an authenticated viewer additionally
// learns whether they liked the post. Each fetch bumps the view counter.
func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(r, "postId")
	if err != nil {
		h.writeError(w, err)
		return
	}

	var viewer domain.UserId
	if identity, ok := middleware.IdentityFromContext(r); ok {
		viewer = identity.UserId
	}

	post, likedByMe, err := h.posts.Get(id, viewer)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.respond(w, http.StatusOK, api.StatusSuccess, "Post fetched", h.postDetail(post, likedByMe))
}

func (h *Handler) GetPosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var boardId domain.BoardId
	if raw := q.Get("board_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			h.writeError(w, internal_errors.New(internal_errors.Invalid, "Invalid board_id"))
			return
		}
		boardId = id
	}

	posts, err := h.posts.List(boardId, q.Get("keyword"), h.parsePageRequest(r))
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp := make([]api.PostListItemResponse, 0, len(posts))
	for _, p := range posts {
		resp = append(resp, api.PostListItemFrom(p))
	}
	h.respond(w, http.StatusOK, api.StatusSuccess, "Posts fetched", resp)
}

func (h *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r)
	if !ok {
		h.writeError(w, internal_errors.New(internal_errors.Unauthenticated, "Missing credential"))
		return
	}

	id, err := parseIdParam(r, "postId")
	if err != nil {
		h.writeError(w, err)
		return
	}

	req, err := DecodeValidate[api.UpdatePostRequest](r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	err = h.posts.Update(identity, id, domain.PostUpdateData{Title: req.Title, Content: req.Content})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.respond(w, http.StatusOK, api.StatusUpdate, "Post updated", nil)
}

func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r)
	if !ok {
		h.writeError(w, internal_errors.New(internal_errors.Unauthenticated, "Missing credential"))
		return
	}

	id, err := parseIdParam(r, "postId")
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := h.posts.Delete(identity, id); err != nil {
		h.writeError(w, err)
		return
	}
	h.respond(w, http.StatusOK, api.StatusDelete, "Post deleted", nil)
}

func (h *Handler) postDetail(post domain.Post, likedByMe bool) api.PostDetailResponse {
	return api.PostDetailResponse{
		PostListItemResponse: api.PostListItemFrom(post),
		Content:              post.Content,
		ContentHtml:          h.markdown.Render(post.Content),
		LikedByMe:            likedByMe,
		UpdatedAt:            post.UpdatedAt,
	}
}

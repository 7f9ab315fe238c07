package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pawtime-dev/pawtime/internal/api"
	"github.com/pawtime-dev/pawtime/internal/config"
	"github.com/pawtime-dev/pawtime/internal/markdown"
	"github.com/pawtime-dev/pawtime/internal/middleware"
	"github.com/pawtime-dev/pawtime/internal/service"
)

type Handler struct {
	auth     *service.Auth
	boards   *service.Board
	posts    *service.Post
	comments *service.Comment
	likes    *service.Like
	profiles *service.Profile
	markdown *markdown.Renderer
	cfg      *config.Config
}

func New(
	auth *service.Auth,
	boards *service.Board,
	posts *service.Post,
	comments *service.Comment,
	likes *service.Like,
	profiles *service.Profile,
	cfg *config.Config,
) *Handler {
	return &Handler{
		auth:     auth,
		boards:   boards,
		posts:    posts,
		comments: comments,
		likes:    likes,
		profiles: profiles,
		markdown: markdown.New(),
		cfg:      cfg,
	}
}

// respond writes the success envelope. Error paths go through writeError so
// that every response, success or failure, carries the same shape.
func (h *Handler) respond(w http.ResponseWriter, code int, status api.Status, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(api.Response{Status: status, Message: message, Data: data})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	middleware.WriteError(w, err)
}

package router

import (
	"github.com/go-chi/chi/v5"
	chi_middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pawtime-dev/pawtime/internal/config"
	"github.com/pawtime-dev/pawtime/internal/handler"
	"github.com/pawtime-dev/pawtime/internal/middleware"
	"github.com/pawtime-dev/pawtime/internal/middleware/metrics"
)

// New wires all routes. Read paths run with OptionalAuth so anonymous
// callers pass through; mutations sit behind NeedAuth; board management is
// admin-only.
func New(h *handler.Handler, auth *middleware.Auth, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chi_middleware.Recoverer)
	r.Use(middleware.SecurityHeaders)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Public.CorsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(metrics.Middleware)

	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Post("/auth/register", h.Register)
		r.Post("/auth/login", h.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.OptionalAuth())

			r.Get("/boards", h.GetBoards)
			r.Get("/boards/{boardId}", h.GetBoard)

			r.Get("/posts", h.GetPosts)
			r.Get("/posts/{postId}", h.GetPost)
			r.Get("/posts/{postId}/comments", h.GetPostComments)

			r.Get("/comments", h.GetComments)

			r.Get("/users/{userId}/profile-image", h.GetProfileImage)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.NeedAuth())

			r.Post("/posts", h.CreatePost)
			r.Put("/posts/{postId}", h.UpdatePost)
			r.Delete("/posts/{postId}", h.DeletePost)

			r.Post("/posts/{postId}/comments", h.CreateComment)
			r.Put("/posts/{postId}/comments/{commentId}", h.UpdateComment)
			r.Delete("/posts/{postId}/comments/{commentId}", h.DeleteComment)
			r.Get("/me/comments", h.GetMyComments)

			r.Post("/posts/{postId}/like", h.ToggleLike)

			r.Put("/users/{userId}/profile-image", h.UpdateProfileImage)
			r.Delete("/users/{userId}/profile-image", h.DeleteProfileImage)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AdminOnly())

			r.Post("/admin/boards", h.CreateBoard)
			r.Put("/admin/boards/{boardId}", h.UpdateBoard)
			r.Delete("/admin/boards/{boardId}", h.DeleteBoard)
		})
	})

	return r
}

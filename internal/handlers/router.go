package handlers

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/nilesh507/medium/internal/config"
	"github.com/nilesh507/medium/internal/middleware"
)

// NewRouter wires the HTTP surface. User routes are public; every blog
// route sits behind the bearer-token gate.
func NewRouter(h *Handler, cfg *config.Config, logger *slog.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestLogger(logger))

	r.Route("/api/v1/user", func(r chi.Router) {
		r.Post("/signup", h.Auth.SignUp)
		r.Post("/signin", h.Auth.SignIn)
	})

	r.Route("/api/v1/blog", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWTSecret))

		r.Get("/bulk", h.Posts.GetPosts)
		r.Post("/post", h.Posts.CreatePost)
		r.Put("/", h.Posts.UpdatePost)
		r.Get("/{id}", h.Posts.GetPostByID)
		r.Delete("/{id}", h.Posts.DeletePost)
	})

	return r
}

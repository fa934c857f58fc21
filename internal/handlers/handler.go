package handlers

import (
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/nilesh507/medium/internal/config"
	"github.com/nilesh507/medium/internal/posts"
	"github.com/nilesh507/medium/internal/posts/postgres"
)

type Handler struct {
	Auth  *AuthHandler
	Posts *PostHandler
}

func NewHandler(db *sqlx.DB, cfg *config.Config, logger *slog.Logger) *Handler {
	svc := posts.NewService(postgres.NewRepository(db), logger, cfg.StoreTimeout)

	return &Handler{
		Auth:  NewAuthHandler(db, cfg, logger),
		Posts: NewPostHandler(svc),
	}
}

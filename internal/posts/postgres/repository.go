package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/nilesh507/medium/internal/models"
	"github.com/nilesh507/medium/internal/posts"
)

// Repository implements posts.Store on Postgres via sqlx.
type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

const postColumns = `id, author_id, title, content, published, created_at, updated_at`

func (r *Repository) List(ctx context.Context, limit, offset int) ([]models.Post, error) {
	list := []models.Post{}

	err := r.db.SelectContext(ctx, &list, `
		SELECT `+postColumns+`
		FROM posts
		ORDER BY created_at DESC, id
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	return list, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post

	err := r.db.GetContext(ctx, &post, `
		SELECT `+postColumns+`
		FROM posts
		WHERE id = $1
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get post %s: %w", id, err)
	}

	return &post, nil
}

func (r *Repository) Create(ctx context.Context, title, content, authorID string) (*models.Post, error) {
	var post models.Post

	err := r.db.GetContext(ctx, &post, `
		INSERT INTO posts (id, author_id, title, content)
		VALUES ($1, $2, $3, $4)
		RETURNING `+postColumns+`
	`, uuid.NewString(), authorID, title, content)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	return &post, nil
}

// Update is a single conditional statement: the ownership check and the
// mutation happen in one round trip, so a non-owner can never race an
// owner into modifying the row.
func (r *Repository) Update(ctx context.Context, id, authorID string, title, content *string) (*models.Post, error) {
	var post models.Post

	err := r.db.GetContext(ctx, &post, `
		UPDATE posts
		SET title      = COALESCE($3, title),
		    content    = COALESCE($4, content),
		    published  = TRUE,
		    updated_at = NOW()
		WHERE id = $1 AND author_id = $2
		RETURNING `+postColumns+`
	`, id, authorID, title, content)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, posts.ErrNotFoundOrForbidden
	}
	if err != nil {
		return nil, fmt.Errorf("update post %s: %w", id, err)
	}

	return &post, nil
}

func (r *Repository) Delete(ctx context.Context, id, authorID string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM posts
		WHERE id = $1 AND author_id = $2
	`, id, authorID)
	if err != nil {
		return fmt.Errorf("delete post %s: %w", id, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete post %s: %w", id, err)
	}
	if rows == 0 {
		return posts.ErrNotFoundOrForbidden
	}

	return nil
}

package posts

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/nilesh507/medium/internal/models"
)

// Page size bounds for List. The source of this API returned every post
// in one response; callers now always get a bounded page.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Store is the persistence collaborator. Implementations must enforce
// the author-ownership filter on Update and Delete inside a single
// conditional statement, not as a read followed by a write.
type Store interface {
	// List returns at most limit posts, newest first, skipping offset rows.
	List(ctx context.Context, limit, offset int) ([]models.Post, error)

	// GetByID returns ErrNotFound when no post has the given id.
	GetByID(ctx context.Context, id string) (*models.Post, error)

	// Create inserts a new post and generates its id.
	Create(ctx context.Context, title, content, authorID string) (*models.Post, error)

	// Update overwrites the given fields and forces published to true,
	// only on the row matching both id and authorID. Returns
	// ErrNotFoundOrForbidden when zero rows match.
	Update(ctx context.Context, id, authorID string, title, content *string) (*models.Post, error)

	// Delete removes the row matching both id and authorID. Returns
	// ErrNotFoundOrForbidden when zero rows match.
	Delete(ctx context.Context, id, authorID string) error
}

// Service orchestrates post operations. Identity is always an explicit
// argument; the service never recovers it from the context.
type Service struct {
	store   Store
	logger  *slog.Logger
	timeout time.Duration
}

func NewService(store Store, logger *slog.Logger, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Service{store: store, logger: logger, timeout: timeout}
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]models.Post, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	list, err := s.store.List(ctx, limit, offset)
	if err != nil {
		s.logger.Error("store list failed", "error", err)
		return nil, NewStoreError("list", err)
	}
	return list, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	post, err := s.store.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		s.logger.Error("store get failed", "post_id", id, "error", err)
		return nil, NewStoreError("get", err)
	}
	return post, nil
}

// Create persists a new post owned by the authenticated caller. The
// author id is taken from identity only, never from the payload.
func (s *Service) Create(ctx context.Context, identity string, in CreatePostInput) (*models.Post, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	post, err := s.store.Create(ctx, in.Title, in.Content, identity)
	if err != nil {
		// Detail stays in the server log; the client gets a generic body.
		s.logger.Error("store create failed", "author_id", identity, "error", err)
		return nil, NewStoreError("create", err)
	}
	return post, nil
}

// Update overwrites title/content where present and forces published to
// true, restricted to posts owned by the caller. A zero-row match is
// surfaced as ErrNotFoundOrForbidden, never as success.
func (s *Service) Update(ctx context.Context, identity string, in UpdatePostInput) (*models.Post, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	post, err := s.store.Update(ctx, in.ID, identity, in.Title, in.Content)
	if errors.Is(err, ErrNotFoundOrForbidden) {
		return nil, ErrNotFoundOrForbidden
	}
	if err != nil {
		s.logger.Error("store update failed", "post_id", in.ID, "author_id", identity, "error", err)
		return nil, NewStoreError("update", err)
	}
	return post, nil
}

// Delete removes a post owned by the caller, with the same ownership
// filter and zero-row contract as Update.
func (s *Service) Delete(ctx context.Context, identity, id string) error {
	if id == "" {
		return NewValidationError("id", "must be a non-empty string")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	err := s.store.Delete(ctx, id, identity)
	if errors.Is(err, ErrNotFoundOrForbidden) {
		return ErrNotFoundOrForbidden
	}
	if err != nil {
		s.logger.Error("store delete failed", "post_id", id, "author_id", identity, "error", err)
		return NewStoreError("delete", err)
	}
	return nil
}

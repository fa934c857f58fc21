package posts

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nilesh507/medium/internal/models"
)

// stubStore counts calls and returns canned results.
type stubStore struct {
	calls int

	listLimit  int
	listOffset int

	createdAuthor string

	post *models.Post
	err  error
}

func (s *stubStore) List(ctx context.Context, limit, offset int) ([]models.Post, error) {
	s.calls++
	s.listLimit, s.listOffset = limit, offset
	if s.err != nil {
		return nil, s.err
	}
	return []models.Post{}, nil
}

func (s *stubStore) GetByID(ctx context.Context, id string) (*models.Post, error) {
	s.calls++
	return s.post, s.err
}

func (s *stubStore) Create(ctx context.Context, title, content, authorID string) (*models.Post, error) {
	s.calls++
	s.createdAuthor = authorID
	if s.err != nil {
		return nil, s.err
	}
	return &models.Post{ID: "p1", AuthorID: authorID, Title: title, Content: content}, nil
}

func (s *stubStore) Update(ctx context.Context, id, authorID string, title, content *string) (*models.Post, error) {
	s.calls++
	return s.post, s.err
}

func (s *stubStore) Delete(ctx context.Context, id, authorID string) error {
	s.calls++
	return s.err
}

func newTestService(store Store) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(store, logger, time.Second)
}

func TestCreate_InvalidPayloadNeverHitsStore(t *testing.T) {
	store := &stubStore{}
	svc := newTestService(store)

	_, err := svc.Create(context.Background(), "u1", CreatePostInput{Title: "only title"})

	assert.True(t, IsValidationError(err))
	assert.Equal(t, 0, store.calls)
}

func TestCreate_AuthorComesFromIdentity(t *testing.T) {
	store := &stubStore{}
	svc := newTestService(store)

	post, err := svc.Create(context.Background(), "u1", CreatePostInput{Title: "A", Content: "B"})
	require.NoError(t, err)

	assert.Equal(t, "u1", store.createdAuthor)
	assert.Equal(t, "u1", post.AuthorID)
}

func TestCreate_StoreFailureIsNormalized(t *testing.T) {
	store := &stubStore{err: errors.New("connection refused")}
	svc := newTestService(store)

	_, err := svc.Create(context.Background(), "u1", CreatePostInput{Title: "A", Content: "B"})

	assert.True(t, IsStoreError(err))
}

func TestUpdate_ZeroRowMatchSurfaced(t *testing.T) {
	store := &stubStore{err: ErrNotFoundOrForbidden}
	svc := newTestService(store)

	_, err := svc.Update(context.Background(), "u2", UpdatePostInput{ID: "p1"})

	assert.ErrorIs(t, err, ErrNotFoundOrForbidden)
	assert.False(t, IsStoreError(err))
}

func TestUpdate_InvalidPayloadNeverHitsStore(t *testing.T) {
	store := &stubStore{}
	svc := newTestService(store)

	_, err := svc.Update(context.Background(), "u1", UpdatePostInput{})

	assert.True(t, IsValidationError(err))
	assert.Equal(t, 0, store.calls)
}

func TestUpdate_StoreFailureIsNormalized(t *testing.T) {
	store := &stubStore{err: errors.New("connection reset")}
	svc := newTestService(store)

	_, err := svc.Update(context.Background(), "u1", UpdatePostInput{ID: "p1"})

	assert.True(t, IsStoreError(err))
}

func TestGet_NotFoundPassesThrough(t *testing.T) {
	store := &stubStore{err: ErrNotFound}
	svc := newTestService(store)

	_, err := svc.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestList_ClampsPageSize(t *testing.T) {
	store := &stubStore{}
	svc := newTestService(store)

	_, err := svc.List(context.Background(), 0, -5)
	require.NoError(t, err)
	assert.Equal(t, DefaultPageSize, store.listLimit)
	assert.Equal(t, 0, store.listOffset)

	_, err = svc.List(context.Background(), 10_000, 40)
	require.NoError(t, err)
	assert.Equal(t, MaxPageSize, store.listLimit)
	assert.Equal(t, 40, store.listOffset)
}

func TestDelete_ZeroRowMatchSurfaced(t *testing.T) {
	store := &stubStore{err: ErrNotFoundOrForbidden}
	svc := newTestService(store)

	err := svc.Delete(context.Background(), "u2", "p1")

	assert.ErrorIs(t, err, ErrNotFoundOrForbidden)
}

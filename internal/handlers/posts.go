package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nilesh507/medium/internal/middleware"
	"github.com/nilesh507/medium/internal/posts"
	"github.com/nilesh507/medium/internal/utils"
)

type PostHandler struct {
	svc *posts.Service
}

func NewPostHandler(svc *posts.Service) *PostHandler {
	return &PostHandler{svc: svc}
}

// ---------------------- LIST ----------------------

// GetPosts serves GET /bulk with limit/offset paging.
func (h *PostHandler) GetPosts(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	list, err := h.svc.List(r.Context(), limit, offset)
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{"posts": list})
}

// ---------------------- GET ONE ----------------------

func (h *PostHandler) GetPostByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	post, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{"post": post})
}

// ---------------------- CREATE ----------------------

func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r)
	if !ok {
		utils.JSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var in posts.CreatePostInput
	if err := utils.DecodeJSON(w, r, &in); err != nil {
		return
	}

	post, err := h.svc.Create(r.Context(), identity, in)
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"id": post.ID})
}

// ---------------------- UPDATE ----------------------

func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r)
	if !ok {
		utils.JSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var in posts.UpdatePostInput
	if err := utils.DecodeJSON(w, r, &in); err != nil {
		return
	}

	post, err := h.svc.Update(r.Context(), identity, in)
	if err != nil {
		h.writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"id": post.ID})
}

// ---------------------- DELETE ----------------------

func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r)
	if !ok {
		utils.JSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id := chi.URLParam(r, "id")

	if err := h.svc.Delete(r.Context(), identity, id); err != nil {
		h.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeError maps service errors to the wire. Clients only ever see the
// generic messages below; anything diagnostic was already logged.
func (h *PostHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case posts.IsValidationError(err):
		utils.JSONError(w, http.StatusLengthRequired, "inputs not correct")
	case errors.Is(err, posts.ErrNotFound):
		utils.JSONError(w, http.StatusNotFound, "post not found")
	case errors.Is(err, posts.ErrNotFoundOrForbidden):
		utils.JSONError(w, http.StatusNotFound, "post not found or not owned by you")
	default:
		utils.JSONError(w, http.StatusInternalServerError, "internal error")
	}
}

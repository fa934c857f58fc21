package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"github.com/nilesh507/medium/internal/auth"
	"github.com/nilesh507/medium/internal/config"
	"github.com/nilesh507/medium/internal/models"
	"github.com/nilesh507/medium/internal/utils"
)

// AuthHandler issues the bearer tokens the protected routes verify.
type AuthHandler struct {
	db     *sqlx.DB
	cfg    *config.Config
	logger *slog.Logger
}

func NewAuthHandler(db *sqlx.DB, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg, logger: logger}
}

type signUpReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type signInReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// -------------- SIGN UP ----------------------

func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}

	if !strings.Contains(req.Email, "@") || len(req.Password) < 6 {
		utils.JSONError(w, http.StatusLengthRequired, "inputs not correct")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.logger.Error("bcrypt hash failed", "error", err)
		utils.JSONError(w, http.StatusInternalServerError, "internal error")
		return
	}

	id := uuid.NewString()

	_, err = h.db.ExecContext(r.Context(), `
		INSERT INTO users (id, email, name, password_hash)
		VALUES ($1, $2, $3, $4)
	`, id, req.Email, req.Name, string(hash))
	if err != nil {
		// Unique violation on email is the expected failure here.
		utils.JSONError(w, http.StatusConflict, "email already registered")
		return
	}

	token, err := auth.GenerateToken(id, req.Email, h.cfg.JWTSecret, h.cfg.JWTTTL)
	if err != nil {
		h.logger.Error("token generation failed", "user_id", id, "error", err)
		utils.JSONError(w, http.StatusInternalServerError, "internal error")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"jwt": token})
}

// -------------- SIGN IN ----------------------

func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}

	if req.Email == "" || req.Password == "" {
		utils.JSONError(w, http.StatusLengthRequired, "inputs not correct")
		return
	}

	var u models.User
	err := h.db.GetContext(r.Context(), &u, `
		SELECT id, email, name, password_hash, created_at
		FROM users
		WHERE email = $1
	`, req.Email)

	if errors.Is(err, sql.ErrNoRows) {
		utils.JSONError(w, http.StatusForbidden, "invalid credentials")
		return
	}
	if err != nil {
		h.logger.Error("store signin lookup failed", "error", err)
		utils.JSONError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		utils.JSONError(w, http.StatusForbidden, "invalid credentials")
		return
	}

	token, err := auth.GenerateToken(u.ID, u.Email, h.cfg.JWTSecret, h.cfg.JWTTTL)
	if err != nil {
		h.logger.Error("token generation failed", "user_id", u.ID, "error", err)
		utils.JSONError(w, http.StatusInternalServerError, "internal error")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"jwt": token})
}

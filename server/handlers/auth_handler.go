package handlers

import (
	"log"
	"net/http"
	"time"

	"se-server/auth"
	"se-server/dao/redis"
	"se-server/models/user"
)

// RegisterRequest is the signup payload.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenRequest is the login payload.
type TokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse carries a freshly issued access token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AuthHandler serves account registration and token issuance.
type AuthHandler struct {
	userDao *redis.RedisUserDAO
	tokens  *auth.TokenManager
}

func NewAuthHandler(userDao *redis.RedisUserDAO, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{userDao: userDao, tokens: tokens}
}

// Register handles POST /v1/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}
	if h.userDao.UserExists(req.Username) {
		writeError(w, http.StatusConflict, "username already registered")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Println("Error hashing password:", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	u := user.User{
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: hash,
		IsActive:       true,
		CreatedAt:      time.Now().UTC(),
	}
	if err := h.userDao.UpsertUser(u); err != nil {
		log.Println("Error storing user:", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	log.Printf("[AuthHandler] Registered user %s", u.Username)
	writeJSON(w, http.StatusCreated, u)
}

// Token handles POST /v1/auth/token.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.userDao.GetUser(req.Username)
	if err != nil || !u.IsActive || !auth.VerifyPassword(req.Password, u.HashedPassword) {
		writeError(w, http.StatusUnauthorized, "incorrect username or password")
		return
	}

	token, err := h.tokens.CreateToken(u.Username)
	if err != nil {
		log.Println("Error issuing token:", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Me handles GET /v1/auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.userDao.GetUser(UsernameFrom(r))
	if err != nil {
		writeError(w, http.StatusUnauthorized, "account no longer exists")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/bornholm/taskboard/internal/core/model"
	"github.com/bornholm/taskboard/internal/core/port"
	"github.com/bornholm/taskboard/internal/core/service"
	"github.com/pkg/errors"
)

// AuthHandler exposes signup and login outside of the authenticated API
// mount.
type AuthHandler struct {
	auth *service.Auth
	mux  *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *AuthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewAuthHandler(auth *service.Auth) *AuthHandler {
	h := &AuthHandler{
		auth: auth,
		mux:  &http.ServeMux{},
	}

	h.mux.Handle("POST /signup", http.HandlerFunc(h.handleSignup))
	h.mux.Handle("POST /login", http.HandlerFunc(h.handleLogin))

	return h
}

var _ http.Handler = &AuthHandler{}

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUser(u model.User) User {
	return User{
		ID:        string(u.ID()),
		Name:      u.Name(),
		Email:     u.Email(),
		CreatedAt: u.CreatedAt(),
	}
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) handleSignup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		encodeError(w, r, http.StatusBadRequest, KindValidationError, "could not decode request body")
		return
	}

	user, token, err := h.auth.Signup(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, port.ErrAlreadyExists) {
			encodeError(w, r, http.StatusConflict, KindConflict, "a user with this email already exists")
			return
		}

		handleError(w, r, errors.WithStack(err))
		return
	}

	encodeResponse(w, r, http.StatusCreated, AuthResponse{Token: token, User: toUser(user)})
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		encodeError(w, r, http.StatusBadRequest, KindValidationError, "could not decode request body")
		return
	}

	user, token, err := h.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		handleError(w, r, errors.WithStack(err))
		return
	}

	encodeResponse(w, r, http.StatusOK, AuthResponse{Token: token, User: toUser(user)})
}

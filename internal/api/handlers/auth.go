package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rgalvan/jobtracker-api/internal/api/middleware"
	"github.com/rgalvan/jobtracker-api/internal/api/respond"
	"github.com/rgalvan/jobtracker-api/internal/domain"
	"github.com/rgalvan/jobtracker-api/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required"`
	UserName string `json:"userName" validate:"max=50"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the outward user view. The password hash never
// appears in any payload.
type UserResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	UserName string `json:"userName"`
}

func toUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:       user.ID.String(),
		Email:    user.Email,
		UserName: user.UserName,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Normalize before validating so padded emails don't fail the
	// format check.
	req.Email = domain.NormalizeEmail(req.Email)

	if !validateRequest(w, req) {
		return
	}

	user, err := h.authService.Register(r.Context(), service.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		UserName: req.UserName,
	})
	if err != nil {
		respond.DomainError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toUserResponse(user))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !validateRequest(w, req) {
		return
	}

	user, session, err := h.authService.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respond.DomainError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	respond.JSON(w, http.StatusOK, toUserResponse(user))
}

// Me returns the identity already resolved by the auth middleware.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetCurrentUser(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	respond.JSON(w, http.StatusOK, toUserResponse(user))
}

// Logout tears down the caller's session. It is deliberately outside
// the auth middleware: logging out without a valid session is a no-op,
// not an error.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil {
		if err := h.authService.Logout(r.Context(), cookie.Value); err != nil {
			respond.DomainError(w, err)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	w.WriteHeader(http.StatusNoContent)
}

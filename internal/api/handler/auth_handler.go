package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"portfolio_api/internal/api/middleware"
	"portfolio_api/internal/app/service"
	"portfolio_api/internal/common"
	"portfolio_api/internal/domain/model"
	"portfolio_api/internal/platform/config"

	"github.com/go-chi/chi/v5"
)

type AuthHandler struct {
	authService  *service.AuthService
	authenticate func(http.Handler) http.Handler
}

func NewAuthHandler(authService *service.AuthService, authenticate func(http.Handler) http.Handler) *AuthHandler {
	return &AuthHandler{authService: authService, authenticate: authenticate}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/login", h.login)
	r.Get("/admin-profile", h.adminProfile)

	r.Group(func(protected chi.Router) {
		protected.Use(h.authenticate)
		protected.Post("/logout", h.logout)
		protected.Get("/me", h.me)
		protected.Put("/update", h.update)
		protected.Post("/change-password", h.changePassword)
	})
}

type loginResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Token   string           `json:"token"`
	User    model.PublicUser `json:"user"`
}

type userResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message,omitempty"`
	User    model.PublicUser `json:"user"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	user, token, err := h.authService.Login(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}

	h.setSessionCookie(w, token)
	common.RespondWithJSON(w, http.StatusOK, loginResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
		User:    user.Public(),
	})
}

func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	common.RespondWithJSON(w, http.StatusOK, messageResponse{
		Success: true,
		Message: "Logged out successfully",
	})
}

func (h *AuthHandler) me(w http.ResponseWriter, r *http.Request) {
	authUser, ok := middleware.UserFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}

	user, err := h.authService.GetSelf(r.Context(), authUser.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, userResponse{Success: true, User: user.Public()})
}

func (h *AuthHandler) update(w http.ResponseWriter, r *http.Request) {
	authUser, ok := middleware.UserFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}

	var req service.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	user, err := h.authService.UpdateProfile(r.Context(), authUser.ID, req)
	if err != nil {
		respondError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, userResponse{
		Success: true,
		Message: "Profile updated successfully",
		User:    user.Public(),
	})
}

func (h *AuthHandler) changePassword(w http.ResponseWriter, r *http.Request) {
	authUser, ok := middleware.UserFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}

	var req service.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if err := h.authService.ChangePassword(r.Context(), authUser.ID, req); err != nil {
		respondError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, messageResponse{
		Success: true,
		Message: "Password changed successfully",
	})
}

func (h *AuthHandler) adminProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.authService.AdminProfile(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if profile == nil {
		// Not an error state: the site simply has no admin seeded yet.
		common.RespondWithJSON(w, http.StatusOK, messageResponse{
			Success: false,
			Message: "No admin profile found",
		})
		return
	}

	type adminProfileResponse struct {
		Success bool               `json:"success"`
		User    model.AdminProfile `json:"user"`
	}
	common.RespondWithJSON(w, http.StatusOK, adminProfileResponse{Success: true, User: *profile})
}

// setSessionCookie mirrors the token lifetime: httpOnly always, Secure only
// in production so local development over plain HTTP keeps working.
func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   config.AppConfig.IsProduction(),
		MaxAge:   int(config.AppConfig.JWTExp.Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie overwrites the cookie with an already-expired one.
// The token itself stays valid until its expiry; stateless sessions cannot
// be revoked server-side.
func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
}

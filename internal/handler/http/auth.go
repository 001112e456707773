package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/pointage/timeclock-backend-go/internal/domain/auth"
	"github.com/pointage/timeclock-backend-go/internal/handler/http/response"
	"github.com/pointage/timeclock-backend-go/internal/pkg/jwt"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Profile(w http.ResponseWriter, r *http.Request)
	UnlockKiosk(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService  jwt.Service
	authService auth.AuthService
}

func NewAuthHandler(jwtService jwt.Service, authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:  jwtService,
		authService: authService,
	}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := loginReq.Validate(); err != nil {
		slog.Error("Login validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	sessionTrackReq := auth.SessionTrackingRequest{
		IPAddress: r.RemoteAddr,
		UserAgent: r.UserAgent(),
	}
	tokenResponse, err := a.authService.Login(r.Context(), loginReq, sessionTrackReq)
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	refreshTokenCookie := a.jwtService.RefreshTokenCookie(tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn)
	http.SetCookie(w, refreshTokenCookie)
	slog.Info("User logged in successfully")
	response.Created(w, "User logged in successfully", tokenResponse)
}

// RefreshToken implements AuthHandler.
func (a *AuthHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var refreshTokenReq auth.RefreshTokenRequest

	// Cookie first, JSON body as fallback.
	refreshTokenCookie, err := r.Cookie("refresh_token")
	if err == nil && refreshTokenCookie.Value != "" {
		refreshTokenReq.RefreshToken = refreshTokenCookie.Value
	} else {
		if err := json.NewDecoder(r.Body).Decode(&refreshTokenReq); err != nil {
			slog.Error("RefreshToken decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	if err := refreshTokenReq.Validate(); err != nil {
		slog.Error("RefreshToken validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	sessionTrackReq := auth.SessionTrackingRequest{
		IPAddress: r.RemoteAddr,
		UserAgent: r.UserAgent(),
	}
	tokenResponse, err := a.authService.RefreshToken(r.Context(), refreshTokenReq.RefreshToken, sessionTrackReq)
	if err != nil {
		slog.Error("RefreshToken service error", "error", err)
		response.HandleError(w, err)
		return
	}

	refreshCookie := a.jwtService.RefreshTokenCookie(tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn)
	http.SetCookie(w, refreshCookie)
	slog.Info("Token refreshed successfully")
	response.Created(w, "Token refreshed successfully", tokenResponse)
}

// Logout implements AuthHandler.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	refreshTokenCookie, err := r.Cookie("refresh_token")
	if err != nil || refreshTokenCookie.Value == "" {
		response.BadRequest(w, "Refresh token cookie missing", nil)
		return
	}

	if err := a.authService.Logout(r.Context(), refreshTokenCookie.Value); err != nil {
		slog.Error("Logout service error", "error", err)
		response.HandleError(w, err)
		return
	}

	clearedCookie := &http.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Path:     "/api/v1/auth",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
	http.SetCookie(w, clearedCookie)
	response.SuccessWithMessage(w, "User logged out successfully", nil)
}

// Profile implements AuthHandler.
func (a *AuthHandlerImpl) Profile(w http.ResponseWriter, r *http.Request) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	profile, err := a.authService.Profile(r.Context(), userID)
	if err != nil {
		slog.Error("Profile service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, profile)
}

// UnlockKiosk implements AuthHandler.
func (a *AuthHandlerImpl) UnlockKiosk(w http.ResponseWriter, r *http.Request) {
	var unlockReq auth.KioskUnlockRequest

	if err := json.NewDecoder(r.Body).Decode(&unlockReq); err != nil {
		slog.Error("UnlockKiosk decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := unlockReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	tokenResponse, err := a.authService.UnlockKiosk(r.Context(), unlockReq)
	if err != nil {
		slog.Warn("UnlockKiosk rejected", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Kiosk unlocked", "station_id", tokenResponse.StationID)
	response.Success(w, tokenResponse)
}

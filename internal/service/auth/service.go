package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/pointage/timeclock-backend-go/internal/config"
	"github.com/pointage/timeclock-backend-go/internal/domain/auth"
	"github.com/pointage/timeclock-backend-go/internal/domain/user"
	"github.com/pointage/timeclock-backend-go/internal/pkg/database"
	"github.com/pointage/timeclock-backend-go/internal/pkg/jwt"
	"github.com/pointage/timeclock-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db    *database.DB
	kiosk config.KioskConfig
	user.UserRepository
	jwt.Service
	postgresql.JWTRepository
}

func NewAuthService(db *database.DB, userRepository user.UserRepository, jwtService jwt.Service, jwtRepository postgresql.JWTRepository, kiosk config.KioskConfig) auth.AuthService {
	return &AuthServiceImpl{
		db:             db,
		kiosk:          kiosk,
		UserRepository: userRepository,
		Service:        jwtService,
		JWTRepository:  jwtRepository,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, loginReq auth.LoginRequest, sessionTrackReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse

	userData, err := a.UserRepository.GetByEmail(ctx, loginReq.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	// Kiosk-only profiles carry no password and cannot use the dashboard.
	if userData.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(loginReq.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	err = postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(userData.ID, userData.Email, userData.Role)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}
		tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(userData.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		err = a.CreateRefreshToken(txCtx, userData.ID, tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, sessionTrackReq)
		if err != nil {
			return fmt.Errorf("failed to save refresh token to database: %w", err)
		}
		return nil
	})

	if err != nil {
		return auth.TokenResponse{}, err
	}

	return tokenResponse, nil
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string, sessionTrackReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse

	userID, err := a.validateRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	revoked, err := a.JWTRepository.IsRefreshTokenRevoked(ctx, refreshToken)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to check refresh token: %w", err)
	}
	if revoked {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrUserNotFound
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	// Rotate: revoke the old token and persist the new one atomically.
	err = postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		if err := a.JWTRepository.RevokeRefreshToken(txCtx, refreshToken); err != nil {
			return fmt.Errorf("failed to revoke refresh token: %w", err)
		}

		tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(userData.ID, userData.Email, userData.Role)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}
		tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(userData.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		err = a.CreateRefreshToken(txCtx, userData.ID, tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, sessionTrackReq)
		if err != nil {
			return fmt.Errorf("failed to save refresh token to database: %w", err)
		}
		return nil
	})

	if err != nil {
		return auth.TokenResponse{}, err
	}

	return tokenResponse, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	err := postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		if err := a.JWTRepository.RevokeRefreshToken(txCtx, refreshToken); err != nil {
			return fmt.Errorf("failed to revoke refresh token: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	a.Service.RevokeToken(refreshToken)
	return nil
}

// Profile implements auth.AuthService.
func (a *AuthServiceImpl) Profile(ctx context.Context, userID string) (user.ProfileResponse, error) {
	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.ProfileResponse{}, auth.ErrUserNotFound
		}
		return user.ProfileResponse{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user.ToProfileResponse(userData), nil
}

// UnlockKiosk implements auth.AuthService.
func (a *AuthServiceImpl) UnlockKiosk(ctx context.Context, req auth.KioskUnlockRequest) (auth.KioskTokenResponse, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(a.kiosk.PasswordHash), []byte(req.Password)); err != nil {
		return auth.KioskTokenResponse{}, auth.ErrKioskPasswordWrong
	}

	stationID := req.StationID
	if stationID == "" {
		stationID = "default"
	}

	token, expiresAt, err := a.Service.GenerateKioskToken(stationID, a.kiosk.TokenExpiration)
	if err != nil {
		return auth.KioskTokenResponse{}, fmt.Errorf("failed to create kiosk token: %w", err)
	}

	return auth.KioskTokenResponse{
		KioskToken: token,
		ExpiresIn:  expiresAt,
		StationID:  stationID,
	}, nil
}

// validateRefreshToken checks signature, expiry and type, and returns the
// subject user id.
func (a *AuthServiceImpl) validateRefreshToken(refreshToken string) (string, error) {
	claims, err := jwt.ParseClaims(a.Service, refreshToken)
	if err != nil {
		if errors.Is(err, jwtauth.ErrExpired) {
			return "", auth.ErrTokenExpired
		}
		return "", auth.ErrInvalidToken
	}

	tokenType, _ := claims["type"].(string)
	if tokenType != "refresh" {
		return "", auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", auth.ErrInvalidToken
	}

	return userID, nil
}

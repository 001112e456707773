package auth

import "errors"

// Auth domain errors
var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidToken        = errors.New("invalid or malformed token")
	ErrTokenExpired        = errors.New("token has expired")
	ErrRefreshTokenRevoked = errors.New("refresh token has been revoked")
	ErrUserNotFound        = errors.New("user not found")
	ErrKioskPasswordWrong  = errors.New("incorrect kiosk password")
)

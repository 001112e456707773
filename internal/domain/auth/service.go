package auth

import (
	"context"

	"github.com/pointage/timeclock-backend-go/internal/domain/user"
)

type AuthService interface {
	Login(ctx context.Context, loginReq LoginRequest, sessionTrackReq SessionTrackingRequest) (TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string, sessionTrackReq SessionTrackingRequest) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	Profile(ctx context.Context, userID string) (user.ProfileResponse, error)
	// UnlockKiosk exchanges the shared device password for a kiosk-scoped
	// token. Wrong passwords return ErrKioskPasswordWrong; no lockout state
	// is kept server-side.
	UnlockKiosk(ctx context.Context, req KioskUnlockRequest) (KioskTokenResponse, error)
}

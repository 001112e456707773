package auth

import (
	"github.com/pointage/timeclock-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r *RefreshTokenRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.RefreshToken) {
		errs = append(errs, validator.ValidationError{
			Field:   "refresh_token",
			Message: "refresh_token is required",
		})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// KioskUnlockRequest carries the shared-device password typed on the kiosk
// lock screen.
type KioskUnlockRequest struct {
	Password  string `json:"password"`
	StationID string `json:"station_id"`
}

func (r *KioskUnlockRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SessionTrackingRequest records where a refresh token was issued from.
type SessionTrackingRequest struct {
	UserAgent string
	IPAddress string
}

type TokenResponse struct {
	AccessToken           string `json:"access_token"`
	AccessTokenExpiresIn  int64  `json:"access_token_expires_in"`
	RefreshToken          string `json:"-"` // delivered via HttpOnly cookie
	RefreshTokenExpiresIn int64  `json:"-"`
}

type KioskTokenResponse struct {
	KioskToken string `json:"kiosk_token"`
	ExpiresIn  int64  `json:"expires_in"`
	StationID  string `json:"station_id"`
}

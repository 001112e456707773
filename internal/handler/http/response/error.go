package response

import (
	"errors"
	"net/http"

	"github.com/pointage/timeclock-backend-go/internal/domain/auth"
	"github.com/pointage/timeclock-backend-go/internal/domain/leave"
	"github.com/pointage/timeclock-backend-go/internal/domain/salary"
	"github.com/pointage/timeclock-backend-go/internal/domain/timeclock"
	"github.com/pointage/timeclock-backend-go/internal/domain/user"
	"github.com/pointage/timeclock-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrKioskPasswordWrong):
		Unauthorized(w, "Incorrect kiosk password")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrCannotDeleteSelf):
		BadRequest(w, "Cannot delete your own account", nil)
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Timeclock domain errors
	case errors.Is(err, timeclock.ErrAlreadyClockedIn):
		Conflict(w, "You are already clocked in")
	case errors.Is(err, timeclock.ErrNotClockedIn):
		Conflict(w, "You must clock in first")
	case errors.Is(err, timeclock.ErrRecordNotFound):
		NotFound(w, "Time record not found")
	case errors.Is(err, timeclock.ErrUnauthorizedOwner):
		Forbidden(w, "Time record belongs to another user")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "End date must not be before start date", nil)
	case errors.Is(err, leave.ErrUnauthorizedOwner):
		Forbidden(w, "Leave request belongs to another user")

	// Salary domain errors
	case errors.Is(err, salary.ErrInvalidMonth):
		BadRequest(w, "Month must be in YYYY-MM format", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

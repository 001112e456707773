package leave

import "errors"

// Leave domain errors
var (
	ErrLeaveRequestNotFound         = errors.New("leave request not found")
	ErrLeaveRequestAlreadyProcessed = errors.New("leave request has already been approved or rejected")
	ErrInvalidDateRange             = errors.New("end date must not be before start date")
	ErrUnauthorizedOwner            = errors.New("leave request belongs to another user")
)

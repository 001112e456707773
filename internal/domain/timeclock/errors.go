package timeclock

import "errors"

// Timeclock domain errors
var (
	ErrAlreadyClockedIn  = errors.New("you are already clocked in")
	ErrNotClockedIn      = errors.New("you must clock in first")
	ErrRecordNotFound    = errors.New("time record not found")
	ErrUnauthorizedOwner = errors.New("time record belongs to another user")
)

package salary

import "errors"

// Salary domain errors
var (
	ErrInvalidMonth     = errors.New("month must be in YYYY-MM format")
	ErrSettingsNotFound = errors.New("salary settings not found")
)

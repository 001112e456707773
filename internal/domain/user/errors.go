package user

import "errors"

// User domain errors
var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailExists            = errors.New("email already registered")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
	ErrCannotDeleteSelf       = errors.New("cannot delete your own account")
)

package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Manages employees, leaves, settings, reports
	RoleEmployee Role = "employee" // Clocks in/out, sees own dashboard
)

// User is an account plus its profile. The clocking kiosk identifies users by
// ID (scanned from the badge QR); the dashboard and admin panel authenticate
// with email and password.
type User struct {
	ID           string
	Email        string
	PasswordHash *string
	Role         Role
	FullName     string
	Username     *string
	Department   *string
	AvatarURL    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if user can access the admin panel
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

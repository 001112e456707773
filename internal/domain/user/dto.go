package user

import (
	"github.com/pointage/timeclock-backend-go/internal/pkg/validator"
)

type ProfileResponse struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	FullName   string  `json:"full_name"`
	Username   *string `json:"username,omitempty"`
	Role       string  `json:"role"`
	Department *string `json:"department,omitempty"`
	AvatarURL  *string `json:"avatar_url,omitempty"`
}

// ToProfileResponse maps a User to its public profile shape.
func ToProfileResponse(u User) ProfileResponse {
	return ProfileResponse{
		ID:         u.ID,
		Email:      u.Email,
		FullName:   u.FullName,
		Username:   u.Username,
		Role:       string(u.Role),
		Department: u.Department,
		AvatarURL:  u.AvatarURL,
	}
}

type CreateEmployeeRequest struct {
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	FullName   string  `json:"full_name"`
	Username   *string `json:"username"`
	Department *string `json:"department"`
	Role       string  `json:"role"`
}

func (r *CreateEmployeeRequest) Validate() error {
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
	} else if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters long",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	} else if len(r.FullName) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not exceed 255 characters",
		})
	}

	if r.Role == "" {
		r.Role = string(RoleEmployee)
	}
	if !validator.IsInSlice(r.Role, []string{string(RoleAdmin), string(RoleEmployee)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be either admin or employee",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	Email      *string `json:"email"`
	Password   *string `json:"password"`
	FullName   *string `json:"full_name"`
	Username   *string `json:"username"`
	Department *string `json:"department"`
	Role       *string `json:"role"`
	AvatarURL  *string `json:"avatar_url"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if r.Password != nil && len(*r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters long",
		})
	}
	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be empty",
		})
	}
	if r.Role != nil && !validator.IsInSlice(*r.Role, []string{string(RoleAdmin), string(RoleEmployee)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be either admin or employee",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

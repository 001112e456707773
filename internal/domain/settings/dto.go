package settings

import (
	"github.com/pointage/timeclock-backend-go/internal/pkg/validator"
)

type SettingsResponse struct {
	AppName string `json:"app_name"`
	AppLogo string `json:"app_logo"`
	Theme   string `json:"theme"`
}

func ToSettingsResponse(s AppSettings) SettingsResponse {
	return SettingsResponse{
		AppName: s.AppName,
		AppLogo: s.AppLogo,
		Theme:   s.Theme,
	}
}

type UpdateSettingsRequest struct {
	AppName *string `json:"app_name"`
	AppLogo *string `json:"app_logo"`
	Theme   *string `json:"theme"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.AppName != nil {
		if validator.IsEmpty(*r.AppName) {
			errs = append(errs, validator.ValidationError{
				Field:   "app_name",
				Message: "app_name must not be empty",
			})
		} else if len(*r.AppName) > 100 {
			errs = append(errs, validator.ValidationError{
				Field:   "app_name",
				Message: "app_name must not exceed 100 characters",
			})
		}
	}
	if r.Theme != nil && !validator.IsInSlice(*r.Theme, []string{"light", "dark"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "theme",
			Message: "theme must be either light or dark",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

package leave

import (
	"github.com/pointage/timeclock-backend-go/internal/pkg/validator"
)

type LeaveResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	UserName  *string `json:"user_name,omitempty"`
	LeaveType string  `json:"leave_type"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Status    string  `json:"status"`
	Reason    *string `json:"reason,omitempty"`
	Days      int     `json:"days"`
}

func ToLeaveResponse(l LeaveRequest) LeaveResponse {
	return LeaveResponse{
		ID:        l.ID,
		UserID:    l.UserID,
		UserName:  l.UserName,
		LeaveType: string(l.LeaveType),
		StartDate: l.StartDate.Format("2006-01-02"),
		EndDate:   l.EndDate.Format("2006-01-02"),
		Status:    string(l.Status),
		Reason:    l.Reason,
		Days:      l.Days(),
	}
}

func ToLeaveResponses(leaves []LeaveRequest) []LeaveResponse {
	out := make([]LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		out = append(out, ToLeaveResponse(l))
	}
	return out
}

type CreateLeaveRequest struct {
	LeaveType string  `json:"leave_type"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Reason    *string `json:"reason"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.LeaveType, []string{
		string(TypeVacation), string(TypeSick), string(TypePersonal), string(TypeOther),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of vacation, sick, personal, other",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date (YYYY-MM-DD)",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date (YYYY-MM-DD)",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateLeaveRequest struct {
	LeaveType *string `json:"leave_type"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	Status    *string `json:"status"`
	Reason    *string `json:"reason"`
}

func (r *UpdateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.LeaveType != nil && !validator.IsInSlice(*r.LeaveType, []string{
		string(TypeVacation), string(TypeSick), string(TypePersonal), string(TypeOther),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of vacation, sick, personal, other",
		})
	}
	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be a valid date (YYYY-MM-DD)",
			})
		}
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be a valid date (YYYY-MM-DD)",
			})
		}
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{
		string(StatusPending), string(StatusApproved), string(StatusRejected),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of pending, approved, rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

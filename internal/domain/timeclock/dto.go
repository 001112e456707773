package timeclock

import (
	"time"

	"github.com/pointage/timeclock-backend-go/internal/pkg/validator"
)

// StatusResponse is the dashboard's view of the current day.
type StatusResponse struct {
	State          ClockState       `json:"state"`
	ActiveRecordID *string          `json:"active_record_id,omitempty"`
	TodayWorkTime  string           `json:"today_work_time"`
	TodayRecords   []RecordResponse `json:"today_records"`
}

// WeeklyStatsResponse is the dashboard's weekly hours chart.
type WeeklyStatsResponse struct {
	Days       []DayBucket `json:"days"`
	TotalHours float64     `json:"total_hours"`
}

type RecordResponse struct {
	ID       string  `json:"id"`
	UserID   string  `json:"user_id"`
	UserName *string `json:"user_name,omitempty"`
	Date     string  `json:"date"`
	ClockIn  string  `json:"clock_in"`
	ClockOut *string `json:"clock_out,omitempty"`
}

// ToRecordResponse maps a TimeRecord to its wire shape.
func ToRecordResponse(r TimeRecord) RecordResponse {
	resp := RecordResponse{
		ID:       r.ID,
		UserID:   r.UserID,
		UserName: r.UserName,
		Date:     r.Date.Format("2006-01-02"),
		ClockIn:  r.ClockIn.Format(time.RFC3339),
	}
	if r.ClockOut != nil {
		out := r.ClockOut.Format(time.RFC3339)
		resp.ClockOut = &out
	}
	return resp
}

func ToRecordResponses(records []TimeRecord) []RecordResponse {
	out := make([]RecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, ToRecordResponse(r))
	}
	return out
}

// ScanRequest is the kiosk's clock toggle call: a scanned badge id.
type ScanRequest struct {
	UserID    string `json:"user_id"`
	StationID string `json:"station_id"`
}

func (r *ScanRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	} else if !validator.IsValidUUID(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id must be a valid UUID",
		})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ScanResponse mirrors the record-time-entry function payload: the server
// decides the direction, the kiosk only renders it.
type ScanResponse struct {
	Action ClockAction  `json:"action"`
	User   ScanUserInfo `json:"user"`
	At     string       `json:"at"`
}

type ScanUserInfo struct {
	UserName string `json:"userName"`
}

// UpdateRecordRequest is the admin correction form for a single record.
type UpdateRecordRequest struct {
	ClockIn  *string `json:"clock_in"`
	ClockOut *string `json:"clock_out"`
}

func (r *UpdateRecordRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.ClockIn != nil {
		if _, ok := validator.IsValidDateTime(*r.ClockIn); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "clock_in",
				Message: "clock_in must be a valid ISO8601 timestamp",
			})
		}
	}
	if r.ClockOut != nil && *r.ClockOut != "" {
		if _, ok := validator.IsValidDateTime(*r.ClockOut); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "clock_out",
				Message: "clock_out must be a valid ISO8601 timestamp",
			})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

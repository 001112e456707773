package leave

import "time"

type LeaveType string

const (
	TypeVacation LeaveType = "vacation"
	TypeSick     LeaveType = "sick"
	TypePersonal LeaveType = "personal"
	TypeOther    LeaveType = "other"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// LeaveRequest covers an inclusive calendar range. Only approved requests
// participate in salary and attendance computation.
type LeaveRequest struct {
	ID        string
	UserID    string
	LeaveType LeaveType
	StartDate time.Time
	EndDate   time.Time
	Status    Status
	Reason    *string
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	UserName *string
}

// Days returns the inclusive length of the range in calendar days.
func (l LeaveRequest) Days() int {
	if l.EndDate.Before(l.StartDate) {
		return 0
	}
	return int(l.EndDate.Sub(l.StartDate).Hours()/24) + 1
}

// OverlapDays counts the inclusive days the leave range shares with
// [winStart, winEnd], clipping the leave to the window first. A leave
// entirely outside the window contributes 0.
func (l LeaveRequest) OverlapDays(winStart, winEnd time.Time) int {
	start := l.StartDate
	if winStart.After(start) {
		start = winStart
	}
	end := l.EndDate
	if winEnd.Before(end) {
		end = winEnd
	}
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

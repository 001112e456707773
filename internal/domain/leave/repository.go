package leave

import (
	"context"
	"time"
)

// LeaveFilter narrows leave request listings.
type LeaveFilter struct {
	UserID    *string
	Status    *Status
	LeaveType *LeaveType
	Page      int
	Limit     int
}

// LeaveRepository defines data access methods for leave requests.
type LeaveRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)

	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// List retrieves leave requests with filters and pagination, newest
	// first.
	List(ctx context.Context, filter LeaveFilter) ([]LeaveRequest, int64, error)

	// ListApprovedIntersecting returns a user's approved leaves whose range
	// intersects [from, to]. Feeds the salary calculator.
	ListApprovedIntersecting(ctx context.Context, userID string, from, to time.Time) ([]LeaveRequest, error)

	ListAll(ctx context.Context) ([]LeaveRequest, error)

	Update(ctx context.Context, req LeaveRequest) error

	Delete(ctx context.Context, id string) error

	DeleteByUser(ctx context.Context, userID string) error
}

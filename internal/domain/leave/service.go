package leave

import "context"

// LeaveService covers employee self-service requests and the admin review
// queue.
type LeaveService interface {
	// Create files a request for the caller, always pending.
	Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)

	// ListMine returns the caller's own requests.
	ListMine(ctx context.Context) ([]LeaveResponse, error)

	// Admin operations
	List(ctx context.Context, filter LeaveFilter) ([]LeaveResponse, int64, error)
	Update(ctx context.Context, id string, req UpdateLeaveRequest) (LeaveResponse, error)
	Approve(ctx context.Context, id string) (LeaveResponse, error)
	Reject(ctx context.Context, id string) (LeaveResponse, error)
	Delete(ctx context.Context, id string) error
}

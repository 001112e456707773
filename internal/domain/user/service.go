package user

import "context"

// EmployeeService covers the admin employees tab: profile CRUD plus badge
// rendering for the kiosk QR flow.
type EmployeeService interface {
	List(ctx context.Context) ([]ProfileResponse, error)
	Get(ctx context.Context, id string) (ProfileResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (ProfileResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (ProfileResponse, error)
	// Delete removes the account and everything it owns (time records, leave
	// requests, sessions) in one transaction.
	Delete(ctx context.Context, id string) error
	// Badge renders the employee id as a QR PNG for the clocking kiosk.
	Badge(ctx context.Context, id string, size int) ([]byte, error)
}

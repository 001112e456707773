package timeclock

import (
	"context"
	"time"
)

// RecordFilter narrows the admin attendance listing.
type RecordFilter struct {
	UserID   *string
	DateFrom *time.Time
	DateTo   *time.Time
	OpenOnly bool
	Page     int
	Limit    int
}

// TimeRecordRepository defines data access methods for time records.
type TimeRecordRepository interface {
	Create(ctx context.Context, record TimeRecord) (TimeRecord, error)

	GetByID(ctx context.Context, id string) (TimeRecord, error)

	// GetOpenRecord returns the user's open record, locking it when called
	// inside a transaction so concurrent kiosk toggles serialize. Returns nil
	// when the user is not clocked in.
	GetOpenRecord(ctx context.Context, userID string) (*TimeRecord, error)

	// SetClockOut closes a record. It is the only mutation a record sees
	// during the normal flow.
	SetClockOut(ctx context.Context, id string, at time.Time) (TimeRecord, error)

	// ListByClockInRange returns a user's records whose clock-in falls in
	// [from, to), most recent first. Used for today's state derivation.
	ListByClockInRange(ctx context.Context, userID string, from, to time.Time) ([]TimeRecord, error)

	// ListByDateRange returns a user's records whose logical date falls in
	// [from, to]. Used for weekly and monthly aggregation.
	ListByDateRange(ctx context.Context, userID string, from, to time.Time) ([]TimeRecord, error)

	// List retrieves records with filters and pagination for the admin
	// attendance tab.
	List(ctx context.Context, filter RecordFilter) ([]TimeRecord, int64, error)

	ListAll(ctx context.Context) ([]TimeRecord, error)

	Update(ctx context.Context, record TimeRecord) error

	Delete(ctx context.Context, id string) error

	DeleteByUser(ctx context.Context, userID string) error

	// DeleteAll is the admin bulk wipe behind the danger-zone button.
	DeleteAll(ctx context.Context) error
}

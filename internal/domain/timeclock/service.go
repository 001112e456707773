package timeclock

import "context"

// TimeclockService owns the clock-state machine. The dashboard buttons use
// the explicit ClockIn/ClockOut transitions over locally derived state; the
// kiosk uses Toggle, where the server resolves the direction atomically.
// Both express the same policy through DeriveClockState.
type TimeclockService interface {
	// Status derives the caller's state from today's records.
	Status(ctx context.Context) (StatusResponse, error)

	// ClockIn opens a record for the caller. Rejected with
	// ErrAlreadyClockedIn when an open record exists; no write happens.
	ClockIn(ctx context.Context) (StatusResponse, error)

	// ClockOut closes the caller's open record. Rejected with
	// ErrNotClockedIn when there is none.
	ClockOut(ctx context.Context) (StatusResponse, error)

	// Toggle is the kiosk's atomic entry-or-exit resolution for a scanned
	// user id. The open-record check and the write happen in one
	// transaction.
	Toggle(ctx context.Context, userID string) (ScanResponse, error)

	// WeeklyStats returns the caller's current-week hour buckets.
	WeeklyStats(ctx context.Context) (WeeklyStatsResponse, error)

	// Admin operations
	List(ctx context.Context, filter RecordFilter) ([]RecordResponse, int64, error)
	UpdateRecord(ctx context.Context, id string, req UpdateRecordRequest) (RecordResponse, error)
	DeleteRecord(ctx context.Context, id string) error
	DeleteAllRecords(ctx context.Context) error
}

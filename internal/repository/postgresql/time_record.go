package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pointage/timeclock-backend-go/internal/domain/timeclock"
	"github.com/pointage/timeclock-backend-go/internal/pkg/database"
)

type timeRecordRepository struct {
	db *database.DB
}

func NewTimeRecordRepository(db *database.DB) timeclock.TimeRecordRepository {
	return &timeRecordRepository{db: db}
}

const timeRecordColumns = `
	tr.id, tr.user_id, tr.date, tr.clock_in, tr.clock_out,
	tr.created_at, tr.updated_at, u.full_name
`

func scanTimeRecord(row pgx.Row) (timeclock.TimeRecord, error) {
	var rec timeclock.TimeRecord
	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.Date, &rec.ClockIn, &rec.ClockOut,
		&rec.CreatedAt, &rec.UpdatedAt, &rec.UserName,
	)
	return rec, err
}

// Create implements timeclock.TimeRecordRepository.
func (r *timeRecordRepository) Create(ctx context.Context, record timeclock.TimeRecord) (timeclock.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_records (user_id, date, clock_in)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.UserID,
		record.Date,
		record.ClockIn,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		return timeclock.TimeRecord{}, fmt.Errorf("failed to create time record: %w", err)
	}

	return record, nil
}

// GetByID implements timeclock.TimeRecordRepository.
func (r *timeRecordRepository) GetByID(ctx context.Context, id string) (timeclock.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeRecordColumns + `
		FROM time_records tr
		JOIN users u ON u.id = tr.user_id
		WHERE tr.id = $1
	`

	rec, err := scanTimeRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timeclock.TimeRecord{}, timeclock.ErrRecordNotFound
		}
		return timeclock.TimeRecord{}, fmt.Errorf("failed to get time record: %w", err)
	}

	return rec, nil
}

// GetOpenRecord implements timeclock.TimeRecordRepository. Inside a
// transaction the row is locked so concurrent kiosk toggles serialize on the
// same user.
func (r *timeRecordRepository) GetOpenRecord(ctx context.Context, userID string) (*timeclock.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeRecordColumns + `
		FROM time_records tr
		JOIN users u ON u.id = tr.user_id
		WHERE tr.user_id = $1
		  AND tr.clock_out IS NULL
		ORDER BY tr.clock_in DESC
		LIMIT 1
		FOR UPDATE OF tr
	`

	rec, err := scanTimeRecord(q.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get open record: %w", err)
	}

	return &rec, nil
}

// SetClockOut implements timeclock.TimeRecordRepository.
func (r *timeRecordRepository) SetClockOut(ctx context.Context, id string, at time.Time) (timeclock.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_records tr
		SET clock_out = $2, updated_at = NOW()
		FROM users u
		WHERE tr.id = $1
		  AND u.id = tr.user_id
		RETURNING ` + timeRecordColumns + `
	`

	rec, err := scanTimeRecord(q.QueryRow(ctx, query, id, at))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timeclock.TimeRecord{}, timeclock.ErrRecordNotFound
		}
		return timeclock.TimeRecord{}, fmt.Errorf("failed to set clock out: %w", err)
	}

	return rec, nil
}

// ListByClockInRange implements timeclock.TimeRecordRepository.
func (r *timeRecordRepository) ListByClockInRange(ctx context.Context, userID string, from, to time.Time) ([]timeclock.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeRecordColumns + `
		FROM time_records tr
		JOIN users u ON u.id = tr.user_id
		WHERE tr.user_id = $1
		  AND tr.clock_in >= $2
		  AND tr.clock_in < $3
		ORDER BY tr.clock_in DESC
	`

	return r.queryRecords(ctx, q, query, userID, from, to)
}

// ListByDateRange implements timeclock.TimeRecordRepository.
func (r *timeRecordRepository) ListByDateRange(ctx context.Context, userID string, from, to time.Time) ([]timeclock.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeRecordColumns + `
		FROM time_records tr
		JOIN users u ON u.id = tr.user_id
		WHERE tr.user_id = $1
		  AND tr.date >= $2
		  AND tr.date <= $3
		ORDER BY tr.date, tr.clock_in
	`

	return r.queryRecords(ctx, q, query, userID, from, to)
}

// List implements timeclock.TimeRecordRepository.
func (r *timeRecordRepository) List(ctx context.Context, filter timeclock.RecordFilter) ([]timeclock.TimeRecord, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.UserID != nil {
		conditions = append(conditions, fmt.Sprintf("tr.user_id = $%d", argIdx))
		args = append(args, *filter.UserID)
		argIdx++
	}
	if filter.DateFrom != nil {
		conditions = append(conditions, fmt.Sprintf("tr.date >= $%d", argIdx))
		args = append(args, *filter.DateFrom)
		argIdx++
	}
	if filter.DateTo != nil {
		conditions = append(conditions, fmt.Sprintf("tr.date <= $%d", argIdx))
		args = append(args, *filter.DateTo)
		argIdx++
	}
	if filter.OpenOnly {
		conditions = append(conditions, "tr.clock_out IS NULL")
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) FROM time_records tr WHERE " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count time records: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit

	query := fmt.Sprintf(`
		SELECT %s
		FROM time_records tr
		JOIN users u ON u.id = tr.user_id
		WHERE %s
		ORDER BY tr.clock_in DESC
		LIMIT $%d OFFSET $%d
	`, timeRecordColumns, where, argIdx, argIdx+1)
	args = append(args, limit, offset)

	records, err := r.queryRecords(ctx, q, query, args...)
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// ListAll implements timeclock.TimeRecordRepository.
func (r *timeRecordRepository) ListAll(ctx context.Context) ([]timeclock.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeRecordColumns + `
		FROM time_records tr
		JOIN users u ON u.id = tr.user_id
		ORDER BY tr.clock_in DESC
	`

	return r.queryRecords(ctx, q, query)
}

// Update implements timeclock.TimeRecordRepository.
func (r *timeRecordRepository) Update(ctx context.Context, record timeclock.TimeRecord) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_records
		SET date = $2, clock_in = $3, clock_out = $4, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, record.ID, record.Date, record.ClockIn, record.ClockOut)
	if err != nil {
		return fmt.Errorf("failed to update time record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timeclock.ErrRecordNotFound
	}

	return nil
}

// Delete implements timeclock.TimeRecordRepository.
func (r *timeRecordRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM time_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete time record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timeclock.ErrRecordNotFound
	}

	return nil
}

// DeleteByUser implements timeclock.TimeRecordRepository.
func (r *timeRecordRepository) DeleteByUser(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM time_records WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to delete user time records: %w", err)
	}

	return nil
}

// DeleteAll implements timeclock.TimeRecordRepository.
func (r *timeRecordRepository) DeleteAll(ctx context.Context) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM time_records`); err != nil {
		return fmt.Errorf("failed to delete all time records: %w", err)
	}

	return nil
}

func (r *timeRecordRepository) queryRecords(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]timeclock.TimeRecord, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query time records: %w", err)
	}
	defer rows.Close()

	var records []timeclock.TimeRecord
	for rows.Next() {
		rec, err := scanTimeRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read time records: %w", err)
	}

	return records, nil
}

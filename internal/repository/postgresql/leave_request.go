package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pointage/timeclock-backend-go/internal/domain/leave"
	"github.com/pointage/timeclock-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

const leaveColumns = `
	lr.id, lr.user_id, lr.leave_type, lr.start_date, lr.end_date,
	lr.status, lr.reason, lr.created_at, lr.updated_at, u.full_name
`

func scanLeave(row pgx.Row) (leave.LeaveRequest, error) {
	var l leave.LeaveRequest
	err := row.Scan(
		&l.ID, &l.UserID, &l.LeaveType, &l.StartDate, &l.EndDate,
		&l.Status, &l.Reason, &l.CreatedAt, &l.UpdatedAt, &l.UserName,
	)
	return l, err
}

// Create implements leave.LeaveRepository.
func (r *leaveRepository) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (user_id, leave_type, start_date, end_date, status, reason)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.UserID,
		req.LeaveType,
		req.StartDate,
		req.EndDate,
		req.Status,
		req.Reason,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)

	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return req, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests lr
		JOIN users u ON u.id = lr.user_id
		WHERE lr.id = $1
	`

	l, err := scanLeave(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return l, nil
}

// List implements leave.LeaveRepository.
func (r *leaveRepository) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.UserID != nil {
		conditions = append(conditions, fmt.Sprintf("lr.user_id = $%d", argIdx))
		args = append(args, *filter.UserID)
		argIdx++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("lr.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.LeaveType != nil {
		conditions = append(conditions, fmt.Sprintf("lr.leave_type = $%d", argIdx))
		args = append(args, *filter.LeaveType)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) FROM leave_requests lr WHERE " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
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
		FROM leave_requests lr
		JOIN users u ON u.id = lr.user_id
		WHERE %s
		ORDER BY lr.created_at DESC
		LIMIT $%d OFFSET $%d
	`, leaveColumns, where, argIdx, argIdx+1)
	args = append(args, limit, offset)

	leaves, err := r.queryLeaves(ctx, q, query, args...)
	if err != nil {
		return nil, 0, err
	}

	return leaves, total, nil
}

// ListApprovedIntersecting implements leave.LeaveRepository.
func (r *leaveRepository) ListApprovedIntersecting(ctx context.Context, userID string, from, to time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests lr
		JOIN users u ON u.id = lr.user_id
		WHERE lr.user_id = $1
		  AND lr.status = 'approved'
		  AND lr.start_date <= $3
		  AND lr.end_date >= $2
		ORDER BY lr.start_date
	`

	return r.queryLeaves(ctx, q, query, userID, from, to)
}

// ListAll implements leave.LeaveRepository.
func (r *leaveRepository) ListAll(ctx context.Context) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests lr
		JOIN users u ON u.id = lr.user_id
		ORDER BY lr.created_at DESC
	`

	return r.queryLeaves(ctx, q, query)
}

// Update implements leave.LeaveRepository.
func (r *leaveRepository) Update(ctx context.Context, req leave.LeaveRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET leave_type = $2, start_date = $3, end_date = $4, status = $5, reason = $6, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, req.ID, req.LeaveType, req.StartDate, req.EndDate, req.Status, req.Reason)
	if err != nil {
		return fmt.Errorf("failed to update leave request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}

	return nil
}

// Delete implements leave.LeaveRepository.
func (r *leaveRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leave_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete leave request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}

	return nil
}

// DeleteByUser implements leave.LeaveRepository.
func (r *leaveRepository) DeleteByUser(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM leave_requests WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to delete user leave requests: %w", err)
	}

	return nil
}

func (r *leaveRepository) queryLeaves(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]leave.LeaveRequest, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var leaves []leave.LeaveRequest
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		leaves = append(leaves, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leave requests: %w", err)
	}

	return leaves, nil
}

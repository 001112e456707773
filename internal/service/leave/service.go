package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/pointage/timeclock-backend-go/internal/domain/leave"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
}

func NewLeaveService(leaveRepository leave.LeaveRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository: leaveRepository,
	}
}

// Create implements leave.LeaveService.
func (s *LeaveServiceImpl) Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	created, err := s.LeaveRepository.Create(ctx, leave.LeaveRequest{
		UserID:    userID,
		LeaveType: leave.LeaveType(req.LeaveType),
		StartDate: start,
		EndDate:   end,
		Status:    leave.StatusPending,
		Reason:    req.Reason,
	})
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return leave.ToLeaveResponse(created), nil
}

// ListMine implements leave.LeaveService.
func (s *LeaveServiceImpl) ListMine(ctx context.Context) ([]leave.LeaveResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	leaves, _, err := s.LeaveRepository.List(ctx, leave.LeaveFilter{UserID: &userID, Limit: 100})
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	return leave.ToLeaveResponses(leaves), nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveResponse, int64, error) {
	leaves, total, err := s.LeaveRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return leave.ToLeaveResponses(leaves), total, nil
}

// Update implements leave.LeaveService.
func (s *LeaveServiceImpl) Update(ctx context.Context, id string, req leave.UpdateLeaveRequest) (leave.LeaveResponse, error) {
	current, err := s.LeaveRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if req.LeaveType != nil {
		current.LeaveType = leave.LeaveType(*req.LeaveType)
	}
	if req.StartDate != nil {
		current.StartDate, _ = time.Parse("2006-01-02", *req.StartDate)
	}
	if req.EndDate != nil {
		current.EndDate, _ = time.Parse("2006-01-02", *req.EndDate)
	}
	if req.Status != nil {
		current.Status = leave.Status(*req.Status)
	}
	if req.Reason != nil {
		current.Reason = req.Reason
	}

	if current.EndDate.Before(current.StartDate) {
		return leave.LeaveResponse{}, leave.ErrInvalidDateRange
	}

	if err := s.LeaveRepository.Update(ctx, current); err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	return leave.ToLeaveResponse(current), nil
}

// Approve implements leave.LeaveService.
func (s *LeaveServiceImpl) Approve(ctx context.Context, id string) (leave.LeaveResponse, error) {
	return s.setStatus(ctx, id, leave.StatusApproved)
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, id string) (leave.LeaveResponse, error) {
	return s.setStatus(ctx, id, leave.StatusRejected)
}

// Delete implements leave.LeaveService.
func (s *LeaveServiceImpl) Delete(ctx context.Context, id string) error {
	return s.LeaveRepository.Delete(ctx, id)
}

func (s *LeaveServiceImpl) setStatus(ctx context.Context, id string, status leave.Status) (leave.LeaveResponse, error) {
	current, err := s.LeaveRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if current.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	current.Status = status
	if err := s.LeaveRepository.Update(ctx, current); err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	return leave.ToLeaveResponse(current), nil
}

func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing")
	}
	return userID, nil
}

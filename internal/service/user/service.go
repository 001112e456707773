package user

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/pointage/timeclock-backend-go/internal/domain/leave"
	"github.com/pointage/timeclock-backend-go/internal/domain/timeclock"
	"github.com/pointage/timeclock-backend-go/internal/domain/user"
	"github.com/pointage/timeclock-backend-go/internal/pkg/database"
	"github.com/pointage/timeclock-backend-go/internal/pkg/qrbadge"
	"github.com/pointage/timeclock-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	db *database.DB
	user.UserRepository
	timeclock.TimeRecordRepository
	leave.LeaveRepository
}

func NewEmployeeService(db *database.DB, userRepository user.UserRepository, timeRecordRepository timeclock.TimeRecordRepository, leaveRepository leave.LeaveRepository) user.EmployeeService {
	return &EmployeeServiceImpl{
		db:                   db,
		UserRepository:       userRepository,
		TimeRecordRepository: timeRecordRepository,
		LeaveRepository:      leaveRepository,
	}
}

// List implements user.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]user.ProfileResponse, error) {
	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	out := make([]user.ProfileResponse, 0, len(users))
	for _, u := range users {
		out = append(out, user.ToProfileResponse(u))
	}
	return out, nil
}

// Get implements user.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (user.ProfileResponse, error) {
	u, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.ProfileResponse{}, err
	}
	return user.ToProfileResponse(u), nil
}

// Create implements user.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req user.CreateEmployeeRequest) (user.ProfileResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.ProfileResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	hashed := string(hash)

	created, err := s.UserRepository.Create(ctx, user.User{
		Email:        req.Email,
		PasswordHash: &hashed,
		Role:         user.Role(req.Role),
		FullName:     req.FullName,
		Username:     req.Username,
		Department:   req.Department,
	})
	if err != nil {
		return user.ProfileResponse{}, err
	}

	return user.ToProfileResponse(created), nil
}

// Update implements user.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req user.UpdateEmployeeRequest) (user.ProfileResponse, error) {
	current, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.ProfileResponse{}, err
	}

	if req.Email != nil {
		current.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return user.ProfileResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		hashed := string(hash)
		current.PasswordHash = &hashed
	}
	if req.FullName != nil {
		current.FullName = *req.FullName
	}
	if req.Username != nil {
		current.Username = req.Username
	}
	if req.Department != nil {
		current.Department = req.Department
	}
	if req.Role != nil {
		current.Role = user.Role(*req.Role)
	}
	if req.AvatarURL != nil {
		current.AvatarURL = req.AvatarURL
	}

	if err := s.UserRepository.Update(ctx, current); err != nil {
		return user.ProfileResponse{}, err
	}

	return user.ToProfileResponse(current), nil
}

// Delete implements user.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if callerID, err := callerIDFromContext(ctx); err == nil && callerID == id {
		return user.ErrCannotDeleteSelf
	}

	if _, err := s.UserRepository.GetByID(ctx, id); err != nil {
		return err
	}

	// The account and everything it owns go together or not at all.
	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.TimeRecordRepository.DeleteByUser(txCtx, id); err != nil {
			return fmt.Errorf("failed to delete time records: %w", err)
		}
		if err := s.LeaveRepository.DeleteByUser(txCtx, id); err != nil {
			return fmt.Errorf("failed to delete leave requests: %w", err)
		}
		if err := s.UserRepository.Delete(txCtx, id); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		return nil
	})
}

// Badge implements user.EmployeeService.
func (s *EmployeeServiceImpl) Badge(ctx context.Context, id string, size int) ([]byte, error) {
	u, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if size <= 0 {
		size = qrbadge.DefaultSize
	}

	png, err := qrbadge.Generate(u.ID, size)
	if err != nil {
		return nil, fmt.Errorf("failed to render badge: %w", err)
	}
	return png, nil
}

func callerIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", err
	}
	callerID, ok := claims["user_id"].(string)
	if !ok || callerID == "" {
		return "", fmt.Errorf("user_id claim is missing")
	}
	return callerID, nil
}

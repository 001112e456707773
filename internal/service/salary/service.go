package salary

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pointage/timeclock-backend-go/internal/domain/leave"
	"github.com/pointage/timeclock-backend-go/internal/domain/salary"
	"github.com/pointage/timeclock-backend-go/internal/domain/timeclock"
	"github.com/pointage/timeclock-backend-go/internal/domain/user"
)

type SalaryServiceImpl struct {
	loc *time.Location
	salary.SettingsRepository
	timeclock.TimeRecordRepository
	leave.LeaveRepository
	user.UserRepository
}

func NewSalaryService(
	settingsRepository salary.SettingsRepository,
	timeRecordRepository timeclock.TimeRecordRepository,
	leaveRepository leave.LeaveRepository,
	userRepository user.UserRepository,
	loc *time.Location,
) salary.SalaryService {
	return &SalaryServiceImpl{
		loc:                  loc,
		SettingsRepository:   settingsRepository,
		TimeRecordRepository: timeRecordRepository,
		LeaveRepository:      leaveRepository,
		UserRepository:       userRepository,
	}
}

// EmployeeStats implements salary.SalaryService.
func (s *SalaryServiceImpl) EmployeeStats(ctx context.Context, employeeID string, month string) (salary.StatsResponse, error) {
	monthStart, err := time.ParseInLocation("2006-01", month, s.loc)
	if err != nil {
		return salary.StatsResponse{}, salary.ErrInvalidMonth
	}
	window := salary.MonthWindowOf(monthStart)

	if _, err := s.UserRepository.GetByID(ctx, employeeID); err != nil {
		return salary.StatsResponse{}, err
	}

	settings, err := s.settings(ctx)
	if err != nil {
		return salary.StatsResponse{}, err
	}

	records, err := s.TimeRecordRepository.ListByDateRange(ctx, employeeID, window.Start, window.End)
	if err != nil {
		return salary.StatsResponse{}, fmt.Errorf("failed to list time records: %w", err)
	}

	leaves, err := s.LeaveRepository.ListApprovedIntersecting(ctx, employeeID, window.Start, window.End)
	if err != nil {
		return salary.StatsResponse{}, fmt.Errorf("failed to list leaves: %w", err)
	}

	stats := Calculate(records, leaves, settings, window)

	return salary.ToStatsResponse(employeeID, month, stats), nil
}

// GetSettings implements salary.SalaryService.
func (s *SalaryServiceImpl) GetSettings(ctx context.Context) (salary.SettingsResponse, error) {
	settings, err := s.settings(ctx)
	if err != nil {
		return salary.SettingsResponse{}, err
	}
	return salary.ToSettingsResponse(settings), nil
}

// UpdateSettings implements salary.SalaryService.
func (s *SalaryServiceImpl) UpdateSettings(ctx context.Context, req salary.UpdateSettingsRequest) (salary.SettingsResponse, error) {
	current, err := s.settings(ctx)
	if err != nil {
		return salary.SettingsResponse{}, err
	}

	if req.SalaryType != nil {
		current.SalaryType = salary.SalaryType(*req.SalaryType)
	}
	if req.DailyRate != nil {
		current.DailyRate = *req.DailyRate
	}
	if req.HourlyRate != nil {
		current.HourlyRate = *req.HourlyRate
	}
	if req.AbsencePenalty != nil {
		current.AbsencePenalty = *req.AbsencePenalty
	}
	if req.AbsencePenaltyType != nil {
		current.AbsencePenaltyType = salary.PenaltyType(*req.AbsencePenaltyType)
	}
	if req.LeavesPaid != nil {
		current.LeavesPaid = *req.LeavesPaid
	}
	if req.WorkingHoursPerDay != nil {
		current.WorkingHoursPerDay = *req.WorkingHoursPerDay
	}
	if req.WorkingDaysPerMonth != nil {
		current.WorkingDaysPerMonth = *req.WorkingDaysPerMonth
	}

	saved, err := s.SettingsRepository.Upsert(ctx, current)
	if err != nil {
		return salary.SettingsResponse{}, fmt.Errorf("failed to save salary settings: %w", err)
	}

	return salary.ToSettingsResponse(saved), nil
}

// settings returns stored settings, falling back to defaults before the admin
// has saved any.
func (s *SalaryServiceImpl) settings(ctx context.Context) (salary.Settings, error) {
	settings, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		if errors.Is(err, salary.ErrSettingsNotFound) {
			return salary.DefaultSettings(), nil
		}
		return salary.Settings{}, fmt.Errorf("failed to get salary settings: %w", err)
	}
	return settings, nil
}

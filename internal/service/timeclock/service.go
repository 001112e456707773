package timeclock

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/pointage/timeclock-backend-go/internal/domain/timeclock"
	"github.com/pointage/timeclock-backend-go/internal/domain/user"
	"github.com/pointage/timeclock-backend-go/internal/pkg/database"
	"github.com/pointage/timeclock-backend-go/internal/repository/postgresql"
)

type TimeclockServiceImpl struct {
	db  *database.DB
	loc *time.Location
	now func() time.Time
	timeclock.TimeRecordRepository
	user.UserRepository
}

func NewTimeclockService(db *database.DB, timeRecordRepository timeclock.TimeRecordRepository, userRepository user.UserRepository, loc *time.Location) timeclock.TimeclockService {
	return &TimeclockServiceImpl{
		db:                   db,
		loc:                  loc,
		now:                  time.Now,
		TimeRecordRepository: timeRecordRepository,
		UserRepository:       userRepository,
	}
}

// Status implements timeclock.TimeclockService.
func (s *TimeclockServiceImpl) Status(ctx context.Context) (timeclock.StatusResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return timeclock.StatusResponse{}, err
	}
	return s.status(ctx, userID)
}

// ClockIn implements timeclock.TimeclockService.
func (s *TimeclockServiceImpl) ClockIn(ctx context.Context) (timeclock.StatusResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return timeclock.StatusResponse{}, err
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		open, err := s.TimeRecordRepository.GetOpenRecord(txCtx, userID)
		if err != nil {
			return fmt.Errorf("failed to check open record: %w", err)
		}
		if open != nil {
			return timeclock.ErrAlreadyClockedIn
		}

		now := s.now()
		dayStart, _ := timeclock.DayWindow(now, s.loc)
		_, err = s.TimeRecordRepository.Create(txCtx, timeclock.TimeRecord{
			UserID:  userID,
			Date:    dayStart,
			ClockIn: now,
		})
		if err != nil {
			return fmt.Errorf("failed to create time record: %w", err)
		}
		return nil
	})
	if err != nil {
		return timeclock.StatusResponse{}, err
	}

	return s.status(ctx, userID)
}

// ClockOut implements timeclock.TimeclockService.
func (s *TimeclockServiceImpl) ClockOut(ctx context.Context) (timeclock.StatusResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return timeclock.StatusResponse{}, err
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		open, err := s.TimeRecordRepository.GetOpenRecord(txCtx, userID)
		if err != nil {
			return fmt.Errorf("failed to check open record: %w", err)
		}
		if open == nil {
			return timeclock.ErrNotClockedIn
		}

		if _, err := s.TimeRecordRepository.SetClockOut(txCtx, open.ID, s.now()); err != nil {
			return fmt.Errorf("failed to close time record: %w", err)
		}
		return nil
	})
	if err != nil {
		return timeclock.StatusResponse{}, err
	}

	return s.status(ctx, userID)
}

// Toggle implements timeclock.TimeclockService.
func (s *TimeclockServiceImpl) Toggle(ctx context.Context, userID string) (timeclock.ScanResponse, error) {
	userData, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return timeclock.ScanResponse{}, err
	}

	var action timeclock.ClockAction
	at := s.now()

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		open, err := s.TimeRecordRepository.GetOpenRecord(txCtx, userID)
		if err != nil {
			return fmt.Errorf("failed to check open record: %w", err)
		}

		if open != nil {
			if _, err := s.TimeRecordRepository.SetClockOut(txCtx, open.ID, at); err != nil {
				return fmt.Errorf("failed to close time record: %w", err)
			}
			action = timeclock.ActionOut
			return nil
		}

		dayStart, _ := timeclock.DayWindow(at, s.loc)
		_, err = s.TimeRecordRepository.Create(txCtx, timeclock.TimeRecord{
			UserID:  userID,
			Date:    dayStart,
			ClockIn: at,
		})
		if err != nil {
			return fmt.Errorf("failed to create time record: %w", err)
		}
		action = timeclock.ActionIn
		return nil
	})
	if err != nil {
		return timeclock.ScanResponse{}, err
	}

	return timeclock.ScanResponse{
		Action: action,
		User:   timeclock.ScanUserInfo{UserName: userData.FullName},
		At:     at.Format(time.RFC3339),
	}, nil
}

// WeeklyStats implements timeclock.TimeclockService.
func (s *TimeclockServiceImpl) WeeklyStats(ctx context.Context) (timeclock.WeeklyStatsResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return timeclock.WeeklyStatsResponse{}, err
	}

	weekStart, weekEnd := timeclock.WeekWindow(s.now(), s.loc)
	records, err := s.TimeRecordRepository.ListByClockInRange(ctx, userID, weekStart, weekEnd)
	if err != nil {
		return timeclock.WeeklyStatsResponse{}, fmt.Errorf("failed to list week records: %w", err)
	}

	buckets, total := timeclock.WeeklyStats(records, s.loc)
	return timeclock.WeeklyStatsResponse{
		Days:       buckets[:],
		TotalHours: total,
	}, nil
}

// List implements timeclock.TimeclockService.
func (s *TimeclockServiceImpl) List(ctx context.Context, filter timeclock.RecordFilter) ([]timeclock.RecordResponse, int64, error) {
	records, total, err := s.TimeRecordRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list time records: %w", err)
	}
	return timeclock.ToRecordResponses(records), total, nil
}

// UpdateRecord implements timeclock.TimeclockService.
func (s *TimeclockServiceImpl) UpdateRecord(ctx context.Context, id string, req timeclock.UpdateRecordRequest) (timeclock.RecordResponse, error) {
	record, err := s.TimeRecordRepository.GetByID(ctx, id)
	if err != nil {
		return timeclock.RecordResponse{}, err
	}

	if req.ClockIn != nil {
		in, err := time.Parse(time.RFC3339, *req.ClockIn)
		if err != nil {
			return timeclock.RecordResponse{}, err
		}
		record.ClockIn = in
		dayStart, _ := timeclock.DayWindow(in, s.loc)
		record.Date = dayStart
	}
	if req.ClockOut != nil {
		if *req.ClockOut == "" {
			// Reopening the record puts the employee back in checked-in.
			record.ClockOut = nil
		} else {
			out, err := time.Parse(time.RFC3339, *req.ClockOut)
			if err != nil {
				return timeclock.RecordResponse{}, err
			}
			record.ClockOut = &out
		}
	}

	if err := s.TimeRecordRepository.Update(ctx, record); err != nil {
		return timeclock.RecordResponse{}, fmt.Errorf("failed to update time record: %w", err)
	}

	updated, err := s.TimeRecordRepository.GetByID(ctx, id)
	if err != nil {
		return timeclock.RecordResponse{}, err
	}
	return timeclock.ToRecordResponse(updated), nil
}

// DeleteRecord implements timeclock.TimeclockService.
func (s *TimeclockServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	return s.TimeRecordRepository.Delete(ctx, id)
}

// DeleteAllRecords implements timeclock.TimeclockService.
func (s *TimeclockServiceImpl) DeleteAllRecords(ctx context.Context) error {
	return s.TimeRecordRepository.DeleteAll(ctx)
}

func (s *TimeclockServiceImpl) status(ctx context.Context, userID string) (timeclock.StatusResponse, error) {
	now := s.now()
	dayStart, dayEnd := timeclock.DayWindow(now, s.loc)

	records, err := s.TimeRecordRepository.ListByClockInRange(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return timeclock.StatusResponse{}, fmt.Errorf("failed to list today records: %w", err)
	}

	state, activeID := timeclock.DeriveClockState(records)

	resp := timeclock.StatusResponse{
		State:         state,
		TodayWorkTime: timeclock.TodayWorkTime(records, state, now),
		TodayRecords:  timeclock.ToRecordResponses(records),
	}
	if activeID != "" {
		resp.ActiveRecordID = &activeID
	}
	return resp, nil
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

package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/pointage/timeclock-backend-go/internal/domain/salary"
	"github.com/pointage/timeclock-backend-go/internal/domain/settings"
	"github.com/pointage/timeclock-backend-go/internal/pkg/database"
)

// Both settings tables hold a single row keyed by id = 1.

type appSettingsRepository struct {
	db *database.DB
}

func NewAppSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &appSettingsRepository{db: db}
}

// Get implements settings.SettingsRepository.
func (r *appSettingsRepository) Get(ctx context.Context) (settings.AppSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT app_name, app_logo, theme, updated_at FROM app_settings WHERE id = 1`

	var s settings.AppSettings
	err := q.QueryRow(ctx, query).Scan(&s.AppName, &s.AppLogo, &s.Theme, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.AppSettings{}, settings.ErrSettingsNotFound
		}
		return settings.AppSettings{}, fmt.Errorf("failed to get app settings: %w", err)
	}

	return s, nil
}

// Upsert implements settings.SettingsRepository.
func (r *appSettingsRepository) Upsert(ctx context.Context, s settings.AppSettings) (settings.AppSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO app_settings (id, app_name, app_logo, theme)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET app_name = EXCLUDED.app_name,
		    app_logo = EXCLUDED.app_logo,
		    theme = EXCLUDED.theme,
		    updated_at = NOW()
		RETURNING updated_at
	`

	if err := q.QueryRow(ctx, query, s.AppName, s.AppLogo, s.Theme).Scan(&s.UpdatedAt); err != nil {
		return settings.AppSettings{}, fmt.Errorf("failed to upsert app settings: %w", err)
	}

	return s, nil
}

type salarySettingsRepository struct {
	db *database.DB
}

func NewSalarySettingsRepository(db *database.DB) salary.SettingsRepository {
	return &salarySettingsRepository{db: db}
}

// Get implements salary.SettingsRepository.
func (r *salarySettingsRepository) Get(ctx context.Context) (salary.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT salary_type, daily_rate, hourly_rate, absence_penalty,
		       absence_penalty_type, leaves_paid, working_hours_per_day,
		       working_days_per_month
		FROM salary_settings
		WHERE id = 1
	`

	var s salary.Settings
	err := q.QueryRow(ctx, query).Scan(
		&s.SalaryType, &s.DailyRate, &s.HourlyRate, &s.AbsencePenalty,
		&s.AbsencePenaltyType, &s.LeavesPaid, &s.WorkingHoursPerDay,
		&s.WorkingDaysPerMonth,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.Settings{}, salary.ErrSettingsNotFound
		}
		return salary.Settings{}, fmt.Errorf("failed to get salary settings: %w", err)
	}

	return s, nil
}

// Upsert implements salary.SettingsRepository.
func (r *salarySettingsRepository) Upsert(ctx context.Context, s salary.Settings) (salary.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_settings (
			id, salary_type, daily_rate, hourly_rate, absence_penalty,
			absence_penalty_type, leaves_paid, working_hours_per_day,
			working_days_per_month
		)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE
		SET salary_type = EXCLUDED.salary_type,
		    daily_rate = EXCLUDED.daily_rate,
		    hourly_rate = EXCLUDED.hourly_rate,
		    absence_penalty = EXCLUDED.absence_penalty,
		    absence_penalty_type = EXCLUDED.absence_penalty_type,
		    leaves_paid = EXCLUDED.leaves_paid,
		    working_hours_per_day = EXCLUDED.working_hours_per_day,
		    working_days_per_month = EXCLUDED.working_days_per_month,
		    updated_at = NOW()
	`

	_, err := q.Exec(ctx, query,
		s.SalaryType, s.DailyRate, s.HourlyRate, s.AbsencePenalty,
		s.AbsencePenaltyType, s.LeavesPaid, s.WorkingHoursPerDay,
		s.WorkingDaysPerMonth,
	)
	if err != nil {
		return salary.Settings{}, fmt.Errorf("failed to upsert salary settings: %w", err)
	}

	return s, nil
}

package timeclock

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/pointage/timeclock-backend-go/internal/domain/timeclock"
	"github.com/pointage/timeclock-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecordRepo struct {
	records []timeclock.TimeRecord
	nextID  int
}

func (f *fakeRecordRepo) Create(_ context.Context, record timeclock.TimeRecord) (timeclock.TimeRecord, error) {
	f.nextID++
	record.ID = fmt.Sprintf("rec-%d", f.nextID)
	f.records = append(f.records, record)
	return record, nil
}

func (f *fakeRecordRepo) GetByID(_ context.Context, id string) (timeclock.TimeRecord, error) {
	for _, r := range f.records {
		if r.ID == id {
			return r, nil
		}
	}
	return timeclock.TimeRecord{}, timeclock.ErrRecordNotFound
}

func (f *fakeRecordRepo) GetOpenRecord(_ context.Context, userID string) (*timeclock.TimeRecord, error) {
	for i := range f.records {
		if f.records[i].UserID == userID && f.records[i].Open() {
			r := f.records[i]
			return &r, nil
		}
	}
	return nil, nil
}

func (f *fakeRecordRepo) SetClockOut(_ context.Context, id string, at time.Time) (timeclock.TimeRecord, error) {
	for i := range f.records {
		if f.records[i].ID == id {
			f.records[i].ClockOut = &at
			return f.records[i], nil
		}
	}
	return timeclock.TimeRecord{}, timeclock.ErrRecordNotFound
}

func (f *fakeRecordRepo) ListByClockInRange(_ context.Context, userID string, from, to time.Time) ([]timeclock.TimeRecord, error) {
	var out []timeclock.TimeRecord
	for _, r := range f.records {
		if r.UserID == userID && !r.ClockIn.Before(from) && r.ClockIn.Before(to) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRecordRepo) ListByDateRange(_ context.Context, userID string, from, to time.Time) ([]timeclock.TimeRecord, error) {
	var out []timeclock.TimeRecord
	for _, r := range f.records {
		if r.UserID == userID && !r.Date.Before(from) && !r.Date.After(to) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRecordRepo) List(_ context.Context, filter timeclock.RecordFilter) ([]timeclock.TimeRecord, int64, error) {
	var out []timeclock.TimeRecord
	for _, r := range f.records {
		if filter.UserID != nil && r.UserID != *filter.UserID {
			continue
		}
		if filter.OpenOnly && !r.Open() {
			continue
		}
		out = append(out, r)
	}
	return out, int64(len(out)), nil
}

func (f *fakeRecordRepo) ListAll(_ context.Context) ([]timeclock.TimeRecord, error) {
	return f.records, nil
}

func (f *fakeRecordRepo) Update(_ context.Context, record timeclock.TimeRecord) error {
	for i := range f.records {
		if f.records[i].ID == record.ID {
			f.records[i] = record
			return nil
		}
	}
	return timeclock.ErrRecordNotFound
}

func (f *fakeRecordRepo) Delete(_ context.Context, id string) error {
	for i := range f.records {
		if f.records[i].ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return timeclock.ErrRecordNotFound
}

func (f *fakeRecordRepo) DeleteByUser(_ context.Context, userID string) error {
	var kept []timeclock.TimeRecord
	for _, r := range f.records {
		if r.UserID != userID {
			kept = append(kept, r)
		}
	}
	f.records = kept
	return nil
}

func (f *fakeRecordRepo) DeleteAll(_ context.Context) error {
	f.records = nil
	return nil
}

type fakeUserRepo struct {
	users map[string]user.User
}

func (f *fakeUserRepo) Create(_ context.Context, u user.User) (user.User, error) { return u, nil }
func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}
func (f *fakeUserRepo) GetByEmail(_ context.Context, _ string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}
func (f *fakeUserRepo) ListByRole(_ context.Context, _ user.Role) ([]user.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) List(_ context.Context) ([]user.User, error) { return nil, nil }
func (f *fakeUserRepo) Update(_ context.Context, _ user.User) error { return nil }
func (f *fakeUserRepo) Delete(_ context.Context, _ string) error    { return nil }

const testUserID = "3f2a66a8-13b5-4f6e-8a0e-9d6f9a3a9b01"

func newTestService(now time.Time) (*TimeclockServiceImpl, *fakeRecordRepo) {
	records := &fakeRecordRepo{}
	users := &fakeUserRepo{users: map[string]user.User{
		testUserID: {ID: testUserID, FullName: "Nadia Alaoui", Role: user.RoleEmployee},
	}}
	return &TimeclockServiceImpl{
		loc:                  time.UTC,
		now:                  func() time.Time { return now },
		TimeRecordRepository: records,
		UserRepository:       users,
	}, records
}

func authedContext(t *testing.T, userID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	tok, _, err := ja.Encode(map[string]interface{}{"user_id": userID})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), tok, nil)
}

func TestClockInThenOut(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, repo := newTestService(now)
	ctx := authedContext(t, testUserID)

	status, err := svc.ClockIn(ctx)
	require.NoError(t, err)
	assert.Equal(t, timeclock.StateCheckedIn, status.State)
	require.NotNil(t, status.ActiveRecordID)

	svc.now = func() time.Time { return now.Add(4 * time.Hour) }
	status, err = svc.ClockOut(ctx)
	require.NoError(t, err)
	assert.Equal(t, timeclock.StateCheckedOut, status.State)
	assert.Nil(t, status.ActiveRecordID)
	assert.Equal(t, "4h 0m", status.TodayWorkTime)

	require.Len(t, repo.records, 1)
	require.NotNil(t, repo.records[0].ClockOut)
}

func TestClockInRejectedWhenAlreadyIn(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, repo := newTestService(now)
	ctx := authedContext(t, testUserID)

	_, err := svc.ClockIn(ctx)
	require.NoError(t, err)

	_, err = svc.ClockIn(ctx)
	assert.ErrorIs(t, err, timeclock.ErrAlreadyClockedIn)
	assert.Len(t, repo.records, 1)
}

func TestClockOutRejectedWhenNotIn(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, _ := newTestService(now)
	ctx := authedContext(t, testUserID)

	_, err := svc.ClockOut(ctx)
	assert.ErrorIs(t, err, timeclock.ErrNotClockedIn)
}

func TestStatusWithNoRecords(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, _ := newTestService(now)
	ctx := authedContext(t, testUserID)

	status, err := svc.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, timeclock.StateUnknown, status.State)
	assert.Equal(t, "0h 0m", status.TodayWorkTime)
}

func TestToggleAlternates(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC)
	svc, repo := newTestService(now)
	ctx := context.Background()

	scan, err := svc.Toggle(ctx, testUserID)
	require.NoError(t, err)
	assert.Equal(t, timeclock.ActionIn, scan.Action)
	assert.Equal(t, "Nadia Alaoui", scan.User.UserName)

	svc.now = func() time.Time { return now.Add(8 * time.Hour) }
	scan, err = svc.Toggle(ctx, testUserID)
	require.NoError(t, err)
	assert.Equal(t, timeclock.ActionOut, scan.Action)

	require.Len(t, repo.records, 1)
	require.NotNil(t, repo.records[0].ClockOut)

	scan, err = svc.Toggle(ctx, testUserID)
	require.NoError(t, err)
	assert.Equal(t, timeclock.ActionIn, scan.Action)
	assert.Len(t, repo.records, 2)
}

func TestToggleUnknownUser(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC)
	svc, _ := newTestService(now)

	_, err := svc.Toggle(context.Background(), "b3b2c1d0-0000-4000-8000-000000000000")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestWeeklyStatsBuckets(t *testing.T) {
	now := time.Date(2025, 3, 12, 18, 0, 0, 0, time.UTC) // Wednesday
	svc, repo := newTestService(now)
	ctx := authedContext(t, testUserID)

	monday := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	mondayOut := monday.Add(8 * time.Hour)
	repo.records = append(repo.records, timeclock.TimeRecord{
		ID: "r1", UserID: testUserID, Date: monday.Truncate(24 * time.Hour),
		ClockIn: monday, ClockOut: &mondayOut,
	})

	stats, err := svc.WeeklyStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats.Days, 7)
	assert.Equal(t, "Mon", stats.Days[1].Day)
	assert.Equal(t, 8.0, stats.Days[1].Hours)
	assert.Equal(t, 8.0, stats.TotalHours)
}

func TestUpdateRecordReopen(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, repo := newTestService(now)
	ctx := authedContext(t, testUserID)

	_, err := svc.ClockIn(ctx)
	require.NoError(t, err)
	svc.now = func() time.Time { return now.Add(2 * time.Hour) }
	_, err = svc.ClockOut(ctx)
	require.NoError(t, err)

	empty := ""
	resp, err := svc.UpdateRecord(ctx, repo.records[0].ID, timeclock.UpdateRecordRequest{ClockOut: &empty})
	require.NoError(t, err)
	assert.Nil(t, resp.ClockOut)

	status, err := svc.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, timeclock.StateCheckedIn, status.State)
}

package trends

import (
	"context"
	"testing"
	"time"

	"github.com/pointage/timeclock-backend-go/internal/domain/leave"
	"github.com/pointage/timeclock-backend-go/internal/domain/timeclock"
	"github.com/pointage/timeclock-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRecords struct {
	timeclock.TimeRecordRepository
	records []timeclock.TimeRecord
}

func (s *stubRecords) ListAll(_ context.Context) ([]timeclock.TimeRecord, error) {
	return s.records, nil
}

type stubLeaves struct {
	leave.LeaveRepository
	leaves []leave.LeaveRequest
}

func (s *stubLeaves) ListAll(_ context.Context) ([]leave.LeaveRequest, error) {
	return s.leaves, nil
}

type stubUsers struct {
	user.UserRepository
	users []user.User
}

func (s *stubUsers) List(_ context.Context) ([]user.User, error) {
	return s.users, nil
}

func dept(name string) *string { return &name }

func TestAnalyzeEmptyDataset(t *testing.T) {
	svc := NewTrendsService(&stubRecords{}, &stubLeaves{}, &stubUsers{})

	report, err := svc.Analyze(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0.0, report.Confidence)
	assert.Contains(t, report.Synthesis[0], "Not enough data")
	assert.NotEmpty(t, report.Limitations)
}

func TestAnalyzeFindsOpenRecordsAndPendingLeaves(t *testing.T) {
	in := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	out := in.Add(8 * time.Hour)

	records := []timeclock.TimeRecord{
		{ID: "r1", UserID: "u1", ClockIn: in, ClockOut: &out},
		{ID: "r2", UserID: "u2", ClockIn: in},
	}
	leaves := []leave.LeaveRequest{
		{ID: "l1", UserID: "u1", LeaveType: leave.TypeSick, Status: leave.StatusPending},
		{ID: "l2", UserID: "u2", LeaveType: leave.TypeSick, Status: leave.StatusApproved},
		{ID: "l3", UserID: "u1", LeaveType: leave.TypeVacation, Status: leave.StatusApproved},
	}
	users := []user.User{
		{ID: "u1", Role: user.RoleEmployee, Department: dept("Sales")},
		{ID: "u2", Role: user.RoleEmployee, Department: dept("Sales")},
		{ID: "u3", Role: user.RoleEmployee},
		{ID: "a1", Role: user.RoleAdmin},
	}

	svc := NewTrendsService(&stubRecords{records: records}, &stubLeaves{leaves: leaves}, &stubUsers{users: users})

	report, err := svc.Analyze(context.Background())
	require.NoError(t, err)

	assert.Greater(t, report.Confidence, 0.0)
	assert.LessOrEqual(t, report.Confidence, 0.95)

	joined := ""
	for _, line := range report.Synthesis {
		joined += line + "\n"
	}
	assert.Contains(t, joined, "Sales")
	assert.Contains(t, joined, "8.0 hours")
	assert.Contains(t, joined, "still open")
	assert.Contains(t, joined, `"sick"`)

	recs := ""
	for _, line := range report.Recommendations {
		recs += line + "\n"
	}
	assert.Contains(t, recs, "clock out")
	assert.Contains(t, recs, "pending leave")
}

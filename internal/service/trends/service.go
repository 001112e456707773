package trends

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/pointage/timeclock-backend-go/internal/domain/leave"
	"github.com/pointage/timeclock-backend-go/internal/domain/timeclock"
	"github.com/pointage/timeclock-backend-go/internal/domain/trends"
	"github.com/pointage/timeclock-backend-go/internal/domain/user"
)

type TrendsServiceImpl struct {
	timeclock.TimeRecordRepository
	leave.LeaveRepository
	user.UserRepository
}

func NewTrendsService(timeRecordRepository timeclock.TimeRecordRepository, leaveRepository leave.LeaveRepository, userRepository user.UserRepository) trends.TrendsService {
	return &TrendsServiceImpl{
		TimeRecordRepository: timeRecordRepository,
		LeaveRepository:      leaveRepository,
		UserRepository:       userRepository,
	}
}

// Analyze implements trends.TrendsService. It folds the full time, leave and
// employee snapshots into descriptive findings. Confidence grows with sample
// size and caps below certainty.
func (s *TrendsServiceImpl) Analyze(ctx context.Context) (trends.AnalysisReport, error) {
	records, err := s.TimeRecordRepository.ListAll(ctx)
	if err != nil {
		return trends.AnalysisReport{}, fmt.Errorf("failed to list time records: %w", err)
	}
	leaves, err := s.LeaveRepository.ListAll(ctx)
	if err != nil {
		return trends.AnalysisReport{}, fmt.Errorf("failed to list leave requests: %w", err)
	}
	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return trends.AnalysisReport{}, fmt.Errorf("failed to list users: %w", err)
	}

	report := trends.AnalysisReport{
		Synthesis:       analyzeRecords(records, users),
		Recommendations: recommend(records, leaves),
		Confidence:      confidence(len(records) + len(leaves)),
		Limitations: []string{
			"Findings are descriptive statistics over recorded punches, not causal claims.",
			"Open records are estimated at zero duration and may understate worked time.",
		},
	}

	if len(leaves) > 0 {
		report.Synthesis = append(report.Synthesis, analyzeLeaves(leaves)...)
	}

	return report, nil
}

func analyzeRecords(records []timeclock.TimeRecord, users []user.User) []string {
	var out []string

	departments := map[string]int{}
	for _, u := range users {
		if u.Role != user.RoleEmployee {
			continue
		}
		name := "Unspecified"
		if u.Department != nil && *u.Department != "" {
			name = *u.Department
		}
		departments[name]++
	}
	if len(departments) > 0 {
		names := make([]string, 0, len(departments))
		for name := range departments {
			names = append(names, name)
		}
		sort.Slice(names, func(i, j int) bool {
			if departments[names[i]] != departments[names[j]] {
				return departments[names[i]] > departments[names[j]]
			}
			return names[i] < names[j]
		})
		out = append(out, fmt.Sprintf("Largest department is %s with %d employees across %d departments.",
			names[0], departments[names[0]], len(departments)))
	}

	closed := 0
	open := 0
	totalHours := 0.0
	for _, r := range records {
		if r.Open() {
			open++
			continue
		}
		closed++
		totalHours += r.Duration().Hours()
	}
	if closed > 0 {
		out = append(out, fmt.Sprintf("Average closed shift length is %.1f hours over %d records.",
			totalHours/float64(closed), closed))
	}
	if open > 0 {
		out = append(out, fmt.Sprintf("%d records are still open; employees may be forgetting to clock out.", open))
	}
	if len(out) == 0 {
		out = append(out, "Not enough data recorded to identify trends yet.")
	}

	return out
}

func analyzeLeaves(leaves []leave.LeaveRequest) []string {
	byType := map[leave.LeaveType]int{}
	pending := 0
	for _, l := range leaves {
		byType[l.LeaveType]++
		if l.Status == leave.StatusPending {
			pending++
		}
	}

	topType := leave.TypeOther
	topCount := 0
	for t, n := range byType {
		if n > topCount || (n == topCount && t < topType) {
			topType, topCount = t, n
		}
	}

	out := []string{fmt.Sprintf("Most frequent leave type is %q (%d of %d requests).",
		topType, topCount, len(leaves))}
	if pending > 0 {
		out = append(out, fmt.Sprintf("%d leave requests are awaiting review.", pending))
	}
	return out
}

func recommend(records []timeclock.TimeRecord, leaves []leave.LeaveRequest) []string {
	var out []string

	open := 0
	for _, r := range records {
		if r.Open() {
			open++
		}
	}
	if open > 0 {
		out = append(out, "Remind employees to clock out, or correct the open records from the attendance tab.")
	}

	pending := 0
	for _, l := range leaves {
		if l.Status == leave.StatusPending {
			pending++
		}
	}
	if pending > 0 {
		out = append(out, "Process the pending leave requests so salary statistics stay accurate.")
	}

	if len(out) == 0 {
		out = append(out, "Attendance data looks consistent; no action needed.")
	}
	return out
}

// confidence maps sample size onto (0, 0.95]. Ten samples give roughly 0.5.
func confidence(samples int) float64 {
	if samples <= 0 {
		return 0
	}
	c := 1 - math.Exp(-float64(samples)/15)
	return math.Round(math.Min(c, 0.95)*100) / 100
}

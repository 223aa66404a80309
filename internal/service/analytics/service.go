package analytics

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/attendance-analytics-go/internal/domain/session"
)

const rankingLimit = 5

type AnalyticsServiceImpl struct {
	session.SessionRepository
}

func NewAnalyticsService(repo session.SessionRepository) session.AnalyticsService {
	return &AnalyticsServiceImpl{SessionRepository: repo}
}

// load fetches every row and reduces it to aggregation records under the
// given filter. Every view recomputes from scratch; there is no caching.
func (a *AnalyticsServiceImpl) load(ctx context.Context, yearParam, monthsParam string) ([]record, error) {
	sessions, err := a.SessionRepository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return prepare(sessions, NewFilter(yearParam, monthsParam)), nil
}

// ListSessions implements session.AnalyticsService. Unlike the aggregations,
// the filter is pushed down to the store here; the SQL predicate and
// Filter.Matches must stay equivalent.
func (a *AnalyticsServiceImpl) ListSessions(ctx context.Context, yearParam, monthsParam string) ([]session.SessionResponse, error) {
	filter := NewFilter(yearParam, monthsParam)
	sessions, err := a.SessionRepository.ListFiltered(ctx, filter.Year(), filter.Months())
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	rows := make([]session.SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		rows = append(rows, session.SessionResponse{
			ID:         s.ID,
			Employee:   s.Employee,
			Date:       s.Date.Format("2006-01-02"),
			LoginTime:  s.LoginTime,
			LogoutTime: s.LogoutTime,
		})
	}
	return rows, nil
}

// TotalEmployees implements session.AnalyticsService.
func (a *AnalyticsServiceImpl) TotalEmployees(ctx context.Context, yearParam, monthsParam string) (session.TotalEmployeesResponse, error) {
	records, err := a.load(ctx, yearParam, monthsParam)
	if err != nil {
		return session.TotalEmployeesResponse{}, err
	}
	return session.TotalEmployeesResponse{TotalEmployees: totalEmployees(records)}, nil
}

// DashboardStats implements session.AnalyticsService.
func (a *AnalyticsServiceImpl) DashboardStats(ctx context.Context, yearParam, monthsParam string) (session.DashboardStatsResponse, error) {
	records, err := a.load(ctx, yearParam, monthsParam)
	if err != nil {
		return session.DashboardStatsResponse{}, err
	}
	return dashboardStats(records), nil
}

// EmployeeMonthlyHours implements session.AnalyticsService.
func (a *AnalyticsServiceImpl) EmployeeMonthlyHours(ctx context.Context, yearParam, monthsParam string) ([]session.EmployeeMonthlyHoursRow, error) {
	records, err := a.load(ctx, yearParam, monthsParam)
	if err != nil {
		return nil, err
	}
	return employeeMonthlyHours(records), nil
}

// MonthlyOvertime implements session.AnalyticsService.
func (a *AnalyticsServiceImpl) MonthlyOvertime(ctx context.Context, yearParam, monthsParam string) ([]session.MonthlyOvertimeRow, error) {
	records, err := a.load(ctx, yearParam, monthsParam)
	if err != nil {
		return nil, err
	}
	return monthlyOvertime(records), nil
}

// AvgBreakPerMonth implements session.AnalyticsService.
func (a *AnalyticsServiceImpl) AvgBreakPerMonth(ctx context.Context, yearParam, monthsParam string) ([]session.AvgBreakRow, error) {
	records, err := a.load(ctx, yearParam, monthsParam)
	if err != nil {
		return nil, err
	}
	return avgBreakPerMonth(records), nil
}

// TotalBreakPerMonth implements session.AnalyticsService.
func (a *AnalyticsServiceImpl) TotalBreakPerMonth(ctx context.Context, yearParam, monthsParam string) ([]session.TotalBreakRow, error) {
	records, err := a.load(ctx, yearParam, monthsParam)
	if err != nil {
		return nil, err
	}
	return totalBreakPerMonth(records), nil
}

// TopWorkingHours implements session.AnalyticsService.
func (a *AnalyticsServiceImpl) TopWorkingHours(ctx context.Context, yearParam, monthsParam string) ([]session.WorkingHoursRow, error) {
	records, err := a.load(ctx, yearParam, monthsParam)
	if err != nil {
		return nil, err
	}
	return topWorkingHours(records, rankingLimit), nil
}

// BottomWorkingHours implements session.AnalyticsService.
func (a *AnalyticsServiceImpl) BottomWorkingHours(ctx context.Context, yearParam, monthsParam string) ([]session.WorkingHoursRow, error) {
	records, err := a.load(ctx, yearParam, monthsParam)
	if err != nil {
		return nil, err
	}
	return bottomWorkingHours(records, rankingLimit), nil
}

// EmployeeSummary implements session.AnalyticsService.
func (a *AnalyticsServiceImpl) EmployeeSummary(ctx context.Context, yearParam, monthsParam string) ([]session.EmployeeSummaryRow, error) {
	records, err := a.load(ctx, yearParam, monthsParam)
	if err != nil {
		return nil, err
	}
	return employeeSummary(records), nil
}

// AttendanceYears implements session.AnalyticsService.
func (a *AnalyticsServiceImpl) AttendanceYears(ctx context.Context) ([]int, error) {
	sessions, err := a.SessionRepository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return attendanceYears(sessions), nil
}

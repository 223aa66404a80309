package session

import (
	"context"
	"io"
)

// AnalyticsService computes the read-side views over stored sessions. Every
// method accepts the raw year/months query strings; bad values fall back to
// "no filter" rather than erroring.
type AnalyticsService interface {
	// ListSessions returns raw rows, filter pushed down to the store.
	ListSessions(ctx context.Context, yearParam, monthsParam string) ([]SessionResponse, error)

	// TotalEmployees counts distinct employee names in the filtered rows.
	TotalEmployees(ctx context.Context, yearParam, monthsParam string) (TotalEmployeesResponse, error)

	// DashboardStats returns the headline averages for the dashboard cards.
	DashboardStats(ctx context.Context, yearParam, monthsParam string) (DashboardStatsResponse, error)

	// EmployeeMonthlyHours sums worked hours per (employee, year, month).
	EmployeeMonthlyHours(ctx context.Context, yearParam, monthsParam string) ([]EmployeeMonthlyHoursRow, error)

	// MonthlyOvertime sums hours beyond the 8h threshold per calendar month.
	MonthlyOvertime(ctx context.Context, yearParam, monthsParam string) ([]MonthlyOvertimeRow, error)

	// AvgBreakPerMonth averages break hours per calendar month.
	AvgBreakPerMonth(ctx context.Context, yearParam, monthsParam string) ([]AvgBreakRow, error)

	// TotalBreakPerMonth sums break hours per calendar month.
	TotalBreakPerMonth(ctx context.Context, yearParam, monthsParam string) ([]TotalBreakRow, error)

	// TopWorkingHours returns the five employees with the most summed hours.
	TopWorkingHours(ctx context.Context, yearParam, monthsParam string) ([]WorkingHoursRow, error)

	// BottomWorkingHours returns the five employees with the fewest summed hours.
	BottomWorkingHours(ctx context.Context, yearParam, monthsParam string) ([]WorkingHoursRow, error)

	// EmployeeSummary aggregates total/avg/max/min hours and days worked per employee.
	EmployeeSummary(ctx context.Context, yearParam, monthsParam string) ([]EmployeeSummaryRow, error)

	// AttendanceYears lists the distinct years present across ALL rows,
	// ascending. The year/month filter is deliberately not applied here.
	AttendanceYears(ctx context.Context) ([]int, error)
}

// ImportService ingests a spreadsheet export and replaces the store with its
// valid rows.
type ImportService interface {
	// Import parses the uploaded sheet (xlsx or legacy xls, chosen by
	// filename), normalizes its rows and bulk-replaces the store. Returns the
	// number of rows kept.
	Import(ctx context.Context, filename string, file io.Reader) (ImportResult, error)
}

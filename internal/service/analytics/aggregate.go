package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/cmlabs-hris/attendance-analytics-go/internal/domain/session"
	"github.com/cmlabs-hris/attendance-analytics-go/internal/pkg/clocktime"
)

// OvertimeThresholdHours is the per-session cutoff: anything worked beyond it
// counts as overtime (the break endpoints call the same quantity break).
const OvertimeThresholdHours = 8.0

// record is a session row that survived completeness, time-parse and filter
// checks. All aggregation math runs over records, so malformed clock strings
// can never feed a sum.
type record struct {
	employee string
	year     int
	month    time.Month
	loginMs  int64
	logoutMs int64
}

func (r record) workedHours() float64 {
	return clocktime.Hours(r.logoutMs - r.loginMs)
}

func (r record) overtimeHours() float64 {
	return math.Max(r.workedHours()-OvertimeThresholdHours, 0)
}

// prepare filters the raw rows down to aggregation inputs. Rows missing a
// field, rows whose clock strings fail to parse and rows outside the filter
// are dropped silently. Input order is preserved, which fixes tie order in
// the ranked views.
func prepare(sessions []session.Session, f *Filter) []record {
	records := make([]record, 0, len(sessions))
	for _, s := range sessions {
		if !s.Complete() {
			continue
		}
		year, month := s.Date.Year(), s.Date.Month()
		if !f.Matches(year, month) {
			continue
		}
		loginMs, err := clocktime.Parse(s.LoginTime)
		if err != nil {
			continue
		}
		logoutMs, err := clocktime.Parse(s.LogoutTime)
		if err != nil {
			continue
		}
		records = append(records, record{
			employee: s.Employee,
			year:     year,
			month:    month,
			loginMs:  loginMs,
			logoutMs: logoutMs,
		})
	}
	return records
}

func totalEmployees(records []record) int {
	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		seen[r.employee] = struct{}{}
	}
	return len(seen)
}

func dashboardStats(records []record) session.DashboardStatsResponse {
	if len(records) == 0 {
		return session.DashboardStatsResponse{
			AvgLoginTime:  clocktime.FormatHoursMinutes(0),
			AvgLogoutTime: clocktime.FormatHoursMinutes(0),
		}
	}

	var loginSum, logoutSum, workedSum int64
	for _, r := range records {
		loginSum += r.loginMs
		logoutSum += r.logoutMs
		workedSum += r.logoutMs - r.loginMs
	}
	n := int64(len(records))

	return session.DashboardStatsResponse{
		TotalEmployees: totalEmployees(records),
		AvgLoginTime:   clocktime.FormatHoursMinutes(loginSum / n),
		AvgLogoutTime:  clocktime.FormatHoursMinutes(logoutSum / n),
		AvgWorkHours:   round1(clocktime.Hours(workedSum) / float64(n)),
	}
}

func employeeMonthlyHours(records []record) []session.EmployeeMonthlyHoursRow {
	type key struct {
		employee string
		year     int
		month    time.Month
	}
	totals := make(map[key]float64)
	for _, r := range records {
		totals[key{r.employee, r.year, r.month}] += r.workedHours()
	}

	rows := make([]session.EmployeeMonthlyHoursRow, 0, len(totals))
	for k, hours := range totals {
		rows = append(rows, session.EmployeeMonthlyHoursRow{
			Employee:       k.employee,
			Year:           k.year,
			Month:          int(k.month),
			TotalWorkHours: round2(hours),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Employee != rows[j].Employee {
			return rows[i].Employee < rows[j].Employee
		}
		if rows[i].Year != rows[j].Year {
			return rows[i].Year < rows[j].Year
		}
		return rows[i].Month < rows[j].Month
	})
	return rows
}

// overtimeByMonth groups per calendar month, dropping the year on purpose:
// January 2024 and January 2025 share a bucket, matching the shipped
// behavior of the overtime/break views.
func overtimeByMonth(records []record) (sums map[time.Month]float64, counts map[time.Month]int) {
	sums = make(map[time.Month]float64)
	counts = make(map[time.Month]int)
	for _, r := range records {
		sums[r.month] += r.overtimeHours()
		counts[r.month]++
	}
	return sums, counts
}

func sortedMonths(sums map[time.Month]float64) []time.Month {
	months := make([]time.Month, 0, len(sums))
	for m := range sums {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i] < months[j] })
	return months
}

func monthlyOvertime(records []record) []session.MonthlyOvertimeRow {
	sums, _ := overtimeByMonth(records)
	rows := make([]session.MonthlyOvertimeRow, 0, len(sums))
	for _, m := range sortedMonths(sums) {
		rows = append(rows, session.MonthlyOvertimeRow{
			Month:         int(m),
			TotalOvertime: int(math.Round(sums[m])),
		})
	}
	return rows
}

func avgBreakPerMonth(records []record) []session.AvgBreakRow {
	sums, counts := overtimeByMonth(records)
	rows := make([]session.AvgBreakRow, 0, len(sums))
	for _, m := range sortedMonths(sums) {
		rows = append(rows, session.AvgBreakRow{
			Month:         int(m),
			AvgBreakHours: round2(sums[m] / float64(counts[m])),
		})
	}
	return rows
}

func totalBreakPerMonth(records []record) []session.TotalBreakRow {
	sums, _ := overtimeByMonth(records)
	rows := make([]session.TotalBreakRow, 0, len(sums))
	for _, m := range sortedMonths(sums) {
		rows = append(rows, session.TotalBreakRow{
			Month:           int(m),
			TotalBreakHours: round2(sums[m]),
		})
	}
	return rows
}

// employeeTotals sums worked hours per employee in first-seen order, which is
// the tie order for the ranked views.
func employeeTotals(records []record) []session.WorkingHoursRow {
	totals := make(map[string]float64)
	order := make([]string, 0)
	for _, r := range records {
		if _, ok := totals[r.employee]; !ok {
			order = append(order, r.employee)
		}
		totals[r.employee] += r.workedHours()
	}

	rows := make([]session.WorkingHoursRow, 0, len(order))
	for _, employee := range order {
		rows = append(rows, session.WorkingHoursRow{
			Employee:   employee,
			TotalHours: totals[employee],
		})
	}
	return rows
}

func topWorkingHours(records []record, limit int) []session.WorkingHoursRow {
	rows := employeeTotals(records)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].TotalHours > rows[j].TotalHours })
	return roundAndLimit(rows, limit)
}

func bottomWorkingHours(records []record, limit int) []session.WorkingHoursRow {
	rows := employeeTotals(records)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].TotalHours < rows[j].TotalHours })
	return roundAndLimit(rows, limit)
}

func roundAndLimit(rows []session.WorkingHoursRow, limit int) []session.WorkingHoursRow {
	if len(rows) > limit {
		rows = rows[:limit]
	}
	for i := range rows {
		rows[i].TotalHours = round2(rows[i].TotalHours)
	}
	return rows
}

func employeeSummary(records []record) []session.EmployeeSummaryRow {
	type summary struct {
		total float64
		max   float64
		min   float64
		days  int
	}
	summaries := make(map[string]*summary)
	order := make([]string, 0)
	for _, r := range records {
		hours := r.workedHours()
		s, ok := summaries[r.employee]
		if !ok {
			s = &summary{max: math.Inf(-1), min: math.Inf(1)}
			summaries[r.employee] = s
			order = append(order, r.employee)
		}
		s.total += hours
		s.max = math.Max(s.max, hours)
		s.min = math.Min(s.min, hours)
		s.days++
	}

	rows := make([]session.EmployeeSummaryRow, 0, len(order))
	for _, employee := range order {
		s := summaries[employee]
		rows = append(rows, session.EmployeeSummaryRow{
			Employee:   employee,
			TotalHours: round2(s.total),
			AvgHours:   round2(s.total / float64(s.days)),
			MaxHours:   round2(s.max),
			MinHours:   round2(s.min),
			DaysWorked: s.days,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].TotalHours > rows[j].TotalHours })
	return rows
}

// attendanceYears ignores the filter: the year dropdown must keep offering
// years the current filter excludes. Incomplete rows still don't count.
func attendanceYears(sessions []session.Session) []int {
	seen := make(map[int]struct{})
	for _, s := range sessions {
		if !s.Complete() {
			continue
		}
		seen[s.Date.Year()] = struct{}{}
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

package session

// ========== RAW LISTING ==========

// SessionResponse is a raw session row as returned by the listing endpoint.
type SessionResponse struct {
	ID         string `json:"id"`
	Employee   string `json:"employee"`
	Date       string `json:"date"` // Format: "YYYY-MM-DD"
	LoginTime  string `json:"loginTime"`
	LogoutTime string `json:"logoutTime"`
}

// ========== DASHBOARD ==========

// TotalEmployeesResponse carries the distinct employee count.
type TotalEmployeesResponse struct {
	TotalEmployees int `json:"totalEmployees"`
}

// DashboardStatsResponse is the headline card data: distinct employees plus
// averages over every filtered session row (not per employee). Clock averages
// are formatted "H:MM" with floored minutes; work hours keep one decimal.
type DashboardStatsResponse struct {
	TotalEmployees int     `json:"totalEmployees"`
	AvgLoginTime   string  `json:"avgLoginTime"`
	AvgLogoutTime  string  `json:"avgLogoutTime"`
	AvgWorkHours   float64 `json:"avgWorkHours"`
}

// ========== MONTHLY BREAKDOWNS ==========

// EmployeeMonthlyHoursRow is one (employee, year, month) bucket.
type EmployeeMonthlyHoursRow struct {
	Employee       string  `json:"employee"`
	Year           int     `json:"year"`
	Month          int     `json:"month"`
	TotalWorkHours float64 `json:"totalWorkHours"`
}

// MonthlyOvertimeRow sums overtime per calendar month. The month key drops
// the year, so the same month of different years lands in one bucket; hours
// are rounded to whole numbers, unlike the 2-decimal endpoints.
type MonthlyOvertimeRow struct {
	Month         int `json:"month"`
	TotalOvertime int `json:"totalOvertime"`
}

// AvgBreakRow averages break hours per calendar month (across years).
type AvgBreakRow struct {
	Month         int     `json:"month"`
	AvgBreakHours float64 `json:"avgBreakHours"`
}

// TotalBreakRow sums break hours per calendar month (across years).
type TotalBreakRow struct {
	Month           int     `json:"month"`
	TotalBreakHours float64 `json:"totalBreakHours"`
}

// ========== PER-EMPLOYEE RANKINGS ==========

// WorkingHoursRow is one employee's summed hours, used by the top/bottom
// rankings. Equal totals keep first-seen order.
type WorkingHoursRow struct {
	Employee   string  `json:"employee"`
	TotalHours float64 `json:"totalHours"`
}

// EmployeeSummaryRow aggregates one employee across the filtered rows.
type EmployeeSummaryRow struct {
	Employee   string  `json:"employee"`
	TotalHours float64 `json:"totalHours"`
	AvgHours   float64 `json:"avgHours"`
	MaxHours   float64 `json:"maxHours"`
	MinHours   float64 `json:"minHours"`
	DaysWorked int     `json:"daysWorked"`
}

// ========== IMPORT ==========

// ImportResult reports how many rows survived normalization and were stored.
type ImportResult struct {
	Count int `json:"count"`
}

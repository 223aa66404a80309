package session

import "time"

// Session is one employee's login/logout pair for a single day. Employees are
// identified by display name only; names must match exactly across rows for
// grouping to line up. LoginTime and LogoutTime are clock-time strings
// ("9:00:00 AM" or "09:00:00") and are never combined with Date into an
// absolute timestamp, so cross-midnight shifts are not modeled.
type Session struct {
	ID         string
	Employee   string
	Date       time.Time
	LoginTime  string
	LogoutTime string
	CreatedAt  time.Time
}

// Complete reports whether the row carries all four fields an aggregation
// needs. Incomplete rows are dropped silently, never surfaced as errors.
func (s Session) Complete() bool {
	return s.Employee != "" && s.LoginTime != "" && s.LogoutTime != "" && !s.Date.IsZero()
}

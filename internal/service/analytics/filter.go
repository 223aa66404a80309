package analytics

import (
	"strconv"
	"strings"
	"time"
)

var monthAbbrevs = map[string]time.Month{
	"Jan": time.January, "Feb": time.February, "Mar": time.March,
	"Apr": time.April, "May": time.May, "Jun": time.June,
	"Jul": time.July, "Aug": time.August, "Sep": time.September,
	"Oct": time.October, "Nov": time.November, "Dec": time.December,
}

// Filter narrows which sessions contribute to an aggregation by year and/or
// month. The zero-value (or nil) filter matches everything. Bad query values
// degrade to "no constraint" instead of rejecting the request.
type Filter struct {
	year   *int
	months map[time.Month]struct{}
}

// NewFilter builds a Filter from the raw query parameters. yearParam must be
// an integer to constrain; monthsParam is a comma-separated list of
// three-letter abbreviations ("Jan,Feb"). Unknown month tokens are dropped,
// and a list that drops to empty imposes no month constraint.
func NewFilter(yearParam, monthsParam string) *Filter {
	f := &Filter{}

	if yearParam != "" {
		if y, err := strconv.Atoi(strings.TrimSpace(yearParam)); err == nil {
			f.year = &y
		}
	}

	if monthsParam != "" {
		months := make(map[time.Month]struct{})
		for _, token := range strings.Split(monthsParam, ",") {
			if m, ok := monthAbbrevs[strings.TrimSpace(token)]; ok {
				months[m] = struct{}{}
			}
		}
		if len(months) > 0 {
			f.months = months
		}
	}

	return f
}

// Matches reports whether a (year, month) pair passes the filter. Both
// constraints must hold when both are present; an absent constraint is
// vacuously true.
func (f *Filter) Matches(year int, month time.Month) bool {
	if f == nil {
		return true
	}
	if f.year != nil && *f.year != year {
		return false
	}
	if f.months != nil {
		if _, ok := f.months[month]; !ok {
			return false
		}
	}
	return true
}

// Year returns the year constraint, or nil when unconstrained. Used to push
// the predicate down to the store; the SQL path must agree with Matches.
func (f *Filter) Year() *int {
	if f == nil {
		return nil
	}
	return f.year
}

// Months returns the month constraint in ascending order, or nil when
// unconstrained.
func (f *Filter) Months() []time.Month {
	if f == nil || f.months == nil {
		return nil
	}
	months := make([]time.Month, 0, len(f.months))
	for m := time.January; m <= time.December; m++ {
		if _, ok := f.months[m]; ok {
			months = append(months, m)
		}
	}
	return months
}

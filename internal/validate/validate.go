package validate

import (
	"regexp"
	"strings"
)

var (
	reID       = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reDate     = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)
	reMonth    = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}$`)
	reUsername = regexp.MustCompile(`^[A-Za-z0-9._-]{1,50}$`)
)

// ID validates a resource identifier from a URL path.
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

func Username(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reUsername.MatchString(s)
}

// Date accepts a YYYY-MM-DD calendar date string.
func Date(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reDate.MatchString(s)
}

// PeriodDate accepts the profit date key: YYYY-MM-DD for daily rows,
// YYYY-MM for monthly rows.
func PeriodDate(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reDate.MatchString(s) || reMonth.MatchString(s)
}

// Name validates a displayable name (customer, product, investment).
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && len(s) <= 100
}

func BillType(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "Sale", true
	}
	return s, s == "Sale" || s == "Service"
}

func ProfitType(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s == "daily" || s == "monthly"
}

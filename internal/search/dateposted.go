package search

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Covers the fixed labels ("last 24 hours", "last 7 days", "last 30 days",
// "last 2 months") as well as any free-form "last N hour(s)/day(s)/month(s)".
var datePostedRe = regexp.MustCompile(`^last\s+(\d+)\s+(hour|day|month)s?$`)

// ParseDatePosted maps a date-posted label to an absolute lower-bound
// timestamp relative to now. "any", empty, and unrecognized labels mean no
// constraint.
func ParseDatePosted(label string, now time.Time) *time.Time {
	norm := strings.ToLower(strings.TrimSpace(label))
	if norm == "" || norm == "any" {
		return nil
	}

	m := datePostedRe.FindStringSubmatch(norm)
	if m == nil {
		return nil
	}

	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return nil
	}

	var cutoff time.Time
	switch m[2] {
	case "hour":
		cutoff = now.Add(-time.Duration(n) * time.Hour)
	case "day":
		cutoff = now.AddDate(0, 0, -n)
	case "month":
		cutoff = now.AddDate(0, -n, 0)
	}

	return &cutoff
}

package search

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	salaryRangeRe = regexp.MustCompile(`^(\d+(?:\.\d+)?)k\s*-\s*(\d+(?:\.\d+)?)k$`)
	salaryPlusRe  = regexp.MustCompile(`^(\d+(?:\.\d+)?)k\s*\+$`)
	salaryUpToRe  = regexp.MustCompile(`^up\s*to\s*(\d+(?:\.\d+)?)k$`)
	salaryExactRe = regexp.MustCompile(`^(\d+(?:\.\d+)?)k$`)
)

// ParseSalaryLabel parses a human salary label into bounds:
//
//	"50k-80k"   -> [50000, 80000]
//	"180k+"     -> [180000, unbounded]
//	"up to 80k" -> [unbounded, 80000]
//	"80k"       -> [80000, 80000]
//
// Matching is case-insensitive; currency symbols and thousands separators are
// stripped first. Anything else parses to nil, meaning no constraint.
func ParseSalaryLabel(label string) *SalaryBounds {
	norm := normalizeSalaryLabel(label)
	if norm == "" {
		return nil
	}

	if m := salaryRangeRe.FindStringSubmatch(norm); m != nil {
		min, max := thousands(m[1]), thousands(m[2])
		return &SalaryBounds{Min: &min, Max: &max}
	}
	if m := salaryPlusRe.FindStringSubmatch(norm); m != nil {
		min := thousands(m[1])
		return &SalaryBounds{Min: &min}
	}
	if m := salaryUpToRe.FindStringSubmatch(norm); m != nil {
		max := thousands(m[1])
		return &SalaryBounds{Max: &max}
	}
	if m := salaryExactRe.FindStringSubmatch(norm); m != nil {
		v := thousands(m[1])
		return &SalaryBounds{Min: &v, Max: &v}
	}

	return nil
}

func normalizeSalaryLabel(label string) string {
	norm := strings.ToLower(strings.TrimSpace(label))
	for _, sym := range []string{"$", "€", "£", ","} {
		norm = strings.ReplaceAll(norm, sym, "")
	}
	return strings.TrimSpace(norm)
}

func thousands(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v * 1000
}

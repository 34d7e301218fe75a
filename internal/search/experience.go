package search

import (
	"fmt"
	"strings"
)

// Experience-level filtering is a best-effort heuristic: jobs carry no
// structured experience field, so each bucket becomes a case-insensitive
// keyword/number pattern matched against the free-text description. It will
// miss postings that phrase requirements differently and must not be treated
// as a structured attribute.
var experiencePatterns = map[string]string{
	"0-1": `(0\s*(-|–|to)\s*1\s*years?|entry[ -]level|no\s+(prior\s+)?experience|junior)`,
	"2+":  yearsPattern(2),
	"3+":  yearsPattern(3),
	"5+":  yearsPattern(5),
	"10+": yearsPattern(10),
}

func yearsPattern(n int) string {
	return fmt.Sprintf(`(%d\s*\+\s*years?|%d\s+or\s+more\s+years?|at\s+least\s+%d\s+years?|minimum\s+(of\s+)?%d\s+years?)`, n, n, n, n)
}

// ExperiencePattern returns the description regex for a recognized
// experience-level label, or "" when the label yields no constraint.
func ExperiencePattern(label string) string {
	return experiencePatterns[normalizeExperienceLabel(label)]
}

func normalizeExperienceLabel(label string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(label)), " ", "")
}

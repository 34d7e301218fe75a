package search

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

type SortMode string

const (
	SortNewest SortMode = "newest"
	SortOldest SortMode = "oldest"
)

const (
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// SalaryBounds is a parsed salary constraint. A nil side is unbounded.
type SalaryBounds struct {
	Min *float64
	Max *float64
}

// FilterSet is the canonical, typed form of a search request. Every field is
// optional; the zero value matches all published jobs. Values that do not
// parse into any recognized shape are dropped here and never reach the
// predicate layer.
type FilterSet struct {
	SearchTerms []string
	JobType     string
	CategoryID  *uint
	Countries   []string
	Salary      *SalaryBounds
	Skills      []string
	SkillSlugs  []string
	BenefitID   *uint
	PostedAfter *time.Time
	Experience  string
	EmployerID  *uint
	Sort        SortMode
	Page        int
	PerPage     int
}

// ParseFilterSet normalizes raw query parameters into a FilterSet. Parameters
// may arrive as a scalar, a repeated array, or a comma-joined string; all
// three reduce to the same canonical form before any predicate logic runs.
// Parsing never fails: malformed optional values simply contribute no
// constraint, and pagination values clamp to safe defaults.
func ParseFilterSet(params url.Values, now time.Time) FilterSet {
	f := FilterSet{
		Sort:    SortNewest,
		Page:    1,
		PerPage: DefaultPerPage,
	}

	f.SearchTerms = strings.Fields(firstParam(params, "search"))

	if jt := strings.ToLower(strings.TrimSpace(firstParam(params, "jobtypes", "job_type"))); jt != "" {
		f.JobType = jt
	}

	f.CategoryID = uintParam(params, "category")
	f.BenefitID = uintParam(params, "benefits")
	f.EmployerID = uintParam(params, "company", "employer")

	f.Countries = multiParam(params, "country", "countries")

	f.Skills = multiParam(params, "skills")
	for _, skill := range f.Skills {
		if slug := Slugify(skill); slug != "" {
			f.SkillSlugs = append(f.SkillSlugs, slug)
		}
	}

	f.Salary = parseSalaryParams(params)
	f.PostedAfter = ParseDatePosted(firstParam(params, "dateposted"), now)

	if label := firstParam(params, "experiencelevel"); label != "" {
		if ExperiencePattern(label) != "" {
			f.Experience = normalizeExperienceLabel(label)
		}
	}

	if strings.EqualFold(strings.TrimSpace(firstParam(params, "sort")), string(SortOldest)) {
		f.Sort = SortOldest
	}

	if page, err := strconv.Atoi(firstParam(params, "page")); err == nil && page > 1 {
		f.Page = page
	}
	if perPage, err := strconv.Atoi(firstParam(params, "per_page")); err == nil && perPage > 0 {
		f.PerPage = perPage
		if f.PerPage > MaxPerPage {
			f.PerPage = MaxPerPage
		}
	}

	return f
}

// parseSalaryParams prefers explicit numeric bounds; otherwise it falls back
// to the human salary label grammar.
func parseSalaryParams(params url.Values) *SalaryBounds {
	var bounds SalaryBounds
	if v, err := strconv.ParseFloat(firstParam(params, "salary_min"), 64); err == nil {
		bounds.Min = &v
	}
	if v, err := strconv.ParseFloat(firstParam(params, "salary_max"), 64); err == nil {
		bounds.Max = &v
	}
	if bounds.Min != nil || bounds.Max != nil {
		return &bounds
	}
	return ParseSalaryLabel(firstParam(params, "salary"))
}

// firstParam returns the first non-empty value found under any of the keys.
func firstParam(params url.Values, keys ...string) string {
	for _, key := range keys {
		for _, v := range params[key] {
			if trimmed := strings.TrimSpace(v); trimmed != "" {
				return trimmed
			}
		}
	}
	return ""
}

// multiParam gathers values under the given keys, splitting comma-joined
// strings and flattening repeated parameters into one deduplicated set.
func multiParam(params url.Values, keys ...string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, key := range keys {
		for _, raw := range append(params[key], params[key+"[]"]...) {
			for _, part := range strings.Split(raw, ",") {
				part = strings.TrimSpace(part)
				if part == "" || seen[part] {
					continue
				}
				seen[part] = true
				out = append(out, part)
			}
		}
	}
	return out
}

func uintParam(params url.Values, keys ...string) *uint {
	raw := firstParam(params, keys...)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		return nil
	}
	id := uint(v)
	return &id
}

// Slugify lowercases s and collapses runs of non-alphanumeric characters into
// single dashes, matching how category and skill slugs are stored.
func Slugify(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// LogFields renders the filter set for error logs, so a failed query can be
// reproduced without logging raw SQL.
func (f FilterSet) LogFields() []zap.Field {
	fields := []zap.Field{
		zap.Int("page", f.Page),
		zap.Int("per_page", f.PerPage),
		zap.String("sort", string(f.Sort)),
	}
	if len(f.SearchTerms) > 0 {
		fields = append(fields, zap.Strings("search_terms", f.SearchTerms))
	}
	if f.JobType != "" {
		fields = append(fields, zap.String("job_type", f.JobType))
	}
	if f.CategoryID != nil {
		fields = append(fields, zap.Uint("category_id", *f.CategoryID))
	}
	if len(f.Countries) > 0 {
		fields = append(fields, zap.Strings("countries", f.Countries))
	}
	if f.Salary != nil {
		if f.Salary.Min != nil {
			fields = append(fields, zap.Float64("salary_min", *f.Salary.Min))
		}
		if f.Salary.Max != nil {
			fields = append(fields, zap.Float64("salary_max", *f.Salary.Max))
		}
	}
	if len(f.Skills) > 0 {
		fields = append(fields, zap.Strings("skills", f.Skills))
	}
	if f.BenefitID != nil {
		fields = append(fields, zap.Uint("benefit_id", *f.BenefitID))
	}
	if f.PostedAfter != nil {
		fields = append(fields, zap.Time("posted_after", *f.PostedAfter))
	}
	if f.Experience != "" {
		fields = append(fields, zap.String("experience", f.Experience))
	}
	if f.EmployerID != nil {
		fields = append(fields, zap.Uint("employer_id", *f.EmployerID))
	}
	return fields
}

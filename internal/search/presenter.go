package search

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// JobView is the assembled presentation row returned to API callers. Jobs are
// keyed by their stable public id; the internal numeric id never leaves the
// service.
type JobView struct {
	ID           string              `json:"id"`
	Title        string              `json:"title"`
	CompanyName  string              `json:"company_name"`
	CompanyLogo  string              `json:"company_logo,omitempty"`
	Location     string              `json:"location"`
	JobType      string              `json:"job_type"`
	CategoryName *string             `json:"category_name"`
	SalaryRange  *string             `json:"salary_range"`
	Tags         []string            `json:"tags"`
	IsFeatured   bool                `json:"is_featured"`
	IsNew        bool                `json:"is_new"`
	Vacancies    int                 `json:"vacancies"`
	PostedAt     *time.Time          `json:"posted_at"`
	Benefits     []string            `json:"benefits"`
	Descriptions map[string][]string `json:"descriptions"`
	HasApplied   bool                `json:"has_applied"`
	IsSaved      bool                `json:"is_saved"`
}

var jobTypeLabels = map[string]string{
	"full_time":  "Full-Time",
	"part_time":  "Part-Time",
	"temporary":  "Temporary",
	"contract":   "Contract",
	"internship": "Internship",
	"fresher":    "Fresher",
}

// HumanizeJobType maps a job type enum value to its display label. Unknown
// values fall back to title-cased words with underscores replaced by spaces.
func HumanizeJobType(jobType string) string {
	if jobType == "" {
		return ""
	}
	if label, ok := jobTypeLabels[jobType]; ok {
		return label
	}

	words := strings.Split(strings.ReplaceAll(jobType, "_", " "), " ")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// ComposeLocation builds the display location. Remote jobs are just "Remote";
// otherwise non-empty city/state/country parts are comma-joined, preferring
// the country name over its code. Only the top-level listing falls back to
// "Anywhere in the World" when nothing is set.
func ComposeLocation(r JobRecord, listing bool) string {
	if r.LocationType == "remote" {
		return "Remote"
	}

	country := r.CountryName
	if country == "" {
		country = r.CountryCode
	}

	var parts []string
	for _, p := range []string{r.City, r.StateProvince, country} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, strings.TrimSpace(p))
		}
	}

	location := strings.Join(parts, ", ")
	if location == "" && listing {
		return "Anywhere in the World"
	}
	return location
}

// ComposeSalaryRange renders the salary string per pay visibility:
// range -> "$Xk - $Yk" (or whichever bound is present), exact -> the max
// (falling back to min), starting_at -> "$Xk+". No visibility means no
// salary string.
func ComposeSalaryRange(visibility string, min, max *float64, currency string) *string {
	if visibility == "" {
		return nil
	}

	minF := formatPay(min, currency)
	maxF := formatPay(max, currency)

	var out string
	switch visibility {
	case "range":
		switch {
		case minF != "" && maxF != "":
			out = minF + " - " + maxF
		case minF != "":
			out = minF
		default:
			out = maxF
		}
	case "exact":
		out = maxF
		if out == "" {
			out = minF
		}
	case "starting_at":
		if minF != "" {
			out = minF + "+"
		}
	}

	if out == "" {
		return nil
	}
	return &out
}

func formatPay(v *float64, currency string) string {
	if v == nil {
		return ""
	}
	prefix := ""
	if currency == "" || currency == "USD" {
		prefix = "$"
	}
	return prefix + strconv.FormatFloat(math.Round(*v/1000), 'f', 0, 64) + "k"
}

// Tags builds the listing tag list: "Featured" when flagged, the humanized
// job type, and "Remote" when applicable.
func Tags(r JobRecord, flags RankingFlags) []string {
	tags := []string{}
	if flags.IsFeatured {
		tags = append(tags, "Featured")
	}
	if r.JobType != "" {
		tags = append(tags, HumanizeJobType(r.JobType))
	}
	if r.LocationType == "remote" {
		tags = append(tags, "Remote")
	}
	return tags
}

// Assemble merges a job record, its ranking flags, and the page enrichment
// into the final view row.
func Assemble(r JobRecord, flags RankingFlags, enr *Enrichment, listing bool) JobView {
	postedAt := r.EffectivePostedAt()
	var posted *time.Time
	if !postedAt.IsZero() {
		posted = &postedAt
	}

	return JobView{
		ID:           r.PublicID,
		Title:        r.Title,
		CompanyName:  r.EmployerName,
		CompanyLogo:  r.EmployerLogo,
		Location:     ComposeLocation(r, listing),
		JobType:      HumanizeJobType(r.JobType),
		CategoryName: r.CategoryName,
		SalaryRange:  ComposeSalaryRange(r.PayVisibility, r.PayMin, r.PayMax, r.Currency),
		Tags:         Tags(r, flags),
		IsFeatured:   flags.IsFeatured,
		IsNew:        flags.IsNew,
		Vacancies:    r.Vacancies,
		PostedAt:     posted,
		Benefits:     enr.benefits(r.ID),
		Descriptions: enr.descriptions(r.ID),
		HasApplied:   enr.applied(r.ID),
		IsSaved:      enr.saved(r.ID),
	}
}

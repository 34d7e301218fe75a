package search_test

import (
	"net/url"
	"testing"
	"time"

	"github.com/openhire/jobboard/internal/search"
)

var parseNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func TestParseFilterSet_Defaults(t *testing.T) {
	f := search.ParseFilterSet(url.Values{}, parseNow)

	if f.Page != 1 || f.PerPage != search.DefaultPerPage {
		t.Errorf("empty params page = %d/%d, want 1/%d", f.Page, f.PerPage, search.DefaultPerPage)
	}
	if f.Sort != search.SortNewest {
		t.Errorf("empty params sort = %q, want %q", f.Sort, search.SortNewest)
	}
	if len(f.SearchTerms) != 0 || f.JobType != "" || f.CategoryID != nil ||
		len(f.Countries) != 0 || f.Salary != nil || len(f.Skills) != 0 ||
		f.BenefitID != nil || f.PostedAfter != nil || f.Experience != "" || f.EmployerID != nil {
		t.Errorf("empty params should yield no constraints, got %+v", f)
	}
}

func TestParseFilterSet_SearchTerms(t *testing.T) {
	f := search.ParseFilterSet(url.Values{"search": {"  senior   go   engineer "}}, parseNow)
	want := []string{"senior", "go", "engineer"}
	if len(f.SearchTerms) != len(want) {
		t.Fatalf("SearchTerms = %v, want %v", f.SearchTerms, want)
	}
	for i, term := range want {
		if f.SearchTerms[i] != term {
			t.Errorf("SearchTerms[%d] = %q, want %q", i, f.SearchTerms[i], term)
		}
	}
}

func TestParseFilterSet_JobTypeNormalized(t *testing.T) {
	f := search.ParseFilterSet(url.Values{"jobtypes": {" Full_Time "}}, parseNow)
	if f.JobType != "full_time" {
		t.Errorf("JobType = %q, want %q", f.JobType, "full_time")
	}
}

// Multi-value parameters may arrive as a scalar, a repeated array, or a
// comma-joined string; all three must reduce to the same set.
func TestParseFilterSet_CountryShapes(t *testing.T) {
	cases := []struct {
		name   string
		params url.Values
	}{
		{"csv", url.Values{"country": {"US, DE,NL"}}},
		{"repeated", url.Values{"country": {"US", "DE", "NL"}}},
		{"array", url.Values{"country[]": {"US", "DE", "NL"}}},
		{"mixed", url.Values{"country": {"US,DE"}, "country[]": {"NL", "DE"}}},
	}
	want := []string{"US", "DE", "NL"}
	for _, c := range cases {
		f := search.ParseFilterSet(c.params, parseNow)
		if len(f.Countries) != len(want) {
			t.Errorf("%s: Countries = %v, want %v", c.name, f.Countries, want)
			continue
		}
		for i, country := range want {
			if f.Countries[i] != country {
				t.Errorf("%s: Countries[%d] = %q, want %q", c.name, i, f.Countries[i], country)
			}
		}
	}
}

func TestParseFilterSet_SkillsSlugged(t *testing.T) {
	f := search.ParseFilterSet(url.Values{"skills": {"React JS, Node.js"}}, parseNow)
	if len(f.Skills) != 2 || f.Skills[0] != "React JS" || f.Skills[1] != "Node.js" {
		t.Fatalf("Skills = %v, want [React JS Node.js]", f.Skills)
	}
	if len(f.SkillSlugs) != 2 || f.SkillSlugs[0] != "react-js" || f.SkillSlugs[1] != "node-js" {
		t.Errorf("SkillSlugs = %v, want [react-js node-js]", f.SkillSlugs)
	}
}

func TestParseFilterSet_NumericIDs(t *testing.T) {
	f := search.ParseFilterSet(url.Values{
		"category": {"3"},
		"benefits": {"7"},
		"company":  {"12"},
	}, parseNow)
	if f.CategoryID == nil || *f.CategoryID != 3 {
		t.Errorf("CategoryID = %v, want 3", f.CategoryID)
	}
	if f.BenefitID == nil || *f.BenefitID != 7 {
		t.Errorf("BenefitID = %v, want 7", f.BenefitID)
	}
	if f.EmployerID == nil || *f.EmployerID != 12 {
		t.Errorf("EmployerID = %v, want 12", f.EmployerID)
	}
}

func TestParseFilterSet_MalformedIDsDropped(t *testing.T) {
	f := search.ParseFilterSet(url.Values{
		"category": {"abc"},
		"benefits": {"0"},
		"company":  {"-4"},
	}, parseNow)
	if f.CategoryID != nil || f.BenefitID != nil || f.EmployerID != nil {
		t.Errorf("malformed ids should be dropped, got category=%v benefit=%v employer=%v",
			f.CategoryID, f.BenefitID, f.EmployerID)
	}
}

func TestParseFilterSet_ExplicitSalaryBoundsWinOverLabel(t *testing.T) {
	f := search.ParseFilterSet(url.Values{
		"salary_min": {"60000"},
		"salary":     {"100k-200k"},
	}, parseNow)
	if f.Salary == nil || f.Salary.Min == nil || *f.Salary.Min != 60000 {
		t.Fatalf("Salary = %+v, want explicit min 60000", f.Salary)
	}
	if f.Salary.Max != nil {
		t.Errorf("Salary.Max = %v, want unbounded", *f.Salary.Max)
	}
}

func TestParseFilterSet_DatePosted(t *testing.T) {
	f := search.ParseFilterSet(url.Values{"dateposted": {"last 7 days"}}, parseNow)
	if f.PostedAfter == nil {
		t.Fatal("PostedAfter = nil, want cutoff 7 days back")
	}
	if want := parseNow.AddDate(0, 0, -7); !f.PostedAfter.Equal(want) {
		t.Errorf("PostedAfter = %v, want %v", f.PostedAfter, want)
	}

	for _, label := range []string{"any", "", "yesterday", "last week"} {
		f := search.ParseFilterSet(url.Values{"dateposted": {label}}, parseNow)
		if f.PostedAfter != nil {
			t.Errorf("dateposted=%q should yield no constraint, got %v", label, f.PostedAfter)
		}
	}
}

func TestParseFilterSet_ExperienceLevel(t *testing.T) {
	f := search.ParseFilterSet(url.Values{"experiencelevel": {" 5 + "}}, parseNow)
	if f.Experience != "5+" {
		t.Errorf("Experience = %q, want %q", f.Experience, "5+")
	}

	f = search.ParseFilterSet(url.Values{"experiencelevel": {"wizard"}}, parseNow)
	if f.Experience != "" {
		t.Errorf("unknown experience label should be dropped, got %q", f.Experience)
	}
}

func TestParseFilterSet_SortModes(t *testing.T) {
	f := search.ParseFilterSet(url.Values{"sort": {"Oldest"}}, parseNow)
	if f.Sort != search.SortOldest {
		t.Errorf("sort=Oldest parsed as %q, want %q", f.Sort, search.SortOldest)
	}

	f = search.ParseFilterSet(url.Values{"sort": {"bogus"}}, parseNow)
	if f.Sort != search.SortNewest {
		t.Errorf("unknown sort parsed as %q, want default %q", f.Sort, search.SortNewest)
	}
}

func TestParseFilterSet_PaginationClamping(t *testing.T) {
	cases := []struct {
		page, perPage         string
		wantPage, wantPerPage int
	}{
		{"3", "50", 3, 50},
		{"0", "0", 1, search.DefaultPerPage},
		{"-2", "-10", 1, search.DefaultPerPage},
		{"abc", "xyz", 1, search.DefaultPerPage},
		{"1", "5000", 1, search.MaxPerPage},
	}
	for _, c := range cases {
		f := search.ParseFilterSet(url.Values{"page": {c.page}, "per_page": {c.perPage}}, parseNow)
		if f.Page != c.wantPage || f.PerPage != c.wantPerPage {
			t.Errorf("page=%q per_page=%q parsed as %d/%d, want %d/%d",
				c.page, c.perPage, f.Page, f.PerPage, c.wantPage, c.wantPerPage)
		}
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct{ in, want string }{
		{"React JS", "react-js"},
		{"Node.js", "node-js"},
		{"  C++  ", "c"},
		{"design & ux", "design-ux"},
		{"already-slugged", "already-slugged"},
		{"", ""},
		{"---", ""},
	}
	for _, c := range cases {
		if got := search.Slugify(c.in); got != c.want {
			t.Errorf("Slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseDatePosted_Units(t *testing.T) {
	cases := []struct {
		label string
		want  time.Time
	}{
		{"last 24 hours", parseNow.Add(-24 * time.Hour)},
		{"last 1 hour", parseNow.Add(-time.Hour)},
		{"last 30 days", parseNow.AddDate(0, 0, -30)},
		{"Last 2 Months", parseNow.AddDate(0, -2, 0)},
	}
	for _, c := range cases {
		got := search.ParseDatePosted(c.label, parseNow)
		if got == nil || !got.Equal(c.want) {
			t.Errorf("ParseDatePosted(%q) = %v, want %v", c.label, got, c.want)
		}
	}
}

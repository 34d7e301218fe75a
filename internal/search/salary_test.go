package search_test

import (
	"testing"

	"github.com/openhire/jobboard/internal/search"
)

func fptr(v float64) *float64 { return &v }

func TestParseSalaryLabel_Range(t *testing.T) {
	cases := []struct {
		label    string
		min, max float64
	}{
		{"50k-80k", 50000, 80000},
		{"50k - 80k", 50000, 80000},
		{"$50k-$80k", 50000, 80000},
		{"100K-150K", 100000, 150000},
		{"7.5k-10k", 7500, 10000},
	}
	for _, c := range cases {
		got := search.ParseSalaryLabel(c.label)
		if got == nil || got.Min == nil || got.Max == nil {
			t.Errorf("ParseSalaryLabel(%q) = %+v, want bounded range", c.label, got)
			continue
		}
		if *got.Min != c.min || *got.Max != c.max {
			t.Errorf("ParseSalaryLabel(%q) = [%v, %v], want [%v, %v]", c.label, *got.Min, *got.Max, c.min, c.max)
		}
	}
}

func TestParseSalaryLabel_OpenEnded(t *testing.T) {
	got := search.ParseSalaryLabel("180k+")
	if got == nil || got.Min == nil || *got.Min != 180000 {
		t.Fatalf("ParseSalaryLabel(\"180k+\") = %+v, want min 180000", got)
	}
	if got.Max != nil {
		t.Errorf("ParseSalaryLabel(\"180k+\") max = %v, want unbounded", *got.Max)
	}
}

func TestParseSalaryLabel_UpTo(t *testing.T) {
	got := search.ParseSalaryLabel("up to 80k")
	if got == nil || got.Max == nil || *got.Max != 80000 {
		t.Fatalf("ParseSalaryLabel(\"up to 80k\") = %+v, want max 80000", got)
	}
	if got.Min != nil {
		t.Errorf("ParseSalaryLabel(\"up to 80k\") min = %v, want unbounded", *got.Min)
	}
}

func TestParseSalaryLabel_Exact(t *testing.T) {
	got := search.ParseSalaryLabel("80k")
	if got == nil || got.Min == nil || got.Max == nil {
		t.Fatalf("ParseSalaryLabel(\"80k\") = %+v, want exact bounds", got)
	}
	if *got.Min != 80000 || *got.Max != 80000 {
		t.Errorf("ParseSalaryLabel(\"80k\") = [%v, %v], want [80000, 80000]", *got.Min, *got.Max)
	}
}

func TestParseSalaryLabel_Unrecognized(t *testing.T) {
	for _, label := range []string{"", "any", "garbage", "80", "k", "80k-", "-80k", "salary: competitive"} {
		if got := search.ParseSalaryLabel(label); got != nil {
			t.Errorf("ParseSalaryLabel(%q) = %+v, want nil (no constraint)", label, got)
		}
	}
}

package search_test

import (
	"context"
	"errors"
	"net/url"
	"sort"
	"strconv"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/openhire/jobboard/internal/apperrors"
	"github.com/openhire/jobboard/internal/search"
)

// fakeRepo serves pages out of an in-memory record set using the same
// ordering policy the SQL store emits, so pagination behaves like production.
type fakeRepo struct {
	records []search.JobRecord
	now     time.Time

	countCalls int
	pageCalls  int
	countErr   error
	pageErr    error
}

func (r *fakeRepo) CountJobs(ctx context.Context, f search.FilterSet) (int64, error) {
	r.countCalls++
	if r.countErr != nil {
		return 0, r.countErr
	}
	return int64(len(r.records)), nil
}

func (r *fakeRepo) JobPage(ctx context.Context, f search.FilterSet, now time.Time) ([]search.JobRecord, error) {
	r.pageCalls++
	if r.pageErr != nil {
		return nil, r.pageErr
	}

	ordered := make([]search.JobRecord, len(r.records))
	copy(ordered, r.records)
	search.SortPage(ordered, f.Sort, now)

	offset := (f.Page - 1) * f.PerPage
	if offset >= len(ordered) {
		return nil, nil
	}
	end := offset + f.PerPage
	if end > len(ordered) {
		end = len(ordered)
	}
	return ordered[offset:end], nil
}

// fakeEnricher records each LoadPage call; query count is fixed per call no
// matter how many job ids arrive.
type fakeEnricher struct {
	calls     int
	viewerIDs []*uint
	pageSizes []int
	data      *search.Enrichment
	err       error
}

func (e *fakeEnricher) LoadPage(ctx context.Context, viewerID *uint, jobIDs []uint) (*search.Enrichment, error) {
	e.calls++
	e.viewerIDs = append(e.viewerIDs, viewerID)
	e.pageSizes = append(e.pageSizes, len(jobIDs))
	if e.err != nil {
		return nil, e.err
	}
	if e.data != nil {
		return e.data, nil
	}
	return search.NewEnrichment(), nil
}

func newFixedService(repo *fakeRepo, enr *fakeEnricher, now time.Time) *search.Service {
	svc := search.NewService(repo, enr, zap.NewNop())
	svc.Now = func() time.Time { return now }
	return svc
}

func seedRecords(n int, now time.Time) []search.JobRecord {
	records := make([]search.JobRecord, 0, n)
	for i := 1; i <= n; i++ {
		// Two shared timestamps force heavy ties so ordering must fall
		// back to the id key.
		posted := now.AddDate(0, 0, -(i % 2))
		records = append(records, search.JobRecord{
			ID:       uint(i),
			PublicID: "pub-" + strconv.Itoa(i),
			JobType:  "contract",
			PostedAt: tptr(posted),
		})
	}
	return records
}

func TestSearch_PagesPartitionResults(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	repo := &fakeRepo{records: seedRecords(47, now), now: now}
	svc := newFixedService(repo, &fakeEnricher{}, now)

	seen := make(map[string]int)
	var total int
	for page := 1; page <= 3; page++ {
		params := url.Values{"page": {strconv.Itoa(page)}, "per_page": {"20"}}
		result, err := svc.Search(context.Background(), params, nil)
		if err != nil {
			t.Fatalf("page %d: Search returned error: %v", page, err)
		}
		for _, job := range result.Jobs {
			seen[job.ID]++
			total++
		}
		if result.Pagination.TotalJobs != 47 || result.Pagination.TotalPages != 3 {
			t.Errorf("page %d: pagination = %+v, want 47 jobs over 3 pages", page, result.Pagination)
		}
	}

	if total != 47 {
		t.Errorf("pages yielded %d rows, want 47", total)
	}
	for id, count := range seen {
		if count != 1 {
			t.Errorf("job %q appeared %d times across pages, want exactly once", id, count)
		}
	}
}

func TestSearch_EnrichmentIsOneBatchPerRequest(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	for _, n := range []int{1, 100} {
		repo := &fakeRepo{records: seedRecords(n, now), now: now}
		enr := &fakeEnricher{}
		svc := newFixedService(repo, enr, now)

		if _, err := svc.Search(context.Background(), url.Values{"per_page": {"100"}}, nil); err != nil {
			t.Fatalf("n=%d: Search returned error: %v", n, err)
		}

		// One count, one page, one enrichment batch, regardless of rows.
		if repo.countCalls != 1 || repo.pageCalls != 1 || enr.calls != 1 {
			t.Errorf("n=%d: calls count=%d page=%d enrich=%d, want 1 each",
				n, repo.countCalls, repo.pageCalls, enr.calls)
		}
		if enr.pageSizes[0] != n {
			t.Errorf("n=%d: enrichment batch size = %d, want %d", n, enr.pageSizes[0], n)
		}
	}
}

func TestSearch_AnonymousViewerFlags(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	repo := &fakeRepo{records: seedRecords(3, now), now: now}
	enr := &fakeEnricher{}
	svc := newFixedService(repo, enr, now)

	result, err := svc.Search(context.Background(), url.Values{}, nil)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}

	if len(enr.viewerIDs) != 1 || enr.viewerIDs[0] != nil {
		t.Errorf("enricher viewer = %v, want nil for anonymous", enr.viewerIDs)
	}
	for _, job := range result.Jobs {
		if job.HasApplied || job.IsSaved {
			t.Errorf("job %q has applied=%v saved=%v, want both false for anonymous", job.ID, job.HasApplied, job.IsSaved)
		}
	}
}

func TestSearch_ViewerEnrichmentFlowsThrough(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	posted := now.AddDate(0, 0, -1)
	repo := &fakeRepo{records: []search.JobRecord{{
		ID:            7,
		PublicID:      "feat-1",
		Title:         "Platform Engineer",
		EmployerName:  "Acme",
		JobType:       "full_time",
		LocationType:  "remote",
		PayVisibility: "range",
		PayMin:        fptr(180000),
		PayMax:        fptr(220000),
		Currency:      "USD",
		PostedAt:      &posted,
	}}, now: now}

	data := search.NewEnrichment()
	data.Applied[7] = true
	data.Saved[7] = true
	data.Benefits[7] = []string{"401k", "Remote budget"}
	enr := &fakeEnricher{data: data}

	svc := newFixedService(repo, enr, now)
	viewer := uint(12)

	result, err := svc.Search(context.Background(), url.Values{}, &viewer)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(result.Jobs) != 1 {
		t.Fatalf("got %d jobs, want 1", len(result.Jobs))
	}

	job := result.Jobs[0]
	if job.ID != "feat-1" {
		t.Errorf("job ID = %q, want public id feat-1", job.ID)
	}
	if !job.IsFeatured || !job.IsNew {
		t.Errorf("flags featured=%v new=%v, want both true", job.IsFeatured, job.IsNew)
	}
	wantTags := []string{"Featured", "Full-Time", "Remote"}
	if len(job.Tags) != len(wantTags) {
		t.Fatalf("Tags = %v, want %v", job.Tags, wantTags)
	}
	for i, tag := range wantTags {
		if job.Tags[i] != tag {
			t.Errorf("Tags[%d] = %q, want %q", i, job.Tags[i], tag)
		}
	}
	if !job.HasApplied || !job.IsSaved {
		t.Errorf("viewer flags applied=%v saved=%v, want both true", job.HasApplied, job.IsSaved)
	}
	if !sort.StringsAreSorted(job.Benefits) {
		t.Errorf("Benefits = %v, want alphabetical", job.Benefits)
	}
	if len(enr.viewerIDs) != 1 || enr.viewerIDs[0] == nil || *enr.viewerIDs[0] != viewer {
		t.Errorf("enricher viewer = %v, want %d", enr.viewerIDs, viewer)
	}
}

func TestSearch_EmptyResult(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	svc := newFixedService(&fakeRepo{now: now}, &fakeEnricher{}, now)

	result, err := svc.Search(context.Background(), url.Values{}, nil)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(result.Jobs) != 0 {
		t.Errorf("got %d jobs, want 0", len(result.Jobs))
	}
	if result.Pagination.TotalJobs != 0 || result.Pagination.TotalPages != 0 || result.Pagination.CurrentPage != 1 {
		t.Errorf("pagination = %+v, want zero totals on page 1", result.Pagination)
	}
}

func TestSearch_StorageFailureIsInternal(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	repo := &fakeRepo{now: now, countErr: errors.New("connection reset")}
	svc := newFixedService(repo, &fakeEnricher{}, now)

	_, err := svc.Search(context.Background(), url.Values{}, nil)
	if err == nil {
		t.Fatal("Search should surface storage failure")
	}

	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) || domainErr.Type != apperrors.ErrTypeInternal {
		t.Errorf("error = %v, want DomainError of type INTERNAL", err)
	}
}

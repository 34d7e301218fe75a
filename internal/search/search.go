package search

import (
	"context"
	"net/url"
	"time"

	"github.com/openhire/jobboard/internal/apperrors"
	"go.uber.org/zap"
)

// JobRepository runs the filtered, paginated query over published jobs.
type JobRepository interface {
	// CountJobs returns how many published jobs match the filter set.
	CountJobs(ctx context.Context, f FilterSet) (int64, error)

	// JobPage loads one page of matching records, ordered featured-first,
	// then by effective posted date per the sort mode, then by id.
	JobPage(ctx context.Context, f FilterSet, now time.Time) ([]JobRecord, error)
}

// EnrichmentStore batch-loads per-viewer and per-job auxiliary data for a
// whole page of job ids in a fixed number of queries.
type EnrichmentStore interface {
	LoadPage(ctx context.Context, viewerID *uint, jobIDs []uint) (*Enrichment, error)
}

type Pagination struct {
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	TotalJobs   int64 `json:"total_jobs"`
}

// PageResult is one assembled page of search results.
type PageResult struct {
	Jobs       []JobView  `json:"jobs"`
	Pagination Pagination `json:"pagination"`
}

// Service is the search orchestrator: parse -> predicate -> paginated query
// -> rank -> enrich -> assemble. It performs reads only.
type Service struct {
	repo     JobRepository
	enricher EnrichmentStore
	logger   *zap.Logger

	// Now is the injected clock. One request reads it exactly once so that
	// filter cutoffs and ranking flags agree with each other.
	Now func() time.Time
}

func NewService(repo JobRepository, enricher EnrichmentStore, logger *zap.Logger) *Service {
	return &Service{
		repo:     repo,
		enricher: enricher,
		logger:   logger,
		Now:      time.Now,
	}
}

// Search executes one search request. Filter values that parse to nothing are
// dropped silently; the only error path is storage failure, which is logged
// with the parsed filters and surfaced as a generic internal error.
func (s *Service) Search(ctx context.Context, params url.Values, viewerID *uint) (*PageResult, error) {
	now := s.Now()
	f := ParseFilterSet(params, now)

	total, err := s.repo.CountJobs(ctx, f)
	if err != nil {
		s.logger.Error("job search count failed", append(f.LogFields(), zap.Error(err))...)
		return nil, apperrors.Internal("job search failed", err)
	}

	records, err := s.repo.JobPage(ctx, f, now)
	if err != nil {
		s.logger.Error("job search page failed", append(f.LogFields(), zap.Error(err))...)
		return nil, apperrors.Internal("job search failed", err)
	}

	// The repository already orders the page; applying the same policy here
	// keeps the SQL and in-process orderings from drifting apart.
	SortPage(records, f.Sort, now)

	jobIDs := make([]uint, len(records))
	for i, r := range records {
		jobIDs[i] = r.ID
	}

	enr, err := s.enricher.LoadPage(ctx, viewerID, jobIDs)
	if err != nil {
		s.logger.Error("job search enrichment failed", append(f.LogFields(), zap.Error(err))...)
		return nil, apperrors.Internal("job search failed", err)
	}

	jobs := make([]JobView, 0, len(records))
	for _, r := range records {
		jobs = append(jobs, Assemble(r, ComputeFlags(r, now), enr, true))
	}

	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(f.PerPage) - 1) / int64(f.PerPage))
	}

	return &PageResult{
		Jobs: jobs,
		Pagination: Pagination{
			CurrentPage: f.Page,
			TotalPages:  totalPages,
			TotalJobs:   total,
		},
	}, nil
}

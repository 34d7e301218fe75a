package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/openhire/jobboard/internal/models"
	"github.com/openhire/jobboard/internal/search"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Columns the free-text search matches against. Terms are AND-ed; within one
// term these columns are OR-ed.
var searchColumns = []string{
	"jobs.title",
	"jobs.description",
	"jobs.job_type",
	"jobs.city",
	"jobs.state_province",
	"jobs.country_name",
	"jobs.country_code",
	"employers.company_name",
	"categories.name",
}

const jobPageColumns = `jobs.id, jobs.uuid AS public_id, jobs.title, jobs.description,
jobs.employer_id, employers.company_name AS employer_name, employers.website AS employer_website,
employers.logo_url AS employer_logo, jobs.category_id, categories.name AS category_name,
jobs.job_type, jobs.location_type, jobs.city, jobs.state_province, jobs.country_code,
jobs.country_name, jobs.vacancies, jobs.pay_visibility, jobs.pay_min, jobs.pay_max,
jobs.currency, jobs.pay_period, jobs.status, jobs.posted_at, jobs.closed_at, jobs.created_at`

// SearchStore implements search.JobRepository over gorm/Postgres. Each filter
// field contributes one AND-ed predicate; multi-valued fields OR within the
// field. Only published rows are ever visible.
type SearchStore struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewSearchStore(db *gorm.DB, logger *zap.Logger) *SearchStore {
	return &SearchStore{db: db, logger: logger}
}

func (s *SearchStore) CountJobs(ctx context.Context, f search.FilterSet) (int64, error) {
	var total int64
	err := s.scoped(ctx, f).Count(&total).Error
	if err != nil {
		return 0, fmt.Errorf("count jobs: %w", err)
	}
	return total, nil
}

func (s *SearchStore) JobPage(ctx context.Context, f search.FilterSet, now time.Time) ([]search.JobRecord, error) {
	records := []search.JobRecord{}

	err := s.scoped(ctx, f).
		Select(jobPageColumns).
		Clauses(orderClause(f.Sort, now)).
		Limit(f.PerPage).
		Offset((f.Page - 1) * f.PerPage).
		Scan(&records).Error
	if err != nil {
		return nil, fmt.Errorf("load job page: %w", err)
	}

	return records, nil
}

// FindPublished loads one published job record by its public id, joined the
// same way as a page row. A miss returns (nil, nil).
func (s *SearchStore) FindPublished(ctx context.Context, publicID string) (*search.JobRecord, error) {
	records := []search.JobRecord{}

	err := s.db.WithContext(ctx).
		Model(&models.Job{}).
		Joins("JOIN employers ON employers.id = jobs.employer_id").
		Joins("LEFT JOIN categories ON categories.id = jobs.category_id").
		Where("jobs.status = ? AND jobs.uuid = ?", models.JobStatusPublished, publicID).
		Select(jobPageColumns).
		Limit(1).
		Scan(&records).Error
	if err != nil {
		return nil, fmt.Errorf("load published job: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	return &records[0], nil
}

// scoped builds the filtered query. Called once per statement so gorm never
// reuses a half-consumed builder between count and page.
func (s *SearchStore) scoped(ctx context.Context, f search.FilterSet) *gorm.DB {
	q := s.db.WithContext(ctx).
		Model(&models.Job{}).
		Joins("JOIN employers ON employers.id = jobs.employer_id").
		Joins("LEFT JOIN categories ON categories.id = jobs.category_id").
		Where("jobs.status = ?", models.JobStatusPublished)

	for _, term := range f.SearchTerms {
		q = q.Where(termClause(term))
	}

	if f.JobType != "" {
		q = q.Where("LOWER(jobs.job_type) LIKE ?", "%"+f.JobType+"%")
	}

	if f.CategoryID != nil {
		q = q.Where("jobs.category_id = ?", *f.CategoryID)
	}

	if f.EmployerID != nil {
		q = q.Where("jobs.employer_id = ?", *f.EmployerID)
	}

	if f.BenefitID != nil {
		q = q.Where(
			"EXISTS (SELECT 1 FROM job_benefit_job bj WHERE bj.job_id = jobs.id AND bj.job_benefit_id = ?)",
			*f.BenefitID,
		)
	}

	if len(f.Countries) > 0 {
		codes := make([]string, len(f.Countries))
		for i, c := range f.Countries {
			codes[i] = strings.ToUpper(c)
		}
		q = q.Where("(UPPER(jobs.country_code) IN ? OR jobs.country_name IN ?)", codes, f.Countries)
	}

	// Overlap semantics: the job's [pay_min, pay_max] interval must intersect
	// the requested bounds, with a missing job bound treated as open-ended.
	if f.Salary != nil {
		if f.Salary.Max != nil {
			q = q.Where("(jobs.pay_min IS NULL OR jobs.pay_min <= ?)", *f.Salary.Max)
		}
		if f.Salary.Min != nil {
			q = q.Where("(jobs.pay_max IS NULL OR jobs.pay_max >= ?)", *f.Salary.Min)
		}
	}

	if len(f.SkillSlugs) > 0 {
		// Existence sub-query rather than a join, so multi-skill jobs do not
		// duplicate rows.
		q = q.Where(
			`EXISTS (SELECT 1 FROM job_skill js JOIN skills ON skills.id = js.skill_id
			WHERE js.job_id = jobs.id AND (skills.slug IN ? OR skills.name IN ?))`,
			f.SkillSlugs, f.Skills,
		)
	}

	if f.PostedAfter != nil {
		q = q.Where("jobs.posted_at >= ?", *f.PostedAfter)
	}

	if f.Experience != "" {
		if pattern := search.ExperiencePattern(f.Experience); pattern != "" {
			// Best-effort regex scan over description prose.
			q = q.Where("jobs.description ~* ?", pattern)
		}
	}

	return q
}

func termClause(term string) clause.Expr {
	pattern := "%" + strings.ToLower(term) + "%"

	var b strings.Builder
	args := make([]interface{}, 0, len(searchColumns))
	b.WriteByte('(')
	for i, col := range searchColumns {
		if i > 0 {
			b.WriteString(" OR ")
		}
		b.WriteString("LOWER(" + col + ") LIKE ?")
		args = append(args, pattern)
	}
	b.WriteByte(')')

	return clause.Expr{SQL: b.String(), Vars: args}
}

// orderClause mirrors search.SortPage in SQL: featured first, then the
// effective posted date per the sort mode, then id as the deterministic
// tie-break. Ordering before LIMIT/OFFSET is what keeps page boundaries
// stable across repeated identical requests.
func orderClause(mode search.SortMode, now time.Time) clause.OrderBy {
	dir := "DESC"
	if mode == search.SortOldest {
		dir = "ASC"
	}

	sql := `((jobs.pay_max IS NOT NULL AND jobs.pay_max >= ?)
		OR (COALESCE(jobs.posted_at, jobs.created_at) >= ? AND jobs.job_type = 'full_time')) DESC,
		COALESCE(jobs.posted_at, jobs.created_at) ` + dir + `, jobs.id ASC`

	return clause.OrderBy{
		Expression: clause.Expr{
			SQL:                sql,
			Vars:               []interface{}{float64(search.FeaturedPayFloor), now.Add(-search.NewWindow)},
			WithoutParentheses: true,
		},
	}
}

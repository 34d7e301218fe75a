package storage

import (
	"context"
	"fmt"

	"github.com/openhire/jobboard/internal/models"
	"github.com/openhire/jobboard/internal/search"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GormEnrichmentStore implements search.EnrichmentStore with at most four
// batched queries per page, independent of page size and of which filters
// produced the page.
type GormEnrichmentStore struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewEnrichmentStore(db *gorm.DB, logger *zap.Logger) *GormEnrichmentStore {
	return &GormEnrichmentStore{db: db, logger: logger}
}

func (s *GormEnrichmentStore) LoadPage(ctx context.Context, viewerID *uint, jobIDs []uint) (*search.Enrichment, error) {
	enr := search.NewEnrichment()
	if len(jobIDs) == 0 {
		return enr, nil
	}

	if viewerID != nil {
		var appliedIDs []uint
		err := s.db.WithContext(ctx).
			Model(&models.Application{}).
			Where("user_id = ? AND job_id IN ?", *viewerID, jobIDs).
			Pluck("job_id", &appliedIDs).Error
		if err != nil {
			return nil, fmt.Errorf("load applied state: %w", err)
		}
		for _, id := range appliedIDs {
			enr.Applied[id] = true
		}

		// Saved state lives under the viewer's seeker profile; a viewer
		// without one simply saves nothing.
		var savedIDs []uint
		err = s.db.WithContext(ctx).
			Model(&models.SavedJob{}).
			Joins("JOIN job_seekers ON job_seekers.id = saved_jobs.seeker_id").
			Where("job_seekers.user_id = ? AND saved_jobs.job_id IN ?", *viewerID, jobIDs).
			Pluck("saved_jobs.job_id", &savedIDs).Error
		if err != nil {
			return nil, fmt.Errorf("load saved state: %w", err)
		}
		for _, id := range savedIDs {
			enr.Saved[id] = true
		}
	}

	var benefitRows []struct {
		JobID uint
		Name  string
	}
	err := s.db.WithContext(ctx).
		Table("job_benefit_job").
		Select("job_benefit_job.job_id, job_benefits.name").
		Joins("JOIN job_benefits ON job_benefits.id = job_benefit_job.job_benefit_id").
		Where("job_benefit_job.job_id IN ?", jobIDs).
		Order("job_benefits.name ASC").
		Scan(&benefitRows).Error
	if err != nil {
		return nil, fmt.Errorf("load benefits: %w", err)
	}
	for _, row := range benefitRows {
		enr.Benefits[row.JobID] = append(enr.Benefits[row.JobID], row.Name)
	}

	var descRows []struct {
		JobID   uint
		Type    string
		Content string
	}
	err = s.db.WithContext(ctx).
		Model(&models.JobDescription{}).
		Select("job_id, type, content").
		Where("job_id IN ?", jobIDs).
		Order("id ASC").
		Scan(&descRows).Error
	if err != nil {
		return nil, fmt.Errorf("load description sections: %w", err)
	}
	for _, row := range descRows {
		if enr.Descriptions[row.JobID] == nil {
			enr.Descriptions[row.JobID] = make(map[string][]string)
		}
		enr.Descriptions[row.JobID][row.Type] = append(enr.Descriptions[row.JobID][row.Type], row.Content)
	}

	return enr, nil
}

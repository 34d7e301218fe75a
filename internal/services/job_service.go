package services

import (
	"context"
	"errors"
	"time"

	"github.com/openhire/jobboard/internal/apperrors"
	"github.com/openhire/jobboard/internal/dtos"
	"github.com/openhire/jobboard/internal/models"
	"github.com/openhire/jobboard/internal/search"
	"github.com/openhire/jobboard/internal/storage"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// JobDetail is the single-job view: the listing row plus the full description
// and employer link. Detail pages never get the "Anywhere in the World"
// fallback.
type JobDetail struct {
	search.JobView
	Description     string `json:"description"`
	CompanyWebsite  string `json:"company_website"`
	ApplicationLink string `json:"application_link"`
}

type JobService struct {
	DB       *gorm.DB
	Store    *storage.SearchStore
	Enricher search.EnrichmentStore
	Logger   *zap.Logger
}

func NewJobService(db *gorm.DB, store *storage.SearchStore, enricher search.EnrichmentStore, logger *zap.Logger) *JobService {
	return &JobService{
		DB:       db,
		Store:    store,
		Enricher: enricher,
		Logger:   logger,
	}
}

// EmployerForUser resolves the employer a user posts on behalf of.
func (s *JobService) EmployerForUser(ctx context.Context, userID uint) (uint, error) {
	var membership models.EmployerUser
	err := s.DB.WithContext(ctx).Where("user_id = ?", userID).First(&membership).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, apperrors.Forbidden("no employer associated with this account", nil)
	}
	if err != nil {
		return 0, apperrors.Internal("resolve employer failed", err)
	}
	return membership.EmployerID, nil
}

// CreateJob stores a new draft job for the employer, together with its
// skills, benefits, and description sections.
func (s *JobService) CreateJob(ctx context.Context, employerID uint, req *dtos.JobCreateRequest) (*models.Job, error) {
	job := &models.Job{
		EmployerID:    employerID,
		CategoryID:    req.CategoryID,
		Title:         req.Title,
		Description:   req.Description,
		LocationType:  req.LocationType,
		City:          req.City,
		StateProvince: req.StateProvince,
		CountryCode:   req.CountryCode,
		CountryName:   req.CountryName,
		JobType:       req.JobType,
		PayVisibility: req.PayVisibility,
		PayMin:        req.PayMin,
		PayMax:        req.PayMax,
		Currency:      req.Currency,
		PayPeriod:     req.PayPeriod,
		Status:        models.JobStatusDraft,
	}
	if req.Vacancies > 0 {
		job.Vacancies = req.Vacancies
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(req.SkillIDs) > 0 {
			if err := tx.Where("id IN ?", req.SkillIDs).Find(&job.Skills).Error; err != nil {
				return err
			}
		}
		if len(req.BenefitIDs) > 0 {
			if err := tx.Where("id IN ?", req.BenefitIDs).Find(&job.Benefits).Error; err != nil {
				return err
			}
		}
		for _, d := range req.Descriptions {
			job.Descriptions = append(job.Descriptions, models.JobDescription{
				Type:    d.Type,
				Content: d.Content,
			})
		}
		return tx.Create(job).Error
	})
	if err != nil {
		s.Logger.Error("create job failed", zap.Uint("employer_id", employerID), zap.Error(err))
		return nil, apperrors.Internal("create job failed", err)
	}

	return job, nil
}

func (s *JobService) UpdateJob(ctx context.Context, employerID uint, publicID string, req *dtos.JobUpdateRequest) (*models.Job, error) {
	job, err := s.ownedJob(ctx, employerID, publicID)
	if err != nil {
		return nil, err
	}

	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyString(&job.Title, req.Title)
	applyString(&job.Description, req.Description)
	applyString(&job.LocationType, req.LocationType)
	applyString(&job.JobType, req.JobType)
	applyString(&job.City, req.City)
	applyString(&job.StateProvince, req.StateProvince)
	applyString(&job.CountryCode, req.CountryCode)
	applyString(&job.CountryName, req.CountryName)
	applyString(&job.PayVisibility, req.PayVisibility)
	applyString(&job.Currency, req.Currency)
	applyString(&job.PayPeriod, req.PayPeriod)

	if req.CategoryID != nil {
		job.CategoryID = req.CategoryID
	}
	if req.Vacancies != nil {
		job.Vacancies = *req.Vacancies
	}
	if req.PayMin != nil {
		job.PayMin = req.PayMin
	}
	if req.PayMax != nil {
		job.PayMax = req.PayMax
	}

	if err := s.DB.WithContext(ctx).Save(job).Error; err != nil {
		s.Logger.Error("update job failed", zap.String("job_id", publicID), zap.Error(err))
		return nil, apperrors.Internal("update job failed", err)
	}

	return job, nil
}

// PublishJob makes a job visible to search and stamps posted_at.
func (s *JobService) PublishJob(ctx context.Context, employerID uint, publicID string) (*models.Job, error) {
	job, err := s.ownedJob(ctx, employerID, publicID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	job.Status = models.JobStatusPublished
	job.PostedAt = &now

	if err := s.DB.WithContext(ctx).Save(job).Error; err != nil {
		s.Logger.Error("publish job failed", zap.String("job_id", publicID), zap.Error(err))
		return nil, apperrors.Internal("publish job failed", err)
	}

	return job, nil
}

func (s *JobService) CloseJob(ctx context.Context, employerID uint, publicID string) (*models.Job, error) {
	job, err := s.ownedJob(ctx, employerID, publicID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	job.Status = models.JobStatusClosed
	job.ClosedAt = &now

	if err := s.DB.WithContext(ctx).Save(job).Error; err != nil {
		s.Logger.Error("close job failed", zap.String("job_id", publicID), zap.Error(err))
		return nil, apperrors.Internal("close job failed", err)
	}

	return job, nil
}

// Detail loads one published job by public id, enriched the same way the
// listing is.
func (s *JobService) Detail(ctx context.Context, publicID string, viewerID *uint) (*JobDetail, error) {
	record, err := s.Store.FindPublished(ctx, publicID)
	if err != nil {
		s.Logger.Error("load job detail failed", zap.String("job_id", publicID), zap.Error(err))
		return nil, apperrors.Internal("load job failed", err)
	}
	if record == nil {
		return nil, apperrors.NotFound("job not found", nil)
	}

	enr, err := s.Enricher.LoadPage(ctx, viewerID, []uint{record.ID})
	if err != nil {
		s.Logger.Error("load job detail enrichment failed", zap.String("job_id", publicID), zap.Error(err))
		return nil, apperrors.Internal("load job failed", err)
	}

	now := time.Now()
	view := search.Assemble(*record, search.ComputeFlags(*record, now), enr, false)

	return &JobDetail{
		JobView:         view,
		Description:     record.Description,
		CompanyWebsite:  record.EmployerWebsite,
		ApplicationLink: record.EmployerWebsite,
	}, nil
}

func (s *JobService) ownedJob(ctx context.Context, employerID uint, publicID string) (*models.Job, error) {
	var job models.Job
	err := s.DB.WithContext(ctx).Where("uuid = ?", publicID).First(&job).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("job not found", nil)
	}
	if err != nil {
		return nil, apperrors.Internal("load job failed", err)
	}
	if job.EmployerID != employerID {
		return nil, apperrors.Forbidden("job belongs to another employer", nil)
	}
	return &job, nil
}

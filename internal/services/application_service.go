package services

import (
	"context"
	"errors"
	"time"

	"github.com/openhire/jobboard/internal/apperrors"
	"github.com/openhire/jobboard/internal/dtos"
	"github.com/openhire/jobboard/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ApplicationService struct {
	DB       *gorm.DB
	Notifier Notifier
	Logger   *zap.Logger
}

func NewApplicationService(db *gorm.DB, notifier Notifier, logger *zap.Logger) *ApplicationService {
	return &ApplicationService{
		DB:       db,
		Notifier: notifier,
		Logger:   logger,
	}
}

// Apply records an application against a published job. Known viewers are
// guarded against duplicate applications; guests may apply with contact
// details alone.
func (s *ApplicationService) Apply(ctx context.Context, publicID string, viewerID *uint, req *dtos.ApplicationRequest) (*models.Application, error) {
	var job models.Job
	err := s.DB.WithContext(ctx).
		Where("uuid = ? AND status = ?", publicID, models.JobStatusPublished).
		First(&job).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("this job is not currently accepting applications", nil)
	}
	if err != nil {
		return nil, apperrors.Internal("load job failed", err)
	}

	if viewerID != nil {
		var existing int64
		err = s.DB.WithContext(ctx).
			Model(&models.Application{}).
			Where("job_id = ? AND user_id = ?", job.ID, *viewerID).
			Count(&existing).Error
		if err != nil {
			return nil, apperrors.Internal("check existing application failed", err)
		}
		if existing > 0 {
			return nil, apperrors.InvalidInput("you have already applied for this job", nil)
		}
	}

	app := &models.Application{
		JobID:       job.ID,
		UserID:      viewerID,
		ResumeID:    req.ResumeID,
		AppliedAt:   time.Now(),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Country:     req.Country,
		City:        req.City,
		LinkedinURL: req.LinkedinURL,
		CoverLetter: req.CoverLetter,
	}

	if err := s.DB.WithContext(ctx).Create(app).Error; err != nil {
		s.Logger.Error("create application failed",
			zap.String("job_id", publicID),
			zap.Error(err),
		)
		return nil, apperrors.Internal("create application failed", err)
	}

	s.Notifier.ApplicationReceived(ctx, &job, app)

	return app, nil
}

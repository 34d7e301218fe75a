package services

import (
	"context"
	"errors"

	"github.com/openhire/jobboard/internal/apperrors"
	"github.com/openhire/jobboard/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type SavedJobService struct {
	DB     *gorm.DB
	Logger *zap.Logger
}

func NewSavedJobService(db *gorm.DB, logger *zap.Logger) *SavedJobService {
	return &SavedJobService{DB: db, Logger: logger}
}

// Save bookmarks a published job under the viewer's seeker profile, creating
// the profile on first use. Saving twice is a no-op.
func (s *SavedJobService) Save(ctx context.Context, viewerID uint, publicID string) error {
	job, err := s.publishedJob(ctx, publicID)
	if err != nil {
		return err
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var seeker models.JobSeeker
		if err := tx.Where(models.JobSeeker{UserID: viewerID}).FirstOrCreate(&seeker).Error; err != nil {
			return err
		}

		var saved models.SavedJob
		return tx.Where(models.SavedJob{SeekerID: seeker.ID, JobID: job.ID}).FirstOrCreate(&saved).Error
	})
	if err != nil {
		s.Logger.Error("save job failed",
			zap.Uint("viewer_id", viewerID),
			zap.String("job_id", publicID),
			zap.Error(err),
		)
		return apperrors.Internal("save job failed", err)
	}

	return nil
}

// Unsave removes the bookmark if it exists.
func (s *SavedJobService) Unsave(ctx context.Context, viewerID uint, publicID string) error {
	job, err := s.publishedJob(ctx, publicID)
	if err != nil {
		return err
	}

	var seeker models.JobSeeker
	err = s.DB.WithContext(ctx).Where("user_id = ?", viewerID).First(&seeker).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return apperrors.Internal("unsave job failed", err)
	}

	err = s.DB.WithContext(ctx).
		Where("seeker_id = ? AND job_id = ?", seeker.ID, job.ID).
		Delete(&models.SavedJob{}).Error
	if err != nil {
		s.Logger.Error("unsave job failed",
			zap.Uint("viewer_id", viewerID),
			zap.String("job_id", publicID),
			zap.Error(err),
		)
		return apperrors.Internal("unsave job failed", err)
	}

	return nil
}

func (s *SavedJobService) publishedJob(ctx context.Context, publicID string) (*models.Job, error) {
	var job models.Job
	err := s.DB.WithContext(ctx).
		Where("uuid = ? AND status = ?", publicID, models.JobStatusPublished).
		First(&job).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("job not found", nil)
	}
	if err != nil {
		return nil, apperrors.Internal("load job failed", err)
	}
	return &job, nil
}

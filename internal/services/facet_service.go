package services

import (
	"context"
	"errors"
	"time"

	"github.com/openhire/jobboard/internal/apperrors"
	"github.com/openhire/jobboard/internal/cache"
	"github.com/openhire/jobboard/internal/dtos"
	"github.com/openhire/jobboard/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// FacetService serves the static filter-UI lists. The taxonomy changes
// rarely, so each list sits in redis behind a TTL; the cache is optional and
// every miss or cache failure falls through to Postgres.
type FacetService struct {
	DB     *gorm.DB
	Cache  *cache.Cache
	TTL    time.Duration
	Logger *zap.Logger
}

func NewFacetService(db *gorm.DB, c *cache.Cache, ttl time.Duration, logger *zap.Logger) *FacetService {
	return &FacetService{
		DB:     db,
		Cache:  c,
		TTL:    ttl,
		Logger: logger,
	}
}

func (s *FacetService) Categories(ctx context.Context) ([]dtos.CategoryFacet, error) {
	facets := []dtos.CategoryFacet{}
	if s.cached(ctx, cache.CategoriesKey, &facets) {
		return facets, nil
	}

	err := s.DB.WithContext(ctx).
		Model(&models.Category{}).
		Select("id, name, slug").
		Order("name ASC").
		Scan(&facets).Error
	if err != nil {
		return nil, apperrors.Internal("load categories failed", err)
	}

	s.store(ctx, cache.CategoriesKey, facets)
	return facets, nil
}

func (s *FacetService) Benefits(ctx context.Context) ([]dtos.BenefitFacet, error) {
	facets := []dtos.BenefitFacet{}
	if s.cached(ctx, cache.BenefitsKey, &facets) {
		return facets, nil
	}

	err := s.DB.WithContext(ctx).
		Model(&models.JobBenefit{}).
		Select("id, name").
		Order("name ASC").
		Scan(&facets).Error
	if err != nil {
		return nil, apperrors.Internal("load benefits failed", err)
	}

	s.store(ctx, cache.BenefitsKey, facets)
	return facets, nil
}

func (s *FacetService) Employers(ctx context.Context) ([]dtos.EmployerFacet, error) {
	facets := []dtos.EmployerFacet{}
	if s.cached(ctx, cache.EmployersKey, &facets) {
		return facets, nil
	}

	err := s.DB.WithContext(ctx).
		Model(&models.Employer{}).
		Select("id, company_name").
		Order("company_name ASC").
		Scan(&facets).Error
	if err != nil {
		return nil, apperrors.Internal("load employers failed", err)
	}

	s.store(ctx, cache.EmployersKey, facets)
	return facets, nil
}

func (s *FacetService) All(ctx context.Context) (*dtos.Facets, error) {
	categories, err := s.Categories(ctx)
	if err != nil {
		return nil, err
	}
	benefits, err := s.Benefits(ctx)
	if err != nil {
		return nil, err
	}
	employers, err := s.Employers(ctx)
	if err != nil {
		return nil, err
	}

	return &dtos.Facets{
		Categories: categories,
		Benefits:   benefits,
		Employers:  employers,
	}, nil
}

func (s *FacetService) cached(ctx context.Context, key string, dest interface{}) bool {
	if s.Cache == nil {
		return false
	}
	err := s.Cache.Get(ctx, key, dest)
	if err == nil {
		return true
	}
	if !errors.Is(err, cache.ErrMiss) {
		s.Logger.Warn("facet cache read failed", zap.String("key", key), zap.Error(err))
	}
	return false
}

func (s *FacetService) store(ctx context.Context, key string, value interface{}) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Set(ctx, key, value, s.TTL); err != nil {
		s.Logger.Warn("facet cache write failed", zap.String("key", key), zap.Error(err))
	}
}

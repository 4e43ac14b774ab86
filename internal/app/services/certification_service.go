package services

import (
	"context"

	"github.com/edudata/scedapi/internal/app/models"
	"github.com/edudata/scedapi/internal/app/models/dto"
	"github.com/edudata/scedapi/internal/pkg/helpers"
)

// CertificationStore is the read surface the certification service needs
// from the certification repository.
type CertificationStore interface {
	SearchAreas(ctx context.Context, term string, offset uint64, limit int) ([]models.CertificationArea, int64, error)
	CTECoursesByName(ctx context.Context, name string, offset uint64, limit int) ([]models.Course, int64, error)
}

// CertificationService defines certification area operations
type CertificationService interface {
	SearchCertifications(ctx context.Context, term string, page, limit int) ([]models.CertificationArea, dto.PaginationInfo, error)
	CTECoursesByName(ctx context.Context, name string, page, limit int) ([]models.Course, dto.PaginationInfo, error)
}

type certificationService struct {
	certifications CertificationStore
}

// NewCertificationService creates a new certification service
func NewCertificationService(certifications CertificationStore) CertificationService {
	return &certificationService{certifications: certifications}
}

// SearchCertifications returns distinct certification area pairs matching
// the term. "*" is treated the same as an empty term.
func (s *certificationService) SearchCertifications(ctx context.Context, term string, page, limit int) ([]models.CertificationArea, dto.PaginationInfo, error) {
	offset, boundedLimit := helpers.CalculateOffsetLimit(page, limit)

	areas, total, err := s.certifications.SearchAreas(ctx, term, offset, boundedLimit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	return areas, helpers.NewPaginationInfo(total, page, boundedLimit), nil
}

// CTECoursesByName returns CTE-flagged courses mapped to the exact
// certification area description.
func (s *certificationService) CTECoursesByName(ctx context.Context, name string, page, limit int) ([]models.Course, dto.PaginationInfo, error) {
	offset, boundedLimit := helpers.CalculateOffsetLimit(page, limit)

	courses, total, err := s.certifications.CTECoursesByName(ctx, name, offset, boundedLimit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	return courses, helpers.NewPaginationInfo(total, page, boundedLimit), nil
}

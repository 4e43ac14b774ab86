package services

import (
	"context"

	"github.com/edudata/scedapi/internal/app/models"
	"github.com/edudata/scedapi/internal/app/models/dto"
	"github.com/edudata/scedapi/internal/pkg/helpers"
)

// CourseStore is the read surface the course service needs from the
// course repository.
type CourseStore interface {
	Search(ctx context.Context, term string, offset uint64, limit int) ([]models.Course, int64, error)
	GetByCode(ctx context.Context, code string) (*models.Course, error)
	GetCertificationDescriptions(ctx context.Context, code string) ([]string, error)
}

// CourseService defines course operations
type CourseService interface {
	SearchCourses(ctx context.Context, term string, page, limit int) ([]models.Course, dto.PaginationInfo, error)
	GetCourseByCode(ctx context.Context, code string) (*models.Course, []string, error)
}

type courseService struct {
	courses CourseStore
}

// NewCourseService creates a new course service
func NewCourseService(courses CourseStore) CourseService {
	return &courseService{courses: courses}
}

// SearchCourses returns the matching page of courses plus pagination
// metadata computed from the full matching set.
func (s *courseService) SearchCourses(ctx context.Context, term string, page, limit int) ([]models.Course, dto.PaginationInfo, error) {
	offset, boundedLimit := helpers.CalculateOffsetLimit(page, limit)

	courses, total, err := s.courses.Search(ctx, term, offset, boundedLimit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	return courses, helpers.NewPaginationInfo(total, page, boundedLimit), nil
}

// GetCourseByCode returns a course and its mapped certification area
// descriptions.
func (s *courseService) GetCourseByCode(ctx context.Context, code string) (*models.Course, []string, error) {
	course, err := s.courses.GetByCode(ctx, code)
	if err != nil {
		return nil, nil, err
	}

	certifications, err := s.courses.GetCertificationDescriptions(ctx, code)
	if err != nil {
		return nil, nil, err
	}

	return course, certifications, nil
}

package services

import (
	"context"
	"fmt"
)

// CourseCounter counts course rows.
type CourseCounter interface {
	Count(ctx context.Context) (int64, error)
}

// MappingCounter counts certification mapping rows and distinct areas.
type MappingCounter interface {
	CountDistinctDescriptions(ctx context.Context) (int64, error)
	CountMappings(ctx context.Context) (int64, error)
}

// DatasetStats holds the dataset totals.
type DatasetStats struct {
	TotalCourses        int64
	TotalCertifications int64
	TotalMappings       int64
}

// StatsService computes aggregate dataset statistics.
type StatsService interface {
	GetStats(ctx context.Context) (*DatasetStats, error)
}

type statsService struct {
	courses  CourseCounter
	mappings MappingCounter
}

// NewStatsService creates a new stats service
func NewStatsService(courses CourseCounter, mappings MappingCounter) StatsService {
	return &statsService{
		courses:  courses,
		mappings: mappings,
	}
}

// GetStats counts courses, distinct certification area descriptions, and
// mapping rows.
func (s *statsService) GetStats(ctx context.Context) (*DatasetStats, error) {
	courses, err := s.courses.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count courses: %w", err)
	}
	certifications, err := s.mappings.CountDistinctDescriptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count certification areas: %w", err)
	}
	mappings, err := s.mappings.CountMappings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count mappings: %w", err)
	}

	return &DatasetStats{
		TotalCourses:        courses,
		TotalCertifications: certifications,
		TotalMappings:       mappings,
	}, nil
}

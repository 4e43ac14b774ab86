package services

import (
	"context"
	"fmt"

	"github.com/edudata/scedapi/internal/pkg/logger"
	"github.com/edudata/scedapi/internal/seed"
)

// SchemaEnsurer provisions the tables and constraints idempotently.
type SchemaEnsurer interface {
	EnsureTables(ctx context.Context) error
	EnsureMappingConstraint(ctx context.Context) error
}

// SetupResult reports what the setup run actually changed.
type SetupResult struct {
	Seeded bool
}

// SetupService provisions the database schema and baseline data. Every step
// is idempotent so the endpoint can be called repeatedly.
type SetupService interface {
	Setup(ctx context.Context) (*SetupResult, error)
}

type setupService struct {
	schema   SchemaEnsurer
	courses  seed.CourseStore
	mappings seed.MappingStore
}

// NewSetupService creates a new setup service
func NewSetupService(schema SchemaEnsurer, courses seed.CourseStore, mappings seed.MappingStore) SetupService {
	return &setupService{
		schema:   schema,
		courses:  courses,
		mappings: mappings,
	}
}

// Setup creates the tables if missing, ensures the mapping uniqueness
// constraint, and seeds the baseline dataset when the course table is empty.
func (s *setupService) Setup(ctx context.Context) (*SetupResult, error) {
	if err := s.schema.EnsureTables(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure tables: %w", err)
	}
	if err := s.schema.EnsureMappingConstraint(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure mapping constraint: %w", err)
	}

	seeded, err := seed.SeedDatabase(ctx, s.courses, s.mappings)
	if err != nil {
		return nil, err
	}

	logger.Info().Bool("seeded", seeded).Msg("Setup completed")
	return &SetupResult{Seeded: seeded}, nil
}

// Package seed loads a small baseline dataset so a fresh deployment can
// answer queries before any CSV import has run.
package seed

import (
	"context"
	"fmt"

	"github.com/edudata/scedapi/internal/app/models"
	"github.com/edudata/scedapi/internal/pkg/logger"
)

// CourseStore is the write surface seeding needs from the course repository.
type CourseStore interface {
	Count(ctx context.Context) (int64, error)
	InsertIfAbsent(ctx context.Context, course *models.Course) (bool, error)
}

// MappingStore is the write surface seeding needs from the certification
// repository.
type MappingStore interface {
	InsertMappingIfAbsent(ctx context.Context, mapping *models.CertificationMapping) (bool, error)
}

var seedCourses = []models.Course{
	{
		Code:            "03001",
		CodeDescription: "Biology",
		Description:     "Biology courses survey living organisms, cell structure and function, heredity, and ecosystems.",
		SubjectArea:     "Life and Physical Sciences",
		Level:           "High School",
		CTEIndicator:    models.CTEIndicatorNo,
	},
	{
		Code:            "20114",
		CodeDescription: "Agricultural Mechanics",
		Description:     "Agricultural Mechanics courses cover the maintenance and repair of agricultural equipment and structures.",
		SubjectArea:     "Agriculture, Food, and Natural Resources",
		Level:           "High School",
		CTEIndicator:    models.CTEIndicatorYes,
	},
	{
		Code:            "02052",
		CodeDescription: "Algebra I",
		Description:     "Algebra I courses include the study of properties and operations of the real number system.",
		SubjectArea:     "Mathematics",
		Level:           "High School",
		CTEIndicator:    models.CTEIndicatorNo,
	},
}

var seedMappings = []models.CertificationMapping{
	{CourseCode: "03001", CertificationAreaCode: "04", CertificationAreaDescription: "Biology (Grades 5-9)"},
	{CourseCode: "03001", CertificationAreaCode: "05", CertificationAreaDescription: "Biology (Grades 7-12)"},
	{CourseCode: "20114", CertificationAreaCode: "01", CertificationAreaDescription: "Agriculture (Grades 5-9)"},
	{CourseCode: "02052", CertificationAreaCode: "30", CertificationAreaDescription: "Mathematics (Grades 5-9)"},
}

// SeedDatabase inserts the baseline courses and certification mappings when
// the course table is empty. Re-running it against a populated database is a
// no-op, so it is safe to call on every startup.
func SeedDatabase(ctx context.Context, courses CourseStore, mappings MappingStore) (bool, error) {
	count, err := courses.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count courses before seeding: %w", err)
	}
	if count > 0 {
		logger.Debug().Int64("courses", count).Msg("Database already populated, skipping seed")
		return false, nil
	}

	for i := range seedCourses {
		if _, err := courses.InsertIfAbsent(ctx, &seedCourses[i]); err != nil {
			return false, fmt.Errorf("failed to seed course %s: %w", seedCourses[i].Code, err)
		}
	}
	for i := range seedMappings {
		if _, err := mappings.InsertMappingIfAbsent(ctx, &seedMappings[i]); err != nil {
			return false, fmt.Errorf("failed to seed mapping %s/%s: %w",
				seedMappings[i].CourseCode, seedMappings[i].CertificationAreaCode, err)
		}
	}

	logger.Info().
		Int("courses", len(seedCourses)).
		Int("mappings", len(seedMappings)).
		Msg("Seeded baseline dataset")
	return true, nil
}

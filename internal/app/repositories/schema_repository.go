package repositories

import (
	"context"
	"fmt"

	"github.com/edudata/scedapi/internal/pkg/dberrors"
	"github.com/edudata/scedapi/internal/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SchemaRepository owns the idempotent schema-creation path used by the
// setup operation. Regular startup applies the same DDL through the
// file-based migrator; both paths are safe to run repeatedly.
type SchemaRepository struct {
	db *pgxpool.Pool
}

// NewSchemaRepository creates a new schema repository
func NewSchemaRepository(db *pgxpool.Pool) *SchemaRepository {
	return &SchemaRepository{db: db}
}

// EnsureTables creates both tables when they do not exist yet.
func (r *SchemaRepository) EnsureTables(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS course (
			code              TEXT PRIMARY KEY,
			code_description  TEXT NOT NULL DEFAULT '',
			description       TEXT NOT NULL DEFAULT '',
			subject_area      TEXT NOT NULL DEFAULT '',
			level             TEXT NOT NULL DEFAULT '',
			cte_indicator     TEXT NOT NULL DEFAULT 'No'
		)`,
		`CREATE TABLE IF NOT EXISTS certification_mapping (
			id                             BIGSERIAL PRIMARY KEY,
			course_code                    TEXT NOT NULL,
			certification_area_code        TEXT NOT NULL,
			certification_area_description TEXT NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := r.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}

	return nil
}

// EnsureMappingConstraint adds the uniqueness constraint on
// (course_code, certification_area_code). Application is best-effort: a
// constraint that already exists is not an error.
func (r *SchemaRepository) EnsureMappingConstraint(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
		ALTER TABLE certification_mapping
		ADD CONSTRAINT certification_mapping_course_area_key
		UNIQUE (course_code, certification_area_code)
	`)
	if err != nil {
		if dberrors.IsDuplicateObjectError(err) {
			return nil
		}
		logger.Warn().Err(err).Msg("Could not apply mapping uniqueness constraint")
		return nil
	}
	return nil
}

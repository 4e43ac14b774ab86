package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/edudata/scedapi/internal/app/models"
	"github.com/edudata/scedapi/internal/pkg/dberrors"
	"github.com/edudata/scedapi/internal/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CertificationRepository handles database operations for certification
// area mappings
type CertificationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCertificationRepository creates a new certification repository
func NewCertificationRepository(db *pgxpool.Pool) *CertificationRepository {
	return &CertificationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// areaSearchPredicate builds the filter for certification search. Both an
// empty term and the literal "*" mean no filter.
func areaSearchPredicate(term string) squirrel.Sqlizer {
	term = strings.TrimSpace(term)
	if term == "" || term == "*" {
		return nil
	}
	return squirrel.ILike{"certification_area_description": "%" + term + "%"}
}

// SearchAreas retrieves distinct (code, description) certification area
// pairs matching the term, with pagination. The total reflects the count of
// distinct matching pairs.
func (r *CertificationRepository) SearchAreas(ctx context.Context, term string, offset uint64, limit int) ([]models.CertificationArea, int64, error) {
	predicate := areaSearchPredicate(term)

	distinctSelect := r.sb.Select("certification_area_code", "certification_area_description").
		Distinct().
		From("certification_mapping")
	if predicate != nil {
		distinctSelect = distinctSelect.Where(predicate)
	}

	countSelect := r.sb.Select("COUNT(*)").FromSelect(distinctSelect, "areas")
	countSql, countArgs, err := countSelect.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count certifications query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error executing count certifications query")
		return nil, 0, fmt.Errorf("failed to count certifications: %w", err)
	}

	if total == 0 {
		return []models.CertificationArea{}, 0, nil
	}

	querySql, queryArgs, err := distinctSelect.
		OrderBy("certification_area_description").
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build search certifications query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, queryArgs...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing search certifications query")
		return nil, 0, fmt.Errorf("failed to query certifications: %w", err)
	}
	defer rows.Close()

	areas := make([]models.CertificationArea, 0)
	for rows.Next() {
		var area models.CertificationArea
		if err := rows.Scan(&area.CertificationAreaCode, &area.CertificationAreaDescription); err != nil {
			return nil, 0, fmt.Errorf("failed to scan certification area row: %w", err)
		}
		areas = append(areas, area)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating certification rows: %w", err)
	}

	return areas, total, nil
}

// CTECoursesByName retrieves CTE-flagged courses joined through the mapping
// table where the certification area description equals name exactly.
// The description, not the area code, is the join key; this mirrors the
// public API contract.
func (r *CertificationRepository) CTECoursesByName(ctx context.Context, name string, offset uint64, limit int) ([]models.Course, int64, error) {
	predicate := squirrel.And{
		squirrel.Eq{"cm.certification_area_description": name},
		squirrel.Eq{"c.cte_indicator": models.CTEIndicatorYes},
	}

	countSql, countArgs, err := r.sb.Select("COUNT(DISTINCT c.code)").
		From("course c").
		Join("certification_mapping cm ON cm.course_code = c.code").
		Where(predicate).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count cte courses query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error executing count cte courses query")
		return nil, 0, fmt.Errorf("failed to count cte courses: %w", err)
	}

	if total == 0 {
		return []models.Course{}, 0, nil
	}

	querySql, queryArgs, err := r.sb.Select(
		"DISTINCT c.code", "c.code_description", "c.description",
		"c.subject_area", "c.level", "c.cte_indicator",
	).
		From("course c").
		Join("certification_mapping cm ON cm.course_code = c.code").
		Where(predicate).
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build cte courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, queryArgs...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing cte courses query")
		return nil, 0, fmt.Errorf("failed to query cte courses: %w", err)
	}
	defer rows.Close()

	courses, err := scanCourses(rows)
	if err != nil {
		return nil, 0, err
	}

	return courses, total, nil
}

// MappingExists checks if a mapping exists for the
// (courseCode, certificationAreaCode) pair.
func (r *CertificationRepository) MappingExists(ctx context.Context, courseCode, areaCode string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM certification_mapping
			WHERE course_code = $1 AND certification_area_code = $2
		)`, courseCode, areaCode).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking mapping existence: %w", err)
	}
	return exists, nil
}

// InsertMappingIfAbsent inserts a mapping only when no row with the same
// (courseCode, certificationAreaCode) pair exists. It reports whether an
// insert occurred.
func (r *CertificationRepository) InsertMappingIfAbsent(ctx context.Context, mapping *models.CertificationMapping) (bool, error) {
	exists, err := r.MappingExists(ctx, mapping.CourseCode, mapping.CertificationAreaCode)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	query := `
		INSERT INTO certification_mapping (course_code, certification_area_code, certification_area_description)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err = r.db.QueryRow(ctx, query,
		mapping.CourseCode,
		mapping.CertificationAreaCode,
		mapping.CertificationAreaDescription,
	).Scan(&mapping.ID)
	if err != nil {
		// Concurrent import of the same file can race past the EXISTS check
		if dberrors.IsUniqueViolation(err) {
			return false, nil
		}
		return false, fmt.Errorf("error inserting certification mapping: %w", err)
	}

	return true, nil
}

// CountMappings returns the total number of mapping rows.
func (r *CertificationRepository) CountMappings(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM certification_mapping`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count mappings: %w", err)
	}
	return total, nil
}

// CountDistinctDescriptions returns the number of distinct certification
// area descriptions.
func (r *CertificationRepository) CountDistinctDescriptions(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(DISTINCT certification_area_description) FROM certification_mapping`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count distinct certifications: %w", err)
	}
	return total, nil
}

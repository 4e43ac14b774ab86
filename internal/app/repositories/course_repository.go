package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/edudata/scedapi/internal/app/models"
	"github.com/edudata/scedapi/internal/pkg/apperrors"
	"github.com/edudata/scedapi/internal/pkg/dberrors"
	"github.com/edudata/scedapi/internal/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var courseColumns = []string{
	"code", "code_description", "description", "subject_area", "level", "cte_indicator",
}

// CourseRepository handles database operations for SCED courses
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// searchPredicate builds the shared filter for course search. An empty term
// yields no predicate at all (unfiltered scan).
func courseSearchPredicate(term string) squirrel.Sqlizer {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}
	pattern := "%" + term + "%"
	return squirrel.Or{
		squirrel.ILike{"code_description": pattern},
		squirrel.ILike{"description": pattern},
		squirrel.ILike{"code": pattern},
	}
}

// Search retrieves courses matching the term with pagination. The returned
// total is computed with the same predicate over the full table, independent
// of the requested window. Row order is database-default; callers must not
// rely on it.
func (r *CourseRepository) Search(ctx context.Context, term string, offset uint64, limit int) ([]models.Course, int64, error) {
	predicate := courseSearchPredicate(term)

	countSelect := r.sb.Select("COUNT(*)").From("course")
	if predicate != nil {
		countSelect = countSelect.Where(predicate)
	}

	countSql, countArgs, err := countSelect.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count courses query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error executing count courses query")
		return nil, 0, fmt.Errorf("failed to count courses: %w", err)
	}

	if total == 0 {
		return []models.Course{}, 0, nil
	}

	baseSelect := r.sb.Select(courseColumns...).From("course")
	if predicate != nil {
		baseSelect = baseSelect.Where(predicate)
	}
	baseSelect = baseSelect.Limit(uint64(limit)).Offset(offset)

	querySql, queryArgs, err := baseSelect.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build search courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, queryArgs...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing search courses query")
		return nil, 0, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	courses, err := scanCourses(rows)
	if err != nil {
		return nil, 0, err
	}

	return courses, total, nil
}

// GetByCode retrieves a single course by its code.
func (r *CourseRepository) GetByCode(ctx context.Context, code string) (*models.Course, error) {
	querySql, args, err := r.sb.Select(courseColumns...).
		From("course").
		Where(squirrel.Eq{"code": code}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	var course models.Course
	err = r.db.QueryRow(ctx, querySql, args...).Scan(
		&course.Code,
		&course.CodeDescription,
		&course.Description,
		&course.SubjectArea,
		&course.Level,
		&course.CTEIndicator,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Str("code", code).Msg("Error retrieving course by code")
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return &course, nil
}

// GetCertificationDescriptions returns the certification area descriptions
// mapped to a course code, ordered for stable output.
func (r *CourseRepository) GetCertificationDescriptions(ctx context.Context, code string) ([]string, error) {
	query := `
		SELECT DISTINCT certification_area_description
		FROM certification_mapping
		WHERE course_code = $1
		ORDER BY certification_area_description
	`

	rows, err := r.db.Query(ctx, query, code)
	if err != nil {
		return nil, fmt.Errorf("failed to query course certifications: %w", err)
	}
	defer rows.Close()

	descriptions := make([]string, 0)
	for rows.Next() {
		var description string
		if err := rows.Scan(&description); err != nil {
			return nil, fmt.Errorf("failed to scan certification description: %w", err)
		}
		descriptions = append(descriptions, description)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return descriptions, nil
}

// ExistsByCode checks if a course exists for the given code.
func (r *CourseRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM course WHERE code = $1)`, code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking course existence: %w", err)
	}
	return exists, nil
}

// InsertIfAbsent inserts a course only when no row with the same code exists.
// It reports whether an insert occurred.
func (r *CourseRepository) InsertIfAbsent(ctx context.Context, course *models.Course) (bool, error) {
	exists, err := r.ExistsByCode(ctx, course.Code)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	query := `
		INSERT INTO course (code, code_description, description, subject_area, level, cte_indicator)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = r.db.Exec(ctx, query,
		course.Code,
		course.CodeDescription,
		course.Description,
		course.SubjectArea,
		course.Level,
		course.CTEIndicator,
	)
	if err != nil {
		// Concurrent import of the same file can race past the EXISTS check
		if dberrors.IsUniqueViolation(err) {
			return false, nil
		}
		return false, fmt.Errorf("error inserting course: %w", err)
	}

	return true, nil
}

// Count returns the total number of courses.
func (r *CourseRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM course`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count courses: %w", err)
	}
	return total, nil
}

func scanCourses(rows pgx.Rows) ([]models.Course, error) {
	courses := make([]models.Course, 0)
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.Code,
			&course.CodeDescription,
			&course.Description,
			&course.SubjectArea,
			&course.Level,
			&course.CTEIndicator,
		); err != nil {
			logger.Error().Err(err).Msg("Error scanning course row")
			return nil, fmt.Errorf("failed to scan course row: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, nil
}

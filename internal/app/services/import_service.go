package services

import (
	"context"
	"fmt"
	"os"

	"github.com/edudata/scedapi/internal/app/models"
	"github.com/edudata/scedapi/internal/pkg/apperrors"
	"github.com/edudata/scedapi/internal/pkg/csvutil"
	"github.com/edudata/scedapi/internal/pkg/logger"
)

// ImportType identifies which table an uploaded file targets.
type ImportType string

const (
	ImportTypeCourse  ImportType = "course"
	ImportTypeMapping ImportType = "certification_mapping"
)

// Column-name aliases per logical field, in preference order: the
// human-readable header first, then the snake_case alternate. Lookup is
// case-insensitive.
var (
	courseCodeAliases      = []string{"Course Code", "course_code"}
	codeDescriptionAliases = []string{"Code Description", "code_description"}
	descriptionAliases     = []string{"Description", "description"}
	subjectAreaAliases     = []string{"Subject Area", "subject_area"}
	levelAliases           = []string{"Level", "level"}
	cteIndicatorAliases    = []string{"CTE Indicator", "cte_indicator"}
	areaCodeAliases        = []string{"Certification Area Code", "certification_area_code"}
	areaDescriptionAliases = []string{"Certification Area Description", "certification_area_description"}
)

// RowOutcome classifies what happened to one file row.
type RowOutcome int

const (
	// RowInserted means a new row was written.
	RowInserted RowOutcome = iota
	// RowSkipped means the row was not written: a required field was
	// missing or an equivalent row already existed.
	RowSkipped
	// RowFailed means the insert errored; the import continued.
	RowFailed
)

// RowResult records the outcome for one data row.
type RowResult struct {
	Line    int // 1-based data row number within the file
	Outcome RowOutcome
	Reason  string
	Err     error
}

// ImportSummary aggregates per-row results for one import run.
type ImportSummary struct {
	Type    ImportType
	Results []RowResult
}

// Inserted counts rows actually written.
func (s *ImportSummary) Inserted() int { return s.count(RowInserted) }

// Skipped counts rows dropped for missing fields or existing duplicates.
func (s *ImportSummary) Skipped() int { return s.count(RowSkipped) }

// Failed counts rows whose insert errored.
func (s *ImportSummary) Failed() int { return s.count(RowFailed) }

// Processed counts all non-empty data rows read from the file.
func (s *ImportSummary) Processed() int { return len(s.Results) }

func (s *ImportSummary) count(outcome RowOutcome) int {
	n := 0
	for _, r := range s.Results {
		if r.Outcome == outcome {
			n++
		}
	}
	return n
}

// CourseInserter writes courses when absent.
type CourseInserter interface {
	InsertIfAbsent(ctx context.Context, course *models.Course) (bool, error)
}

// MappingInserter writes certification mappings when absent.
type MappingInserter interface {
	InsertMappingIfAbsent(ctx context.Context, mapping *models.CertificationMapping) (bool, error)
}

// ImportService bulk-loads rows from an uploaded CSV file.
type ImportService interface {
	ImportFile(ctx context.Context, path string) (*ImportSummary, error)
}

type importService struct {
	courses  CourseInserter
	mappings MappingInserter
}

// NewImportService creates a new import service
func NewImportService(courses CourseInserter, mappings MappingInserter) ImportService {
	return &importService{
		courses:  courses,
		mappings: mappings,
	}
}

// ImportFile parses the stored file and inserts rows that are not already
// present. The target table is detected once, from the columns of the first
// data row; later rows are interpreted under that decision. Individual row
// failures are recorded and do not abort the run.
func (s *importService) ImportFile(ctx context.Context, path string) (*ImportSummary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	records, err := csvutil.ParseRecords(file)
	if err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrEmptyCSV, "could not parse any rows from file")
	}
	if len(records) == 0 {
		return nil, apperrors.ErrEmptyCSV
	}

	summary := &ImportSummary{Type: detectImportType(records[0])}

	for i, record := range records {
		line := i + 1

		var result RowResult
		switch summary.Type {
		case ImportTypeMapping:
			result = s.importMappingRow(ctx, record)
		default:
			result = s.importCourseRow(ctx, record)
		}
		result.Line = line

		if result.Outcome == RowFailed {
			logger.Warn().Err(result.Err).Int("line", line).Str("type", string(summary.Type)).Msg("Row insert failed, continuing import")
		}

		summary.Results = append(summary.Results, result)
	}

	logger.Info().
		Str("type", string(summary.Type)).
		Int("processed", summary.Processed()).
		Int("inserted", summary.Inserted()).
		Int("skipped", summary.Skipped()).
		Int("failed", summary.Failed()).
		Msg("CSV import finished")

	return summary, nil
}

// detectImportType inspects the first record's columns. Any certification
// area code variant marks the whole file as mapping data.
func detectImportType(first csvutil.Record) ImportType {
	if first.Has(areaCodeAliases...) {
		return ImportTypeMapping
	}
	return ImportTypeCourse
}

func (s *importService) importCourseRow(ctx context.Context, record csvutil.Record) RowResult {
	course := models.Course{
		Code:            record.Get(courseCodeAliases...),
		CodeDescription: record.Get(codeDescriptionAliases...),
		Description:     record.Get(descriptionAliases...),
		SubjectArea:     record.Get(subjectAreaAliases...),
		Level:           record.Get(levelAliases...),
		CTEIndicator:    record.Get(cteIndicatorAliases...),
	}
	if course.CTEIndicator == "" {
		course.CTEIndicator = models.CTEIndicatorNo
	}

	if course.Code == "" || course.CodeDescription == "" {
		return RowResult{Outcome: RowSkipped, Reason: "missing required course fields"}
	}

	inserted, err := s.courses.InsertIfAbsent(ctx, &course)
	if err != nil {
		return RowResult{Outcome: RowFailed, Err: err}
	}
	if !inserted {
		return RowResult{Outcome: RowSkipped, Reason: "course already exists"}
	}

	return RowResult{Outcome: RowInserted}
}

func (s *importService) importMappingRow(ctx context.Context, record csvutil.Record) RowResult {
	mapping := models.CertificationMapping{
		CourseCode:                   record.Get(courseCodeAliases...),
		CertificationAreaCode:        record.Get(areaCodeAliases...),
		CertificationAreaDescription: record.Get(areaDescriptionAliases...),
	}

	if mapping.CourseCode == "" || mapping.CertificationAreaCode == "" || mapping.CertificationAreaDescription == "" {
		return RowResult{Outcome: RowSkipped, Reason: "missing required mapping fields"}
	}

	inserted, err := s.mappings.InsertMappingIfAbsent(ctx, &mapping)
	if err != nil {
		return RowResult{Outcome: RowFailed, Err: err}
	}
	if !inserted {
		return RowResult{Outcome: RowSkipped, Reason: "mapping already exists"}
	}

	return RowResult{Outcome: RowInserted}
}

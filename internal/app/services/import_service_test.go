package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/edudata/scedapi/internal/app/models"
	"github.com/edudata/scedapi/internal/pkg/apperrors"
)

type fakeCourseInserter struct {
	seen    map[string]bool
	failOn  map[string]error
	courses []models.Course
}

func newFakeCourseInserter() *fakeCourseInserter {
	return &fakeCourseInserter{seen: make(map[string]bool), failOn: make(map[string]error)}
}

func (f *fakeCourseInserter) InsertIfAbsent(_ context.Context, course *models.Course) (bool, error) {
	if err, ok := f.failOn[course.Code]; ok {
		return false, err
	}
	if f.seen[course.Code] {
		return false, nil
	}
	f.seen[course.Code] = true
	f.courses = append(f.courses, *course)
	return true, nil
}

type fakeMappingInserter struct {
	seen     map[string]bool
	mappings []models.CertificationMapping
}

func newFakeMappingInserter() *fakeMappingInserter {
	return &fakeMappingInserter{seen: make(map[string]bool)}
}

func (f *fakeMappingInserter) InsertMappingIfAbsent(_ context.Context, m *models.CertificationMapping) (bool, error) {
	key := m.CourseCode + "|" + m.CertificationAreaCode
	if f.seen[key] {
		return false, nil
	}
	f.seen[key] = true
	f.mappings = append(f.mappings, *m)
	return true, nil
}

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "upload.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp csv: %v", err)
	}
	return path
}

func TestImportFileCourses(t *testing.T) {
	csv := "Course Code,Code Description,Description,Subject Area,Level,CTE Indicator\n" +
		"03001,Biology,General biology,Science,High,No\n" +
		"20114,Agricultural Mechanics,Ag mechanics,CTE,High,Yes\n" +
		"02052,Algebra I,First-year algebra,Math,High,\n"

	courses := newFakeCourseInserter()
	svc := NewImportService(courses, newFakeMappingInserter())

	summary, err := svc.ImportFile(context.Background(), writeTempCSV(t, csv))
	if err != nil {
		t.Fatalf("ImportFile() error = %v", err)
	}

	if summary.Type != ImportTypeCourse {
		t.Errorf("Type = %q, want %q", summary.Type, ImportTypeCourse)
	}
	if summary.Processed() != 3 || summary.Inserted() != 3 || summary.Skipped() != 0 || summary.Failed() != 0 {
		t.Errorf("summary = processed %d inserted %d skipped %d failed %d, want 3/3/0/0",
			summary.Processed(), summary.Inserted(), summary.Skipped(), summary.Failed())
	}

	// An empty CTE indicator defaults to No.
	if got := courses.courses[2].CTEIndicator; got != models.CTEIndicatorNo {
		t.Errorf("CTEIndicator for blank cell = %q, want %q", got, models.CTEIndicatorNo)
	}
}

func TestImportFileDetectsMappingsFromSnakeCaseHeader(t *testing.T) {
	csv := "course_code,certification_area_code,certification_area_description\n" +
		"03001,04,Biology (Grades 5-9)\n" +
		"03001,05,Biology (Grades 7-12)\n"

	mappings := newFakeMappingInserter()
	svc := NewImportService(newFakeCourseInserter(), mappings)

	summary, err := svc.ImportFile(context.Background(), writeTempCSV(t, csv))
	if err != nil {
		t.Fatalf("ImportFile() error = %v", err)
	}

	if summary.Type != ImportTypeMapping {
		t.Errorf("Type = %q, want %q", summary.Type, ImportTypeMapping)
	}
	if summary.Inserted() != 2 {
		t.Errorf("Inserted() = %d, want 2", summary.Inserted())
	}
	if len(mappings.mappings) != 2 {
		t.Fatalf("stored mappings = %d, want 2", len(mappings.mappings))
	}
	if mappings.mappings[0].CertificationAreaDescription != "Biology (Grades 5-9)" {
		t.Errorf("first mapping description = %q", mappings.mappings[0].CertificationAreaDescription)
	}
}

func TestImportFileSecondRunInsertsNothing(t *testing.T) {
	csv := "Course Code,Code Description\n" +
		"03001,Biology\n" +
		"20114,Agricultural Mechanics\n"

	courses := newFakeCourseInserter()
	svc := NewImportService(courses, newFakeMappingInserter())
	path := writeTempCSV(t, csv)

	first, err := svc.ImportFile(context.Background(), path)
	if err != nil {
		t.Fatalf("first ImportFile() error = %v", err)
	}
	if first.Inserted() != 2 {
		t.Fatalf("first run Inserted() = %d, want 2", first.Inserted())
	}

	second, err := svc.ImportFile(context.Background(), path)
	if err != nil {
		t.Fatalf("second ImportFile() error = %v", err)
	}
	if second.Inserted() != 0 {
		t.Errorf("second run Inserted() = %d, want 0", second.Inserted())
	}
	if second.Skipped() != 2 {
		t.Errorf("second run Skipped() = %d, want 2", second.Skipped())
	}
}

func TestImportFileSkipsAndFailuresDoNotAbort(t *testing.T) {
	csv := "Course Code,Code Description\n" +
		"03001,Biology\n" +
		",Missing code\n" +
		"99999,Broken row\n" +
		"02052,Algebra I\n"

	courses := newFakeCourseInserter()
	courses.failOn["99999"] = errors.New("connection reset")
	svc := NewImportService(courses, newFakeMappingInserter())

	summary, err := svc.ImportFile(context.Background(), writeTempCSV(t, csv))
	if err != nil {
		t.Fatalf("ImportFile() error = %v", err)
	}

	if summary.Processed() != 4 {
		t.Errorf("Processed() = %d, want 4", summary.Processed())
	}
	if summary.Inserted() != 2 {
		t.Errorf("Inserted() = %d, want 2", summary.Inserted())
	}
	if summary.Skipped() != 1 {
		t.Errorf("Skipped() = %d, want 1", summary.Skipped())
	}
	if summary.Failed() != 1 {
		t.Errorf("Failed() = %d, want 1", summary.Failed())
	}
}

func TestImportFileEmpty(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no rows at all", ""},
		{"header only", "Course Code,Code Description\n"},
		{"header and blank rows", "Course Code,Code Description\n,,\n , \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewImportService(newFakeCourseInserter(), newFakeMappingInserter())
			_, err := svc.ImportFile(context.Background(), writeTempCSV(t, tt.content))
			if !errors.Is(err, apperrors.ErrEmptyCSV) {
				t.Errorf("ImportFile() error = %v, want ErrEmptyCSV", err)
			}
		})
	}
}

func TestImportFileMissingFile(t *testing.T) {
	svc := NewImportService(newFakeCourseInserter(), newFakeMappingInserter())
	if _, err := svc.ImportFile(context.Background(), filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Error("ImportFile() on missing file returned nil error")
	}
}

package dto

import "github.com/edudata/scedapi/internal/app/models"

// CourseResponse represents a course in search results. The ID field is
// derived from the course code; the two are always equal.
type CourseResponse struct {
	ID              string `json:"id" example:"03001"`
	Code            string `json:"code" example:"03001"`
	CodeDescription string `json:"codeDescription" example:"Biology"`
	Description     string `json:"description" example:"Biology courses provide..."`
	SubjectArea     string `json:"subjectArea" example:"Life and Physical Sciences"`
	Level           string `json:"level" example:"Secondary"`
	CTEIndicator    string `json:"cteIndicator" example:"No"`
}

// CourseDetailResponse represents a single course with its mapped
// certification area descriptions attached.
type CourseDetailResponse struct {
	CourseResponse
	Certifications []string `json:"certifications"`
}

// FromCourse converts a models.Course to a CourseResponse.
func FromCourse(course *models.Course) CourseResponse {
	return CourseResponse{
		ID:              course.Code,
		Code:            course.Code,
		CodeDescription: course.CodeDescription,
		Description:     course.Description,
		SubjectArea:     course.SubjectArea,
		Level:           course.Level,
		CTEIndicator:    course.CTEIndicator,
	}
}

// FromCourses converts a slice of courses to response form.
func FromCourses(courses []models.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for i := range courses {
		out = append(out, FromCourse(&courses[i]))
	}
	return out
}

package dto

import "github.com/edudata/scedapi/internal/app/models"

// CertificationResponse represents a distinct certification area in search
// results. CourseCount is a placeholder carried over from the original API
// contract; it is not computed from data.
type CertificationResponse struct {
	CertificationAreaCode        string `json:"certificationAreaCode" example:"04"`
	CertificationAreaDescription string `json:"certificationAreaDescription" example:"Biology (Grades 5-9)"`
	CourseCount                  int    `json:"courseCount" example:"0"`
}

// FromCertificationArea converts a models.CertificationArea to response form.
func FromCertificationArea(area *models.CertificationArea) CertificationResponse {
	return CertificationResponse{
		CertificationAreaCode:        area.CertificationAreaCode,
		CertificationAreaDescription: area.CertificationAreaDescription,
	}
}

// FromCertificationAreas converts a slice of certification areas.
func FromCertificationAreas(areas []models.CertificationArea) []CertificationResponse {
	out := make([]CertificationResponse, 0, len(areas))
	for i := range areas {
		out = append(out, FromCertificationArea(&areas[i]))
	}
	return out
}

package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/edudata/scedapi/internal/app/models"
	"github.com/edudata/scedapi/internal/app/models/dto"
)

type fakeCertificationService struct {
	gotTerm string
	gotName string
}

func (f *fakeCertificationService) SearchCertifications(_ context.Context, term string, page, limit int) ([]models.CertificationArea, dto.PaginationInfo, error) {
	f.gotTerm = term
	return []models.CertificationArea{}, dto.PaginationInfo{Page: page, Limit: limit}, nil
}

func (f *fakeCertificationService) CTECoursesByName(_ context.Context, name string, page, limit int) ([]models.Course, dto.PaginationInfo, error) {
	f.gotName = name
	return []models.Course{}, dto.PaginationInfo{Page: page, Limit: limit}, nil
}

func TestSearchCertificationsReadsSearchParam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeCertificationService{}
	router := gin.New()
	router.GET("/api/v1/certifications/search", NewCertificationController(svc).SearchCertifications)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/certifications/search?search=biology", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if svc.gotTerm != "biology" {
		t.Errorf("service term = %q, want %q", svc.gotTerm, "biology")
	}
}

func TestGetCTECoursesDecodesName(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeCertificationService{}
	router := gin.New()
	router.GET("/api/v1/certifications/name/:name/cte-courses", NewCertificationController(svc).GetCTECourses)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/certifications/name/Biology%20%28Grades%205-9%29/cte-courses", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if svc.gotName != "Biology (Grades 5-9)" {
		t.Errorf("service name = %q, want decoded description", svc.gotName)
	}
}

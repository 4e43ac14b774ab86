package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/edudata/scedapi/internal/app/models"
	"github.com/edudata/scedapi/internal/app/models/dto"
	"github.com/edudata/scedapi/internal/pkg/apperrors"
)

type fakeCourseService struct {
	gotTerm string
	gotPage int
	courses []models.Course
}

func (f *fakeCourseService) SearchCourses(_ context.Context, term string, page, limit int) ([]models.Course, dto.PaginationInfo, error) {
	f.gotTerm, f.gotPage = term, page
	return f.courses, dto.PaginationInfo{Page: page, Limit: limit, Total: int64(len(f.courses)), TotalPages: 1}, nil
}

func (f *fakeCourseService) GetCourseByCode(_ context.Context, code string) (*models.Course, []string, error) {
	for i := range f.courses {
		if f.courses[i].Code == code {
			return &f.courses[i], []string{"Biology (Grades 5-9)"}, nil
		}
	}
	return nil, nil, apperrors.ErrCourseNotFound
}

func TestSearchCoursesReadsSearchParam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeCourseService{
		courses: []models.Course{{Code: "03001", CodeDescription: "Biology"}},
	}
	router := gin.New()
	router.GET("/api/v1/sced/search", NewCourseController(svc).SearchCourses)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sced/search?search=bio&page=2", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	// The documented parameter name is "search"; it must reach the service.
	if svc.gotTerm != "bio" {
		t.Errorf("service term = %q, want %q", svc.gotTerm, "bio")
	}
	if svc.gotPage != 2 {
		t.Errorf("service page = %d, want 2", svc.gotPage)
	}

	var resp dto.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success || resp.Pagination == nil {
		t.Errorf("envelope = success %v pagination %v, want success with pagination", resp.Success, resp.Pagination)
	}
}

func TestGetCourseByCodeNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/api/v1/sced/courses/code/:code", NewCourseController(&fakeCourseService{}).GetCourseByCode)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sced/courses/code/99999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}

	var resp dto.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != dto.ErrorCodeResourceNotFound {
		t.Errorf("error = %+v, want code %q", resp.Error, dto.ErrorCodeResourceNotFound)
	}
}

package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/edudata/scedapi/internal/app/models/dto"
)

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(_ context.Context) error {
	return f.err
}

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/health", NewHealthController(&fakePinger{}).Health)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp dto.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success {
		t.Error("Success = false, want true")
	}
}

func TestHealthDatabaseDown(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/health", NewHealthController(&fakePinger{err: context.DeadlineExceeded}).Health)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}

	var resp dto.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	// A failing health check is an error envelope, with the cause attached.
	if resp.Success {
		t.Error("Success = true, want false")
	}
	if resp.Error == nil {
		t.Fatal("Error detail missing from envelope")
	}
	if resp.Error.Code != dto.ErrorCodeDatabaseError {
		t.Errorf("error code = %q, want %q", resp.Error.Code, dto.ErrorCodeDatabaseError)
	}
	details, _ := resp.Error.Details.(string)
	if details != context.DeadlineExceeded.Error() {
		t.Errorf("details = %q, want the underlying ping error", details)
	}
}

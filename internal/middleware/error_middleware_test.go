package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/edudata/scedapi/internal/app/models/dto"
	"github.com/edudata/scedapi/internal/pkg/apperrors"
)

func TestHandleAPIError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    dto.ErrorCode
		wantMessage string
	}{
		{
			name:        "course not found",
			err:         apperrors.ErrCourseNotFound,
			wantStatus:  http.StatusNotFound,
			wantCode:    dto.ErrorCodeResourceNotFound,
			wantMessage: "Course not found",
		},
		{
			name:        "empty csv",
			err:         apperrors.ErrEmptyCSV,
			wantStatus:  http.StatusBadRequest,
			wantCode:    dto.ErrorCodeInvalidUpload,
			wantMessage: "no data found in file",
		},
		{
			name:        "wrapped empty csv keeps stable message",
			err:         apperrors.NewCustomError(apperrors.ErrEmptyCSV, "could not parse any rows from file"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    dto.ErrorCodeInvalidUpload,
			wantMessage: "no data found in file",
		},
		{
			name:        "invalid upload carries its message",
			err:         apperrors.NewInvalidUploadError("only .csv files are accepted"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    dto.ErrorCodeInvalidUpload,
			wantMessage: "only .csv files are accepted",
		},
		{
			name:        "bad request",
			err:         apperrors.NewBadRequestError("search term is required"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    dto.ErrorCodeValidationFailed,
			wantMessage: "search term is required",
		},
		{
			name:        "unknown error hides detail",
			err:         errors.New("pq: connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    dto.ErrorCodeInternalServer,
			wantMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

			HandleAPIError(c, tt.err)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}

			var resp dto.APIResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Success {
				t.Error("Success = true, want false")
			}
			if resp.Error == nil {
				t.Fatal("Error detail missing from envelope")
			}
			if resp.Error.Code != tt.wantCode {
				t.Errorf("error code = %q, want %q", resp.Error.Code, tt.wantCode)
			}
			if resp.Error.Message != tt.wantMessage {
				t.Errorf("error message = %q, want %q", resp.Error.Message, tt.wantMessage)
			}
			if strings.Contains(resp.Error.Message, "pq:") {
				t.Errorf("internal detail leaked to client: %q", resp.Error.Message)
			}
		})
	}
}

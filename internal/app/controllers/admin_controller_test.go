package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/edudata/scedapi/internal/app/models"
	"github.com/edudata/scedapi/internal/app/models/dto"
	"github.com/edudata/scedapi/internal/app/services"
)

// fakeStorage records saved paths and deletions so cleanup can be asserted.
type fakeStorage struct {
	dir     string
	saved   []string
	deleted []string
}

func (f *fakeStorage) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	path := filepath.Join(f.dir, fileHeader.Filename)
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()
	if _, err := dst.ReadFrom(src); err != nil {
		return "", err
	}

	f.saved = append(f.saved, path)
	return path, nil
}

func (f *fakeStorage) DeleteFile(path string) error {
	f.deleted = append(f.deleted, path)
	return os.Remove(path)
}

type fakeCourseSink struct{ inserted int }

func (f *fakeCourseSink) InsertIfAbsent(_ context.Context, _ *models.Course) (bool, error) {
	f.inserted++
	return true, nil
}

type fakeMappingSink struct{ inserted int }

func (f *fakeMappingSink) InsertMappingIfAbsent(_ context.Context, _ *models.CertificationMapping) (bool, error) {
	f.inserted++
	return true, nil
}

func multipartUpload(t *testing.T, filename, contentType, content string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("failed to create multipart part: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("failed to write multipart content: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func newUploadRouter(t *testing.T, storage *fakeStorage, maxSize int64) (*gin.Engine, *fakeCourseSink) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	courses := &fakeCourseSink{}
	importSvc := services.NewImportService(courses, &fakeMappingSink{})
	controller := NewAdminController(importSvc, nil, storage, maxSize)

	router := gin.New()
	router.POST("/api/v1/admin/upload-csv", controller.UploadCSV)
	return router, courses
}

func TestUploadCSV(t *testing.T) {
	csv := "Course Code,Code Description\n03001,Biology\n20114,Agricultural Mechanics\n"

	storage := &fakeStorage{dir: t.TempDir()}
	router, courses := newUploadRouter(t, storage, 1<<20)

	body, contentType := multipartUpload(t, "courses.csv", "text/csv", csv)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/upload-csv", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool               `json:"success"`
		Data    dto.ImportResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success {
		t.Error("Success = false, want true")
	}
	if resp.Data.Inserted != 2 || resp.Data.Processed != 2 {
		t.Errorf("import = inserted %d processed %d, want 2/2", resp.Data.Inserted, resp.Data.Processed)
	}
	if courses.inserted != 2 {
		t.Errorf("courses inserted = %d, want 2", courses.inserted)
	}

	// The stored copy must be removed whether the import succeeds or fails.
	if len(storage.saved) != 1 || len(storage.deleted) != 1 {
		t.Errorf("storage saved %d deleted %d, want 1/1", len(storage.saved), len(storage.deleted))
	}
}

func TestUploadCSVRejections(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		contentType string
		content     string
		maxSize     int64
		wantCode    dto.ErrorCode
	}{
		{
			name:        "wrong extension and type",
			filename:    "courses.xlsx",
			contentType: "application/vnd.ms-excel",
			content:     "not a csv",
			maxSize:     1 << 20,
			wantCode:    dto.ErrorCodeInvalidUpload,
		},
		{
			name:        "oversized file",
			filename:    "courses.csv",
			contentType: "text/csv",
			content:     "Course Code,Code Description\n03001,Biology\n",
			maxSize:     8,
			wantCode:    dto.ErrorCodeInvalidUpload,
		},
		{
			name:        "empty file",
			filename:    "courses.csv",
			contentType: "text/csv",
			content:     "",
			maxSize:     1 << 20,
			wantCode:    dto.ErrorCodeInvalidUpload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := &fakeStorage{dir: t.TempDir()}
			router, _ := newUploadRouter(t, storage, tt.maxSize)

			body, contentType := multipartUpload(t, tt.filename, tt.contentType, tt.content)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/upload-csv", body)
			req.Header.Set("Content-Type", contentType)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400, body %s", w.Code, w.Body.String())
			}

			var resp dto.APIResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Error == nil || resp.Error.Code != tt.wantCode {
				t.Errorf("error = %+v, want code %q", resp.Error, tt.wantCode)
			}

			// Even a failed import must not leave the stored copy behind.
			if len(storage.saved) != len(storage.deleted) {
				t.Errorf("storage saved %d deleted %d, want equal", len(storage.saved), len(storage.deleted))
			}
		})
	}

	t.Run("missing file field", func(t *testing.T) {
		storage := &fakeStorage{dir: t.TempDir()}
		router, _ := newUploadRouter(t, storage, 1<<20)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/upload-csv", bytes.NewBufferString(""))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

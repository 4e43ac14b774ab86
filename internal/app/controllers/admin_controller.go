package controllers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/edudata/scedapi/internal/app/models/dto"
	"github.com/edudata/scedapi/internal/app/services"
	"github.com/edudata/scedapi/internal/middleware"
	"github.com/edudata/scedapi/internal/pkg/apperrors"
	"github.com/edudata/scedapi/internal/pkg/filestorage"
	"github.com/edudata/scedapi/internal/pkg/logger"
)

// AdminController handles bulk import and dataset statistics
type AdminController struct {
	importService services.ImportService
	statsService  services.StatsService
	fileStorage   filestorage.FileStorage
	maxUploadSize int64
}

// NewAdminController creates a new AdminController
func NewAdminController(importService services.ImportService, statsService services.StatsService, fileStorage filestorage.FileStorage, maxUploadSize int64) *AdminController {
	return &AdminController{
		importService: importService,
		statsService:  statsService,
		fileStorage:   fileStorage,
		maxUploadSize: maxUploadSize,
	}
}

// UploadCSV handles bulk CSV import
// @Summary Import a CSV file
// @Description Uploads a CSV file and loads its rows into the course or certification mapping table. The target table is detected from the file's columns.
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file to import"
// @Param type formData string false "Advisory type hint; the actual target is detected from the columns"
// @Success 200 {object} dto.APIResponse{data=dto.ImportResponse} "Import completed"
// @Failure 400 {object} dto.APIResponse "Missing, oversized or non-CSV file"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /admin/upload-csv [post]
func (c *AdminController) UploadCSV(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewInvalidUploadError("no file provided in the 'file' form field"))
		return
	}

	if err := validateCSVUpload(fileHeader, c.maxUploadSize); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	path, err := c.fileStorage.SaveFile(fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrStorageUnavailable, "failed to store uploaded file"))
		return
	}
	// The stored copy only exists for the duration of the import.
	defer func() {
		if err := c.fileStorage.DeleteFile(path); err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("Failed to remove temporary upload")
		}
	}()

	summary, err := c.importService.ImportFile(ctx.Request.Context(), path)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	response := dto.ImportResponse{
		Type:      string(summary.Type),
		Inserted:  summary.Inserted(),
		Processed: summary.Processed(),
		Skipped:   summary.Skipped(),
		Failed:    summary.Failed(),
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// validateCSVUpload rejects files that are too large or not CSV. A .csv
// extension or a csv content type is accepted; browsers disagree on which
// they send.
func validateCSVUpload(fileHeader *multipart.FileHeader, maxSize int64) error {
	if fileHeader.Size > maxSize {
		return apperrors.NewInvalidUploadError(fmt.Sprintf("file exceeds the maximum upload size of %d bytes", maxSize))
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	contentType := fileHeader.Header.Get("Content-Type")
	if ext != ".csv" && !strings.Contains(contentType, "csv") {
		return apperrors.NewInvalidUploadError("only .csv files are accepted")
	}

	return nil
}

// GetStats handles aggregate dataset statistics
// @Summary Get dataset statistics
// @Description Retrieves total counts of courses, distinct certification areas and mappings
// @Tags admin
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.StatsResponse} "Statistics retrieved successfully"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /admin/stats [get]
func (c *AdminController) GetStats(ctx *gin.Context) {
	stats, err := c.statsService.GetStats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	response := dto.StatsResponse{
		TotalCourses:        stats.TotalCourses,
		TotalCertifications: stats.TotalCertifications,
		TotalMappings:       stats.TotalMappings,
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

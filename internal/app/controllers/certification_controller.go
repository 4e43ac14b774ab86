package controllers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/edudata/scedapi/internal/app/models/dto"
	"github.com/edudata/scedapi/internal/app/services"
	"github.com/edudata/scedapi/internal/middleware"
	"github.com/edudata/scedapi/internal/pkg/apperrors"
	"github.com/edudata/scedapi/internal/pkg/helpers"
)

// CertificationController handles certification area operations
type CertificationController struct {
	certificationService services.CertificationService
}

// NewCertificationController creates a new CertificationController
func NewCertificationController(certificationService services.CertificationService) *CertificationController {
	return &CertificationController{
		certificationService: certificationService,
	}
}

// SearchCertifications handles certification area search with pagination
// @Summary Search certification areas
// @Description Searches distinct certification areas by description. An empty query or "*" returns all areas.
// @Tags certifications
// @Produce json
// @Param search query string false "Search term matched case-insensitively against the area description; * matches everything"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10, max: 100)"
// @Success 200 {object} dto.APIResponse{data=[]dto.CertificationResponse,pagination=dto.PaginationInfo} "Certification areas retrieved successfully"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /certifications/search [get]
func (c *CertificationController) SearchCertifications(ctx *gin.Context) {
	term := ctx.Query("search")
	page, limit := helpers.ParsePaginationParams(ctx)

	areas, pagination, err := c.certificationService.SearchCertifications(ctx.Request.Context(), term, page, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPaginatedResponse(dto.FromCertificationAreas(areas), pagination))
}

// GetCTECourses handles listing CTE courses for one certification area
// @Summary List CTE courses for a certification area
// @Description Retrieves CTE-flagged courses mapped to the named certification area description
// @Tags certifications
// @Produce json
// @Param name path string true "Certification area description, URL-encoded"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10, max: 100)"
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseResponse,pagination=dto.PaginationInfo} "CTE courses retrieved successfully"
// @Failure 400 {object} dto.APIResponse "Missing certification name"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /certifications/name/{name}/cte-courses [get]
func (c *CertificationController) GetCTECourses(ctx *gin.Context) {
	name := ctx.Param("name")
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}
	if name == "" {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("certification name is required"))
		return
	}

	page, limit := helpers.ParsePaginationParams(ctx)

	courses, pagination, err := c.certificationService.CTECoursesByName(ctx.Request.Context(), name, page, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPaginatedResponse(dto.FromCourses(courses), pagination))
}

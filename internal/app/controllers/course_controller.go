package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edudata/scedapi/internal/app/models/dto"
	"github.com/edudata/scedapi/internal/app/services"
	"github.com/edudata/scedapi/internal/middleware"
	"github.com/edudata/scedapi/internal/pkg/helpers"
)

// CourseController handles SCED course lookups
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// SearchCourses handles course search with pagination
// @Summary Search SCED courses
// @Description Searches courses by code, code description or description. An empty query returns all courses.
// @Tags sced
// @Produce json
// @Param search query string false "Search term matched case-insensitively against code, code description and description"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10, max: 100)"
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseResponse,pagination=dto.PaginationInfo} "Courses retrieved successfully"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /sced/search [get]
func (c *CourseController) SearchCourses(ctx *gin.Context) {
	term := ctx.Query("search")
	page, limit := helpers.ParsePaginationParams(ctx)

	courses, pagination, err := c.courseService.SearchCourses(ctx.Request.Context(), term, page, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPaginatedResponse(dto.FromCourses(courses), pagination))
}

// GetCourseByCode handles single-course lookup
// @Summary Get a course by SCED code
// @Description Retrieves one course and the certification area descriptions mapped to it
// @Tags sced
// @Produce json
// @Param code path string true "SCED course code"
// @Success 200 {object} dto.APIResponse{data=dto.CourseDetailResponse} "Course retrieved successfully"
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /sced/courses/code/{code} [get]
func (c *CourseController) GetCourseByCode(ctx *gin.Context) {
	code := ctx.Param("code")

	course, certifications, err := c.courseService.GetCourseByCode(ctx.Request.Context(), code)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	response := dto.CourseDetailResponse{
		CourseResponse: dto.FromCourse(course),
		Certifications: certifications,
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

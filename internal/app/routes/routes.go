package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/edudata/scedapi/internal/app/controllers"
	"github.com/edudata/scedapi/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	courseController *controllers.CourseController,
	certificationController *controllers.CertificationController,
	adminController *controllers.AdminController,
	setupController *controllers.SetupController,
	healthController *controllers.HealthController,
) {
	router.GET("/health", healthController.Health)

	// API version group
	v1 := router.Group("/api/v1")

	// SCED course routes
	sced := v1.Group("/sced")
	{
		sced.GET("/search", courseController.SearchCourses)
		sced.GET("/courses/code/:code", courseController.GetCourseByCode)
	}

	// Certification area routes
	certifications := v1.Group("/certifications")
	{
		certifications.GET("/search", certificationController.SearchCertifications)
		certifications.GET("/name/:name/cte-courses", certificationController.GetCTECourses)
	}

	// Admin routes for bulk import and statistics
	admin := v1.Group("/admin")
	{
		admin.POST("/upload-csv", adminController.UploadCSV)
		admin.GET("/stats", adminController.GetStats)
	}

	// Idempotent database provisioning
	v1.POST("/setup", setupController.Setup)

	// Unknown paths get the same envelope as every other error
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeRouteNotFound, "The requested route does not exist")))
	})
}

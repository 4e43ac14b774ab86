package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edudata/scedapi/internal/app/models/dto"
	"github.com/edudata/scedapi/internal/app/services"
	"github.com/edudata/scedapi/internal/middleware"
)

// SetupController handles database provisioning
type SetupController struct {
	setupService services.SetupService
}

// NewSetupController creates a new SetupController
func NewSetupController(setupService services.SetupService) *SetupController {
	return &SetupController{
		setupService: setupService,
	}
}

// Setup handles idempotent schema and seed provisioning
// @Summary Provision the database
// @Description Creates the tables if missing and seeds baseline data when the course table is empty. Safe to call repeatedly.
// @Tags setup
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.SetupResponse} "Setup completed"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /setup [post]
func (c *SetupController) Setup(ctx *gin.Context) {
	result, err := c.setupService.Setup(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	message := "setup complete, existing data left untouched"
	if result.Seeded {
		message = "setup complete, baseline data seeded"
	}
	response := dto.SetupResponse{
		SchemaCreated: true,
		Seeded:        result.Seeded,
		Message:       message,
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edudata/scedapi/internal/app/models/dto"
)

// DBPinger reports database reachability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// HealthController reports service and database liveness
type HealthController struct {
	database DBPinger
}

// NewHealthController creates a new HealthController
func NewHealthController(database DBPinger) *HealthController {
	return &HealthController{
		database: database,
	}
}

// Health handles liveness checks
// @Summary Health check
// @Description Reports whether the service and its database connection are alive
// @Tags health
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.HealthResponse} "Service healthy"
// @Failure 503 {object} dto.APIResponse "Database unreachable"
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	if err := c.database.Ping(ctx.Request.Context()); err != nil {
		// Unlike other endpoints, health includes the underlying failure
		// so operators can see what broke.
		detail := dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "database unreachable").
			WithDetails(err.Error())
		ctx.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(detail))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.HealthResponse{
		Status:   "ok",
		Database: "reachable",
	}))
}

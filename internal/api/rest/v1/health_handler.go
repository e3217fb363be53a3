package v1

import (
	"net/http"

	"model_serving_service/internal/domain/serving"

	"github.com/gin-gonic/gin"
)

// HealthHandler defines the interface for handling health checks
type HealthHandler interface {
	Health(ctx *gin.Context)
}

// HealthHandler struct holds the services
type healthHandler struct {
	predictionService serving.PredictionService
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(predictionService serving.PredictionService) HealthHandler {
	return &healthHandler{
		predictionService: predictionService,
	}
}

// Health handles the GET request to report the service status
// @Summary Report service health
// @Description Report whether the service is fully operational or running degraded without a loaded model.
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (handler *healthHandler) Health(ctx *gin.Context) {
	artifact, loaded := handler.predictionService.ModelInfo()
	if !loaded {
		ctx.JSON(http.StatusOK, HealthResponse{Status: "degraded"})
		return
	}

	ctx.JSON(http.StatusOK, HealthResponse{
		Status:       "ok",
		ModelName:    &artifact.Name,
		ModelVersion: &artifact.Version,
		TaskType:     &artifact.TaskType,
	})
}

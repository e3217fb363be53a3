package v1

import (
	"model_serving_service/internal/domain/providers"
	"model_serving_service/internal/domain/serving"
	"model_serving_service/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	predictionService serving.PredictionService,
	predictionMetadataService serving.PredictionMetadataService,
	providerCatalogService providers.CatalogService,
	settings *config.Settings) {

	v1 := r.Group(BasePath) // lookup in version file

	// Health Routes
	healthHandler := NewHealthHandler(predictionService)
	v1.GET("/health", healthHandler.Health)

	// Prediction Routes
	predictionHandler := NewPredictionHandler(predictionService, predictionMetadataService)
	v1.POST("/predictions", predictionHandler.Predict)
	v1.GET("/predictions", predictionHandler.ListMetadata)
	v1.GET("/predictions/:id", predictionHandler.GetMetadataByID)
	v1.DELETE("/predictions/:id", predictionHandler.DeleteByID)

	// Provider Routes
	providerHandler := NewProviderHandler(providerCatalogService, settings)
	v1.GET("/providers", providerHandler.ListProviders)
}

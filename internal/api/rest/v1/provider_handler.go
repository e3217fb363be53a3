package v1

import (
	"fmt"
	"net/http"

	"model_serving_service/internal/domain/providers"
	"model_serving_service/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// ProviderHandler defines the interface for handling provider catalog operations
type ProviderHandler interface {
	ListProviders(ctx *gin.Context)
}

// ProviderHandler struct holds the services
type providerHandler struct {
	providerCatalogService providers.CatalogService
	settings               *config.Settings
}

// NewProviderHandler creates a new ProviderHandler
func NewProviderHandler(providerCatalogService providers.CatalogService, settings *config.Settings) ProviderHandler {
	return &providerHandler{
		providerCatalogService: providerCatalogService,
		settings:               settings,
	}
}

// ListProviders handles the GET request to list the LLM provider catalog
// @Summary List LLM providers
// @Description Fetch the status of every supported LLM provider along with the request defaults.
// @Tags Provider
// @Accept json
// @Produce json
// @Success 200 {object} ProviderCatalogResponse
// @Failure 500 {object} ErrorResponse
// @Router /providers [get]
func (handler *providerHandler) ListProviders(ctx *gin.Context) {
	infos, err := handler.providerCatalogService.List(ctx)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("could not list providers: %v", err.Error())
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	catalogResponse := ProviderCatalogResponse{
		Providers:          []ProviderResponse{},
		DefaultTemperature: handler.settings.DefaultTemperature,
		MaxRetries:         handler.settings.MaxRetries,
	}
	for _, info := range infos {
		catalogResponse.Providers = append(catalogResponse.Providers, ProviderResponse{
			Name:       string(info.Name),
			Model:      info.Model,
			Configured: info.Configured,
			Active:     info.Active,
		})
	}

	ctx.JSON(http.StatusOK, catalogResponse)
}

//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"model_serving_service/internal/domain/providers"
	"model_serving_service/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestSettings() *config.Settings {
	return &config.Settings{
		Provider:              config.ProviderOpenAI,
		OpenAIAPIKey:          "sk-test",
		OpenAIModel:           "gpt-4",
		AnthropicModel:        "claude-3-sonnet-20240229",
		GoogleModel:           "gemini-pro",
		AzureOpenAIModel:      "gpt-4",
		AzureOpenAIAPIVersion: "2024-02-01",
		LogLevel:              config.LogLevelInfo,
		MaxRetries:            3,
		DefaultTemperature:    0.7,
		ModelPath:             "model/model.gob",
		TaskType:              "classification",
		Port:                  "8080",
	}
}

func TestProviderHandler_ListProviders_Success(t *testing.T) {
	mockCatalogService := new(MockProviderCatalogService)

	handler := NewProviderHandler(mockCatalogService, newTestSettings())

	infos := []*providers.ProviderInfo{
		{Name: providers.OpenAI, Model: "gpt-4", Configured: true, Active: true},
		{Name: providers.Anthropic, Model: "claude-3-sonnet-20240229", Configured: false, Active: false},
	}
	mockCatalogService.On("List", mock.Anything).Return(infos, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/providers", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.ListProviders(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "openai")
	assert.Contains(t, w.Body.String(), "gpt-4")
	assert.Contains(t, w.Body.String(), `"defaultTemperature":0.7`)
	assert.Contains(t, w.Body.String(), `"maxRetries":3`)
	mockCatalogService.AssertExpectations(t)
}

func TestProviderHandler_ListProviders_Error(t *testing.T) {
	mockCatalogService := new(MockProviderCatalogService)

	handler := NewProviderHandler(mockCatalogService, newTestSettings())

	mockCatalogService.On("List", mock.Anything).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/providers", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.ListProviders(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "could not list providers")
	mockCatalogService.AssertExpectations(t)
}

//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// TestSetupRoutes_RoutesRegistered verifies that routes are properly registered
func TestSetupRoutes_RoutesRegistered(t *testing.T) {
	mockPredictionService := new(MockPredictionService)
	mockMetadataService := new(MockPredictionMetadataService)
	mockCatalogService := new(MockProviderCatalogService)

	r := gin.Default()

	// Setup mocks to return nil
	mockPredictionService.On("Predict", mock.Anything, mock.Anything).Return(nil, nil)
	mockPredictionService.On("ModelInfo").Return(nil, false)
	mockMetadataService.On("List", mock.Anything, mock.Anything).Return(nil, nil)
	mockMetadataService.On("GetByID", mock.Anything, mock.Anything).Return(nil, nil)
	mockMetadataService.On("DeleteByID", mock.Anything, mock.Anything).Return(nil)
	mockCatalogService.On("List", mock.Anything).Return(nil, nil)

	SetupRoutes(r, mockPredictionService, mockMetadataService, mockCatalogService, newTestSettings())

	// Verify routes are registered by testing they respond (even with errors)
	tests := []struct {
		method string
		url    string
	}{
		{"GET", "/api/v1/mss/health"},
		{"POST", "/api/v1/mss/predictions"},
		{"GET", "/api/v1/mss/predictions"},
		{"GET", "/api/v1/mss/providers"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req, _ := http.NewRequest(tt.method, tt.url, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			// Just verify route exists (status != 404)
			assert.NotEqual(t, http.StatusNotFound, w.Code, "Route should be registered")
		})
	}
}

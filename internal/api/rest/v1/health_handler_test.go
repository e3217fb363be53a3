//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"model_serving_service/internal/domain/serving"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHealthHandler_Health_ModelLoaded(t *testing.T) {
	mockPredictionService := new(MockPredictionService)

	handler := NewHealthHandler(mockPredictionService)

	artifact := &serving.ModelArtifact{
		Name:         "churn-scorer",
		Version:      "1.2.0",
		TaskType:     serving.TaskTypeClassification,
		FeatureCount: 2,
		Weights:      []float64{0.5, -0.5},
		Bias:         0.0,
		TrainedAt:    time.Now().UTC(),
	}
	mockPredictionService.On("ModelInfo").Return(artifact, true)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Health(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.Contains(t, w.Body.String(), "churn-scorer")
	mockPredictionService.AssertExpectations(t)
}

func TestHealthHandler_Health_Degraded(t *testing.T) {
	mockPredictionService := new(MockPredictionService)

	handler := NewHealthHandler(mockPredictionService)

	mockPredictionService.On("ModelInfo").Return(nil, false)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Health(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"degraded"`)
	assert.NotContains(t, w.Body.String(), "modelName")
	mockPredictionService.AssertExpectations(t)
}

//go:build unit
// +build unit

package v1

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"model_serving_service/internal/domain/serving"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestPredictionMeta() *serving.PredictionMeta {
	label := serving.LabelPositive
	return &serving.PredictionMeta{
		ID:              "f47ac10b-58cc-4372-a567-0e02b2c3d479",
		DateTimeCreated: time.Now().UTC(),
		ModelName:       "churn-scorer",
		ModelVersion:    "1.2.0",
		TaskType:        serving.TaskTypeClassification,
		Features:        []float64{1.0, 2.0},
		Score:           0.85,
		Label:           &label,
	}
}

func TestPredictionHandler_Predict_Success(t *testing.T) {
	mockPredictionService := new(MockPredictionService)
	mockMetadataService := new(MockPredictionMetadataService)

	handler := NewPredictionHandler(mockPredictionService, mockMetadataService)

	prediction := newTestPredictionMeta()
	mockPredictionService.
		On("Predict", mock.Anything, []float64{1.0, 2.0}).
		Return(prediction, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/predictions", bytes.NewBufferString(`{"features": [1.0, 2.0]}`))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Predict(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "f47ac10b-58cc-4372-a567-0e02b2c3d479")
	assert.Contains(t, w.Body.String(), "positive")
	mockPredictionService.AssertExpectations(t)
}

func TestPredictionHandler_Predict_InvalidBody(t *testing.T) {
	mockPredictionService := new(MockPredictionService)
	mockMetadataService := new(MockPredictionMetadataService)

	handler := NewPredictionHandler(mockPredictionService, mockMetadataService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/predictions", bytes.NewBufferString(`not json`))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Predict(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid prediction request")
}

func TestPredictionHandler_Predict_EmptyFeatures(t *testing.T) {
	mockPredictionService := new(MockPredictionService)
	mockMetadataService := new(MockPredictionMetadataService)

	handler := NewPredictionHandler(mockPredictionService, mockMetadataService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/predictions", bytes.NewBufferString(`{"features": []}`))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Predict(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation failed")
}

func TestPredictionHandler_Predict_NoModelLoaded(t *testing.T) {
	mockPredictionService := new(MockPredictionService)
	mockMetadataService := new(MockPredictionMetadataService)

	handler := NewPredictionHandler(mockPredictionService, mockMetadataService)

	mockPredictionService.
		On("Predict", mock.Anything, []float64{1.0}).
		Return(nil, serving.ErrNoModelLoaded)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/predictions", bytes.NewBufferString(`{"features": [1.0]}`))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Predict(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "no model loaded")
	mockPredictionService.AssertExpectations(t)
}

func TestPredictionHandler_ListMetadata_Success(t *testing.T) {
	mockPredictionService := new(MockPredictionService)
	mockMetadataService := new(MockPredictionMetadataService)

	handler := NewPredictionHandler(mockPredictionService, mockMetadataService)

	prediction := newTestPredictionMeta()
	mockMetadataService.
		On("List", mock.Anything, mock.Anything).
		Return([]*serving.PredictionMeta{prediction}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/predictions?modelName=churn&limit=5", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.ListMetadata(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "churn-scorer")
	mockMetadataService.AssertExpectations(t)
}

func TestPredictionHandler_ListMetadata_InvalidSortBy(t *testing.T) {
	mockPredictionService := new(MockPredictionService)
	mockMetadataService := new(MockPredictionMetadataService)

	handler := NewPredictionHandler(mockPredictionService, mockMetadataService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/predictions?sortBy=bogus", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.ListMetadata(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation failed")
}

func TestPredictionHandler_GetMetadataByID_Success(t *testing.T) {
	mockPredictionService := new(MockPredictionService)
	mockMetadataService := new(MockPredictionMetadataService)

	handler := NewPredictionHandler(mockPredictionService, mockMetadataService)

	prediction := newTestPredictionMeta()
	mockMetadataService.
		On("GetByID", mock.Anything, prediction.ID).
		Return(prediction, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/predictions/"+prediction.ID, nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: prediction.ID}}

	handler.GetMetadataByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), prediction.ID)
	mockMetadataService.AssertExpectations(t)
}

func TestPredictionHandler_GetMetadataByID_NotFound(t *testing.T) {
	mockPredictionService := new(MockPredictionService)
	mockMetadataService := new(MockPredictionMetadataService)

	handler := NewPredictionHandler(mockPredictionService, mockMetadataService)

	mockMetadataService.
		On("GetByID", mock.Anything, "missing-id").
		Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/predictions/missing-id", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "missing-id"}}

	handler.GetMetadataByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockMetadataService.AssertExpectations(t)
}

func TestPredictionHandler_DeleteByID_Success(t *testing.T) {
	mockPredictionService := new(MockPredictionService)
	mockMetadataService := new(MockPredictionMetadataService)

	handler := NewPredictionHandler(mockPredictionService, mockMetadataService)

	mockMetadataService.
		On("DeleteByID", mock.Anything, "abc-123").
		Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/predictions/abc-123", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "abc-123"}}

	handler.DeleteByID(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockMetadataService.AssertExpectations(t)
}

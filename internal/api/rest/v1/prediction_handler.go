package v1

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"model_serving_service/internal/domain/serving"
	"model_serving_service/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

// PredictionHandler defines the interface for handling prediction-related operations
type PredictionHandler interface {
	Predict(ctx *gin.Context)
	ListMetadata(ctx *gin.Context)
	GetMetadataByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

// PredictionHandler struct holds the services
type predictionHandler struct {
	predictionService         serving.PredictionService
	predictionMetadataService serving.PredictionMetadataService
}

// NewPredictionHandler creates a new PredictionHandler
func NewPredictionHandler(predictionService serving.PredictionService, predictionMetadataService serving.PredictionMetadataService) PredictionHandler {
	return &predictionHandler{
		predictionService:         predictionService,
		predictionMetadataService: predictionMetadataService,
	}
}

func newPredictionMetaResponse(prediction *serving.PredictionMeta) PredictionMetaResponse {
	return PredictionMetaResponse{
		ID:              prediction.ID,
		DateTimeCreated: prediction.DateTimeCreated,
		ModelName:       prediction.ModelName,
		ModelVersion:    prediction.ModelVersion,
		TaskType:        prediction.TaskType,
		Features:        prediction.Features,
		Score:           prediction.Score,
		Label:           prediction.Label,
	}
}

// Predict handles the POST request to run a prediction against the loaded model
// @Summary Run a prediction
// @Description Evaluate the loaded model on a feature vector, record the result and return it. Responds with 503 while no model is loaded.
// @Tags Prediction
// @Accept json
// @Produce json
// @Param requestBody body PredictRequest true "Feature vector"
// @Success 201 {object} PredictionMetaResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /predictions [post]
func (handler *predictionHandler) Predict(ctx *gin.Context) {

	var request PredictRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid prediction request: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	prediction, err := handler.predictionService.Predict(ctx, request.Features)
	if err != nil {
		var errorResponse ErrorResponse
		if errors.Is(err, serving.ErrNoModelLoaded) {
			errorResponse.Message = "no model loaded; service is running degraded"
			ctx.JSON(http.StatusServiceUnavailable, errorResponse)
			return
		}
		errorResponse.Message = fmt.Sprintf("error running prediction: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusCreated, newPredictionMetaResponse(prediction))
}

// ListMetadata handles the GET request to list recorded predictions with optional query parameters
// @Summary List recorded predictions based on query parameters
// @Description Fetch recorded predictions filtered by model name, task type and creation date, with pagination and sorting options.
// @Tags Prediction
// @Accept json
// @Produce json
// @Param modelName query string false "Model name (substring match)"
// @Param taskType query string false "Task type (classification/regression)"
// @Param since query string false "Earliest creation date (RFC3339)"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} PredictionMetaResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /predictions [get]
func (handler *predictionHandler) ListMetadata(ctx *gin.Context) {
	query := serving.NewPredictionMetaQuery()

	if modelName := ctx.Query("modelName"); len(modelName) > 0 {
		query.ModelName = modelName
	}

	if taskType := ctx.Query("taskType"); len(taskType) > 0 {
		query.TaskType = taskType
	}

	if since := ctx.Query("since"); len(since) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, since)
		if err == nil {
			query.Since = parsedTime
		}
	}

	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = utils.ConvertToInt(limit)
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = utils.ConvertToInt(offset)
	}

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	predictions, err := handler.predictionMetadataService.List(ctx, query)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var listResponse = []PredictionMetaResponse{}
	for _, prediction := range predictions {
		listResponse = append(listResponse, newPredictionMetaResponse(prediction))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetMetadataByID handles the GET request to fetch one recorded prediction by ID
// @Summary Get a recorded prediction by ID
// @Description Fetch one recorded prediction by its ID.
// @Tags Prediction
// @Accept json
// @Produce json
// @Param id path string true "Prediction ID"
// @Success 200 {object} PredictionMetaResponse
// @Failure 404 {object} ErrorResponse
// @Router /predictions/{id} [get]
func (handler *predictionHandler) GetMetadataByID(ctx *gin.Context) {
	predictionID := ctx.Param("id")

	prediction, err := handler.predictionMetadataService.GetByID(ctx, predictionID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("prediction with id %s not found", predictionID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, newPredictionMetaResponse(prediction))
}

// DeleteByID handles the DELETE request to remove one recorded prediction by ID
// @Summary Delete a recorded prediction by ID
// @Description Delete one recorded prediction by its ID.
// @Tags Prediction
// @Accept json
// @Produce json
// @Param id path string true "Prediction ID"
// @Success 204 {object} InfoResponse
// @Failure 404 {object} ErrorResponse
// @Router /predictions/{id} [delete]
func (handler *predictionHandler) DeleteByID(ctx *gin.Context) {
	predictionID := ctx.Param("id")

	if err := handler.predictionMetadataService.DeleteByID(ctx, predictionID); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("prediction with id %s not found", predictionID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var infoResponse InfoResponse
	infoResponse.Message = fmt.Sprintf("deleted prediction with id %s", predictionID)
	ctx.JSON(http.StatusNoContent, infoResponse)
}

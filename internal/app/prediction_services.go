package app

import (
	"context"
	"fmt"
	"time"

	"model_serving_service/internal/domain/serving"
	"model_serving_service/internal/pkg/logger"

	"github.com/google/uuid"
)

// predictionService implements the PredictionService interface for evaluating
// the loaded model and recording the result
type predictionService struct {
	artifact             *serving.ModelArtifact
	predictionRepository serving.PredictionRepository
	logger               logger.Logger
}

// NewPredictionService creates a new instance of PredictionService. A nil
// artifact is allowed and puts the service into a degraded state in which
// Predict returns serving.ErrNoModelLoaded.
func NewPredictionService(artifact *serving.ModelArtifact, predictionRepository serving.PredictionRepository, logger logger.Logger) (serving.PredictionService, error) {
	if artifact != nil {
		if err := artifact.Validate(); err != nil {
			return nil, fmt.Errorf("invalid model artifact: %w", err)
		}
	}

	return &predictionService{
		artifact:             artifact,
		predictionRepository: predictionRepository,
		logger:               logger,
	}, nil
}

// Predict evaluates the loaded model on a feature vector, records the result
// and returns the stored PredictionMeta
func (s *predictionService) Predict(ctx context.Context, features []float64) (*serving.PredictionMeta, error) {
	if s.artifact == nil {
		return nil, serving.ErrNoModelLoaded
	}

	score, label, err := s.artifact.Predict(features)
	if err != nil {
		return nil, fmt.Errorf("prediction failed: %w", err)
	}

	prediction := &serving.PredictionMeta{
		ID:              uuid.New().String(),
		DateTimeCreated: time.Now().UTC(),
		ModelName:       s.artifact.Name,
		ModelVersion:    s.artifact.Version,
		TaskType:        s.artifact.TaskType,
		Features:        features,
		Score:           score,
		Label:           label,
	}

	if err := s.predictionRepository.Create(ctx, prediction); err != nil {
		return nil, fmt.Errorf("failed to record prediction: %w", err)
	}

	s.logger.Info(fmt.Sprintf("Prediction %s scored %.6f with model %s@%s", prediction.ID, score, s.artifact.Name, s.artifact.Version))
	return prediction, nil
}

// ModelInfo returns the loaded artifact and whether one is loaded at all
func (s *predictionService) ModelInfo() (*serving.ModelArtifact, bool) {
	return s.artifact, s.artifact != nil
}

// predictionMetadataService implements the PredictionMetadataService interface
// for retrieving and deleting recorded predictions
type predictionMetadataService struct {
	predictionRepository serving.PredictionRepository
	logger               logger.Logger
}

// NewPredictionMetadataService creates a new instance of predictionMetadataService
func NewPredictionMetadataService(predictionRepository serving.PredictionRepository, logger logger.Logger) (serving.PredictionMetadataService, error) {
	return &predictionMetadataService{
		predictionRepository: predictionRepository,
		logger:               logger,
	}, nil
}

// List retrieves recorded predictions considering a query filter
func (s *predictionMetadataService) List(ctx context.Context, query *serving.PredictionMetaQuery) ([]*serving.PredictionMeta, error) {
	predictions, err := s.predictionRepository.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return predictions, nil
}

// GetByID retrieves a recorded prediction by ID
func (s *predictionMetadataService) GetByID(ctx context.Context, predictionID string) (*serving.PredictionMeta, error) {
	prediction, err := s.predictionRepository.GetByID(ctx, predictionID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return prediction, nil
}

// DeleteByID deletes a recorded prediction by ID
func (s *predictionMetadataService) DeleteByID(ctx context.Context, predictionID string) error {
	if err := s.predictionRepository.DeleteByID(ctx, predictionID); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

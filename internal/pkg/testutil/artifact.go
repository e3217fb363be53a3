package testutil

import (
	"testing"
	"time"

	"model_serving_service/internal/domain/serving"
)

// NewTestArtifact returns a small, valid classification artifact for tests.
func NewTestArtifact(t *testing.T) *serving.ModelArtifact {
	t.Helper()

	return &serving.ModelArtifact{
		Name:         "test-model",
		Version:      "0.1.0",
		TaskType:     serving.TaskTypeClassification,
		FeatureCount: 2,
		Weights:      []float64{1.0, -1.0},
		Bias:         0.0,
		TrainedAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// NewTestRegressionArtifact returns a small, valid regression artifact.
func NewTestRegressionArtifact(t *testing.T) *serving.ModelArtifact {
	t.Helper()

	artifact := NewTestArtifact(t)
	artifact.TaskType = serving.TaskTypeRegression
	return artifact
}

package serving

import (
	"context"
	"errors"
)

// ErrNoModelLoaded is returned by PredictionService.Predict while the service
// runs without a loaded model artifact. Startup deliberately continues after
// a failed model load; requests surface the degradation instead.
var ErrNoModelLoaded = errors.New("no model loaded")

// PredictionService defines methods for running predictions against the
// loaded model.
type PredictionService interface {
	// Predict evaluates the loaded model on a feature vector, records the
	// result and returns the stored PredictionMeta.
	Predict(ctx context.Context, features []float64) (*PredictionMeta, error)

	// ModelInfo returns the loaded artifact and whether one is loaded at all.
	ModelInfo() (*ModelArtifact, bool)
}

// PredictionMetadataService defines methods for retrieving and deleting
// recorded predictions.
type PredictionMetadataService interface {
	// List retrieves recorded predictions considering a query filter when set.
	List(ctx context.Context, query *PredictionMetaQuery) ([]*PredictionMeta, error)

	// GetByID retrieves a recorded prediction by ID.
	GetByID(ctx context.Context, predictionID string) (*PredictionMeta, error)

	// DeleteByID deletes a recorded prediction by ID.
	DeleteByID(ctx context.Context, predictionID string) error
}

// PredictionRepository defines the interface for prediction persistence
type PredictionRepository interface {
	// Create adds a new PredictionMeta to the database
	Create(ctx context.Context, prediction *PredictionMeta) error
	// List lists PredictionMetas in the database with optional filter
	List(ctx context.Context, query *PredictionMetaQuery) ([]*PredictionMeta, error)
	// GetByID retrieves a PredictionMeta from the database by ID
	GetByID(ctx context.Context, predictionID string) (*PredictionMeta, error)
	// DeleteByID deletes a PredictionMeta in the database by ID
	DeleteByID(ctx context.Context, predictionID string) error
}

// ModelStore is an interface for reading and writing model artifacts
type ModelStore interface {
	// Load reads and validates a model artifact from the given path.
	Load(path string) (*ModelArtifact, error)

	// Save validates and writes a model artifact to the given path.
	Save(path string, artifact *ModelArtifact) error
}

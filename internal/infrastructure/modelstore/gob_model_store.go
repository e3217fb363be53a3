// Package modelstore reads and writes gob-encoded model artifacts on the
// local filesystem.
package modelstore

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"model_serving_service/internal/domain/serving"
	"model_serving_service/internal/pkg/logger"
)

type gobModelStore struct {
	logger logger.Logger
}

// NewGobModelStore creates a new gob-based ModelStore implementation
func NewGobModelStore(logger logger.Logger) (serving.ModelStore, error) {
	return &gobModelStore{
		logger: logger,
	}, nil
}

// Load reads a gob-encoded model artifact from the given path and validates
// it before returning.
func (s *gobModelStore) Load(path string) (*serving.ModelArtifact, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open model artifact at %s: %w", path, err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.logger.Warn("failed to close model artifact file: ", err)
		}
	}()

	var artifact serving.ModelArtifact
	if err := gob.NewDecoder(file).Decode(&artifact); err != nil {
		return nil, fmt.Errorf("failed to decode model artifact at %s: %w", path, err)
	}

	if err := artifact.Validate(); err != nil {
		return nil, fmt.Errorf("loaded model artifact is invalid: %w", err)
	}

	s.logger.Info("loaded model artifact ", artifact.Name, " version ", artifact.Version, " from ", path)
	return &artifact, nil
}

// Save validates the artifact and writes it gob-encoded to the given path,
// creating parent directories as needed.
func (s *gobModelStore) Save(path string, artifact *serving.ModelArtifact) error {
	if err := artifact.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid model artifact: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create model directory %s: %w", dir, err)
		}
	}

	file, err := os.OpenFile(filepath.Clean(path), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create model artifact at %s: %w", path, err)
	}

	if err := gob.NewEncoder(file).Encode(artifact); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to encode model artifact: %w", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close model artifact file: %w", err)
	}

	s.logger.Info("saved model artifact ", artifact.Name, " version ", artifact.Version, " to ", path)
	return nil
}

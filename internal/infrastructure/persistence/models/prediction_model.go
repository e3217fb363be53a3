package models

import (
	"encoding/json"
	"fmt"
	"time"

	"model_serving_service/internal/domain/serving"
)

// PredictionModel is the GORM representation of a recorded prediction.
// Features are stored as a JSON-encoded array so the row stays portable
// between SQLite and PostgreSQL.
type PredictionModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	DateTimeCreated time.Time `gorm:"index"`
	ModelName       string    `gorm:"index;size:255"`
	ModelVersion    string    `gorm:"size:50"`
	TaskType        string    `gorm:"index;size:20"`
	Features        string    `gorm:"type:text"`
	Score           float64
	Label           *string `gorm:"size:20"`
}

// TableName overrides the default GORM table name
func (PredictionModel) TableName() string {
	return "predictions"
}

// ToDomain converts the database model into the domain entity
func (m *PredictionModel) ToDomain() (*serving.PredictionMeta, error) {
	var features []float64
	if err := json.Unmarshal([]byte(m.Features), &features); err != nil {
		return nil, fmt.Errorf("failed to decode features for prediction '%s': %w", m.ID, err)
	}

	return &serving.PredictionMeta{
		ID:              m.ID,
		DateTimeCreated: m.DateTimeCreated,
		ModelName:       m.ModelName,
		ModelVersion:    m.ModelVersion,
		TaskType:        m.TaskType,
		Features:        features,
		Score:           m.Score,
		Label:           m.Label,
	}, nil
}

// FromDomain populates the database model from the domain entity
func (m *PredictionModel) FromDomain(prediction *serving.PredictionMeta) error {
	features, err := json.Marshal(prediction.Features)
	if err != nil {
		return fmt.Errorf("failed to encode features for prediction '%s': %w", prediction.ID, err)
	}

	m.ID = prediction.ID
	m.DateTimeCreated = prediction.DateTimeCreated
	m.ModelName = prediction.ModelName
	m.ModelVersion = prediction.ModelVersion
	m.TaskType = prediction.TaskType
	m.Features = string(features)
	m.Score = prediction.Score
	m.Label = prediction.Label
	return nil
}

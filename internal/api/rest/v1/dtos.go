package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// PredictRequest is the request payload for running a prediction
type PredictRequest struct {
	Features []float64 `json:"features" validate:"required,min=1"`
}

// Validate for validating PredictRequest struct
func (r *PredictRequest) Validate() error {
	validate := validator.New()

	err := validate.Struct(r)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// PredictionMetaResponse is the response payload describing one recorded
// prediction
type PredictionMetaResponse struct {
	ID              string    `json:"id"`
	DateTimeCreated time.Time `json:"dateTimeCreated"`
	ModelName       string    `json:"modelName"`
	ModelVersion    string    `json:"modelVersion"`
	TaskType        string    `json:"taskType"`
	Features        []float64 `json:"features"`
	Score           float64   `json:"score"`
	Label           *string   `json:"label,omitempty"`
}

// ProviderResponse describes the runtime status of one LLM provider
type ProviderResponse struct {
	Name       string `json:"name"`
	Model      string `json:"model"`
	Configured bool   `json:"configured"`
	Active     bool   `json:"active"`
}

// ProviderCatalogResponse lists all supported providers along with the
// request defaults applied to provider calls
type ProviderCatalogResponse struct {
	Providers          []ProviderResponse `json:"providers"`
	DefaultTemperature float64            `json:"defaultTemperature"`
	MaxRetries         int                `json:"maxRetries"`
}

// HealthResponse reports the service status and loaded model, if any
type HealthResponse struct {
	Status       string  `json:"status"`
	ModelName    *string `json:"modelName,omitempty"`
	ModelVersion *string `json:"modelVersion,omitempty"`
	TaskType     *string `json:"taskType,omitempty"`
}

// ErrorResponse contains the error message of failed requests
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse contains an informational message
type InfoResponse struct {
	Message string `json:"message"`
}

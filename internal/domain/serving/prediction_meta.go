package serving

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// PredictionMeta entity, one recorded prediction
type PredictionMeta struct {
	ID              string    `validate:"required,uuid4"`
	DateTimeCreated time.Time `validate:"required"`
	ModelName       string    `validate:"required,min=1,max=255"`
	ModelVersion    string    `validate:"required,min=1,max=50"`
	TaskType        string    `validate:"required,oneof=classification regression"`
	Features        []float64 `validate:"required,min=1"`
	Score           float64
	Label           *string `validate:"omitempty,oneof=positive negative"`
}

// Validate for validating PredictionMeta struct
func (p *PredictionMeta) Validate() error {
	validate := validator.New()

	err := validate.Struct(p)
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

// PredictionMetaQuery is the filter used when listing recorded predictions
type PredictionMetaQuery struct {
	ModelName string    `validate:"omitempty,max=255"`
	TaskType  string    `validate:"omitempty,oneof=classification regression"`
	Since     time.Time `validate:"omitempty"`

	SortBy    string `validate:"omitempty,oneof=date_time_created score model_name"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
	Limit     int    `validate:"omitempty,min=1,max=500"`
	Offset    int    `validate:"omitempty,min=0"`
}

// NewPredictionMetaQuery creates a query with default pagination and sorting
func NewPredictionMetaQuery() *PredictionMetaQuery {
	return &PredictionMetaQuery{
		SortBy:    "date_time_created",
		SortOrder: "desc",
		Limit:     10,
		Offset:    0,
	}
}

// Validate for validating PredictionMetaQuery struct
func (q *PredictionMetaQuery) Validate() error {
	validate := validator.New()

	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed for PredictionMetaQuery: %w", err)
	}

	return nil
}

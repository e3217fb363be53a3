package serving

import (
	"errors"
	"fmt"
	"math"
	"time"

	"model_serving_service/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// ModelArtifact is a serialized linear model. Artifacts are produced offline,
// stored gob-encoded on disk and loaded once at service start.
type ModelArtifact struct {
	Name         string    `validate:"required,min=1,max=255"`
	Version      string    `validate:"required,min=1,max=50"`
	TaskType     string    `validate:"required,oneof=classification regression"`
	FeatureCount int       `validate:"required,min=1"`
	Weights      []float64 `validate:"required,weightCountValidation"`
	Bias         float64
	TrainedAt    time.Time `validate:"required"`
}

// Validate for validating ModelArtifact struct
func (a *ModelArtifact) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("weightCountValidation", validators.WeightCountValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(a)
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

// Predict evaluates the model on a feature vector. For regression it returns
// the raw linear score and no label. For classification it returns the
// sigmoid of the score and the label selected by the 0.5 threshold.
func (a *ModelArtifact) Predict(features []float64) (float64, *string, error) {
	if len(features) != a.FeatureCount {
		return 0, nil, fmt.Errorf("expected %d features, got %d", a.FeatureCount, len(features))
	}

	score := a.Bias
	for i, weight := range a.Weights {
		score += weight * features[i]
	}

	if a.TaskType == TaskTypeRegression {
		return score, nil, nil
	}

	probability := sigmoid(score)
	label := LabelNegative
	if probability >= classificationThreshold {
		label = LabelPositive
	}
	return probability, &label, nil
}

func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}

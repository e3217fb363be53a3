//go:build unit
// +build unit

package v1

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPredictRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   PredictRequest
		shouldErr bool
	}{
		{"Valid single feature", PredictRequest{Features: []float64{1.0}}, false},
		{"Valid multiple features", PredictRequest{Features: []float64{0.1, -2.5, 3.0}}, false},
		{"Missing features", PredictRequest{}, true},
		{"Empty features", PredictRequest{Features: []float64{}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestPredictionMetaResponse_Creation(t *testing.T) {
	label := "positive"
	response := PredictionMetaResponse{
		ID:        "pred-123",
		ModelName: "churn-scorer",
		TaskType:  "classification",
		Features:  []float64{1.0, 2.0},
		Score:     0.85,
		Label:     &label,
	}

	require.NotEmpty(t, response.ID)
	require.Equal(t, "churn-scorer", response.ModelName)
	require.NotNil(t, response.Label)
	require.Equal(t, "positive", *response.Label)
}

func TestErrorResponse_Creation(t *testing.T) {
	errResp := ErrorResponse{
		Message: "Test error",
	}

	require.Equal(t, "Test error", errResp.Message)
}

func TestInfoResponse_Creation(t *testing.T) {
	infoResp := InfoResponse{
		Message: "Operation successful",
	}

	require.Equal(t, "Operation successful", infoResp.Message)
}

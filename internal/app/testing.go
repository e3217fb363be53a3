//go:build integration
// +build integration

package app

import (
	"testing"

	"model_serving_service/internal/domain/providers"
	"model_serving_service/internal/domain/serving"
	"model_serving_service/internal/infrastructure/persistence"
	"model_serving_service/internal/pkg/config"
	"model_serving_service/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	PredictionService         serving.PredictionService
	PredictionMetadataService serving.PredictionMetadataService
	ProviderCatalogService    providers.CatalogService

	Artifact  *serving.ModelArtifact
	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration
// tests. A nil artifact sets up the degraded variant in which no model is
// loaded.
func SetupTestServices(t *testing.T, dbType string, artifact *serving.ModelArtifact) *TestServices {
	t.Helper()

	log := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)

	predictionService, err := NewPredictionService(artifact, dbContext.PredictionRepository, log)
	require.NoError(t, err, "Failed to create PredictionService")

	predictionMetadataService, err := NewPredictionMetadataService(dbContext.PredictionRepository, log)
	require.NoError(t, err, "Failed to create PredictionMetadataService")

	settings := &config.Settings{
		Provider:              config.ProviderOpenAI,
		OpenAIAPIKey:          "sk-test",
		OpenAIModel:           "gpt-4",
		AnthropicModel:        "claude-3-sonnet-20240229",
		GoogleModel:           "gemini-pro",
		AzureOpenAIModel:      "gpt-4",
		AzureOpenAIAPIVersion: "2024-02-01",
		LogLevel:              config.LogLevelInfo,
		MaxRetries:            3,
		DefaultTemperature:    0.7,
		ModelPath:             "model/model.gob",
		TaskType:              serving.TaskTypeClassification,
		Port:                  "8080",
	}
	providerCatalogService, err := NewProviderCatalogService(settings, log)
	require.NoError(t, err, "Failed to create ProviderCatalogService")

	return &TestServices{
		PredictionService:         predictionService,
		PredictionMetadataService: predictionMetadataService,
		ProviderCatalogService:    providerCatalogService,
		Artifact:                  artifact,
		DBContext:                 dbContext,
	}
}

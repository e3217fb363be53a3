//go:build unit
// +build unit

package v1

import (
	"context"

	"model_serving_service/internal/domain/providers"
	"model_serving_service/internal/domain/serving"

	"github.com/stretchr/testify/mock"
)

// MockPredictionService is a mock implementation of PredictionService
type MockPredictionService struct {
	mock.Mock
}

func (m *MockPredictionService) Predict(ctx context.Context, features []float64) (*serving.PredictionMeta, error) {
	args := m.Called(ctx, features)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*serving.PredictionMeta), args.Error(1)
}

func (m *MockPredictionService) ModelInfo() (*serving.ModelArtifact, bool) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*serving.ModelArtifact), args.Bool(1)
}

// MockPredictionMetadataService is a mock implementation of PredictionMetadataService
type MockPredictionMetadataService struct {
	mock.Mock
}

func (m *MockPredictionMetadataService) List(ctx context.Context, query *serving.PredictionMetaQuery) ([]*serving.PredictionMeta, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*serving.PredictionMeta), args.Error(1)
}

func (m *MockPredictionMetadataService) GetByID(ctx context.Context, predictionID string) (*serving.PredictionMeta, error) {
	args := m.Called(ctx, predictionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*serving.PredictionMeta), args.Error(1)
}

func (m *MockPredictionMetadataService) DeleteByID(ctx context.Context, predictionID string) error {
	args := m.Called(ctx, predictionID)
	return args.Error(0)
}

// MockProviderCatalogService is a mock implementation of CatalogService
type MockProviderCatalogService struct {
	mock.Mock
}

func (m *MockProviderCatalogService) List(ctx context.Context) ([]*providers.ProviderInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*providers.ProviderInfo), args.Error(1)
}

func (m *MockProviderCatalogService) Active(ctx context.Context) (*providers.ProviderInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*providers.ProviderInfo), args.Error(1)
}

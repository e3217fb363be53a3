package app

import (
	"context"
	"fmt"

	"model_serving_service/internal/domain/providers"
	"model_serving_service/internal/pkg/config"
	"model_serving_service/internal/pkg/logger"
)

// providerCatalogService implements the CatalogService interface on top of the
// service settings
type providerCatalogService struct {
	settings *config.Settings
	logger   logger.Logger
}

// NewProviderCatalogService creates a new instance of CatalogService
func NewProviderCatalogService(settings *config.Settings, logger logger.Logger) (providers.CatalogService, error) {
	if settings == nil {
		return nil, fmt.Errorf("settings must not be nil")
	}

	service := &providerCatalogService{
		settings: settings,
		logger:   logger,
	}

	if !settings.IsProviderAvailable(settings.Provider) {
		logger.Warn(fmt.Sprintf("Active provider %s has no credentials configured; running degraded", settings.Provider))
	}

	return service, nil
}

// List returns the status of every supported provider in catalog order
func (s *providerCatalogService) List(_ context.Context) ([]*providers.ProviderInfo, error) {
	infos := make([]*providers.ProviderInfo, 0, len(providers.All()))
	for _, provider := range providers.All() {
		infos = append(infos, &providers.ProviderInfo{
			Name:       provider,
			Model:      s.settings.ModelFor(string(provider)),
			Configured: s.settings.IsProviderAvailable(string(provider)),
			Active:     string(provider) == s.settings.Provider,
		})
	}

	return infos, nil
}

// Active returns the status of the selected provider
func (s *providerCatalogService) Active(ctx context.Context) (*providers.ProviderInfo, error) {
	infos, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, info := range infos {
		if info.Active {
			return info, nil
		}
	}

	return nil, fmt.Errorf("active provider %s is not a supported provider", s.settings.Provider)
}

package providers

import "context"

// CatalogService exposes the provider catalog derived from the service
// settings.
type CatalogService interface {
	// List returns the status of every supported provider in catalog order.
	List(ctx context.Context) ([]*ProviderInfo, error)

	// Active returns the status of the selected provider.
	Active(ctx context.Context) (*ProviderInfo, error)
}

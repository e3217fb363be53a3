// Package providers models the LLM providers the service can be configured
// against. Credential handling stays in the config package; this package only
// describes which providers exist and what their runtime status is.
package providers

import "fmt"

// Provider identifies an external LLM vendor.
type Provider string

// Supported providers
const (
	OpenAI      Provider = "openai"
	Anthropic   Provider = "anthropic"
	Google      Provider = "google"
	AzureOpenAI Provider = "azure"
)

// All returns the supported providers in catalog order.
func All() []Provider {
	return []Provider{OpenAI, Anthropic, Google, AzureOpenAI}
}

// Parse converts a provider name into a Provider, rejecting unknown names.
func Parse(name string) (Provider, error) {
	for _, provider := range All() {
		if string(provider) == name {
			return provider, nil
		}
	}
	return "", fmt.Errorf("unknown provider: %s", name)
}

// ProviderInfo describes the runtime status of one provider.
type ProviderInfo struct {
	Name Provider `validate:"required"`
	// Model is the model identifier configured for this provider.
	Model string `validate:"required"`
	// Configured reports whether the provider's required credentials are set.
	Configured bool
	// Active reports whether this provider is the selected one. An active
	// but unconfigured provider leaves the service degraded, not down.
	Active bool
}

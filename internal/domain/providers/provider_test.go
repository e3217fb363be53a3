//go:build unit
// +build unit

package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  Provider
		shouldErr bool
	}{
		{"openai", "openai", OpenAI, false},
		{"anthropic", "anthropic", Anthropic, false},
		{"google", "google", Google, false},
		{"azure", "azure", AzureOpenAI, false},
		{"unknown", "cohere", "", true},
		{"empty", "", "", true},
		{"case sensitive", "OpenAI", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := Parse(tt.input)
			if tt.shouldErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, provider)
		})
	}
}

func TestAll_Order(t *testing.T) {
	assert.Equal(t, []Provider{OpenAI, Anthropic, Google, AzureOpenAI}, All())
}

package commands

import (
	"context"
	"fmt"

	"model_serving_service/internal/app"
	"model_serving_service/internal/domain/providers"
	"model_serving_service/internal/pkg/config"
	"model_serving_service/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// ProviderCommandHandler encapsulates logic for inspecting the LLM provider
// catalog via CLI.
type ProviderCommandHandler struct {
	providerCatalogService providers.CatalogService
	settings               *config.Settings
	logger                 logger.Logger
}

// NewProviderCommandHandler initializes and returns a ProviderCommandHandler instance
// with configured logger and catalog service.
func NewProviderCommandHandler() (*ProviderCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	settings, err := config.NewSettingsFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize settings: %w", err)
	}

	providerCatalogService, err := app.NewProviderCatalogService(settings, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create provider catalog service: %w", err)
	}

	return &ProviderCommandHandler{
		providerCatalogService: providerCatalogService,
		settings:               settings,
		logger:                 loggerInstance,
	}, nil
}

// ListProvidersCmd prints the status of every supported LLM provider
func (commandHandler *ProviderCommandHandler) ListProvidersCmd(_ *cobra.Command, _ []string) {
	infos, err := commandHandler.providerCatalogService.List(context.Background())
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	for _, info := range infos {
		status := "not configured"
		if info.Configured {
			status = "configured"
		}
		marker := " "
		if info.Active {
			marker = "*"
		}
		fmt.Printf("%s %-10s %-30s %s\n", marker, info.Name, info.Model, status)
	}
	fmt.Printf("\nAvailable: %v\n", commandHandler.settings.AvailableProviders())
}

// InitProviderCommands registers provider-related commands
func InitProviderCommands(rootCmd *cobra.Command) error {
	handler, err := NewProviderCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create provider command handler %w", err)
	}

	var listProvidersCmd = &cobra.Command{
		Use:   "list-providers",
		Short: "List the configured LLM providers",
		Run:   handler.ListProvidersCmd,
	}
	rootCmd.AddCommand(listProvidersCmd)

	return nil
}

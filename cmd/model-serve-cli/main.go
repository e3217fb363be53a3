// Package main is the entry point for the model-serve-cli application.
// It initializes the root command and registers various sub-commands
// (Fibonacci, provider, model) for the CLI, then executes the
// command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "model_serving_service/cmd/model-serve-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "model-serve-cli",
		Short: "Model serving CLI tool",
		Long: `model-serve-cli is a command-line tool around the model serving service.
Supports Fibonacci number computation, inspecting the configured LLM provider
catalog, and generating and evaluating serialized model artifacts.

Provider availability is read from the same environment variables the service
uses (LLM_PROVIDER, OPENAI_API_KEY, ANTHROPIC_API_KEY, GOOGLE_API_KEY,
AZURE_OPENAI_API_KEY, AZURE_OPENAI_ENDPOINT).`,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	// Register Fibonacci commands
	if err := commands.InitFibonacciCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize Fibonacci commands: %w", err)
	}

	// Register provider commands
	if err := commands.InitProviderCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize provider commands: %w", err)
	}

	// Register model commands
	if err := commands.InitModelCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize model commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	// Set log flags for better error messages
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure proper exit codes on errors
	log.SetOutput(os.Stderr)
}

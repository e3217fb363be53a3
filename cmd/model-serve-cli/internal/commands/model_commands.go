package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"model_serving_service/internal/domain/serving"
	"model_serving_service/internal/infrastructure/modelstore"
	"model_serving_service/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// ModelCommandHandler encapsulates logic for generating and evaluating model
// artifacts via CLI.
type ModelCommandHandler struct {
	modelStore serving.ModelStore
	logger     logger.Logger
}

// NewModelCommandHandler initializes and returns a ModelCommandHandler instance with
// configured logger and model store.
func NewModelCommandHandler() (*ModelCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	modelStore, err := modelstore.NewGobModelStore(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create model store: %w", err)
	}

	return &ModelCommandHandler{
		modelStore: modelStore,
		logger:     loggerInstance,
	}, nil
}

// GenerateModelCmd creates a model artifact from flags and persists it
func (commandHandler *ModelCommandHandler) GenerateModelCmd(cmd *cobra.Command, _ []string) {
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		commandHandler.logger.Error("invalid name flag ", err)
		return
	}
	version, err := cmd.Flags().GetString("model-version")
	if err != nil {
		commandHandler.logger.Error("invalid model-version flag ", err)
		return
	}
	taskType, err := cmd.Flags().GetString("task-type")
	if err != nil {
		commandHandler.logger.Error("invalid task-type flag ", err)
		return
	}
	weightsFlag, err := cmd.Flags().GetString("weights")
	if err != nil {
		commandHandler.logger.Error("invalid weights flag ", err)
		return
	}
	bias, err := cmd.Flags().GetFloat64("bias")
	if err != nil {
		commandHandler.logger.Error("invalid bias flag ", err)
		return
	}
	outputFilePath, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag ", err)
		return
	}

	weights, err := parseFeatures(weightsFlag)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	artifact := &serving.ModelArtifact{
		Name:         name,
		Version:      version,
		TaskType:     taskType,
		FeatureCount: len(weights),
		Weights:      weights,
		Bias:         bias,
		TrainedAt:    time.Now().UTC(),
	}

	if err := commandHandler.modelStore.Save(outputFilePath, artifact); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Model artifact saved to ", outputFilePath)
}

// PredictCmd loads a model artifact and evaluates it on a feature vector
func (commandHandler *ModelCommandHandler) PredictCmd(cmd *cobra.Command, _ []string) {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag ", err)
		return
	}
	featuresFlag, err := cmd.Flags().GetString("features")
	if err != nil {
		commandHandler.logger.Error("invalid features flag ", err)
		return
	}

	features, err := parseFeatures(featuresFlag)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	artifact, err := commandHandler.modelStore.Load(inputFilePath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	score, label, err := artifact.Predict(features)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if label != nil {
		fmt.Printf("model=%s@%s score=%.6f label=%s\n", artifact.Name, artifact.Version, score, *label)
		return
	}
	fmt.Printf("model=%s@%s score=%.6f\n", artifact.Name, artifact.Version, score)
}

// parseFeatures converts a comma-separated list of numbers into a float slice
func parseFeatures(raw string) ([]float64, error) {
	parts := strings.Split(raw, ",")
	values := make([]float64, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		value, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", trimmed, err)
		}
		values = append(values, value)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("no numbers provided")
	}
	return values, nil
}

// InitModelCommands registers model-related commands
func InitModelCommands(rootCmd *cobra.Command) error {
	handler, err := NewModelCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create model command handler %w", err)
	}

	var generateModelCmd = &cobra.Command{
		Use:   "generate-model",
		Short: "Generate and persist a model artifact",
		Run:   handler.GenerateModelCmd,
	}
	generateModelCmd.Flags().StringP("name", "", "linear-model", "Model name")
	generateModelCmd.Flags().StringP("model-version", "", "0.1.0", "Model version")
	generateModelCmd.Flags().StringP("task-type", "", "classification", "Task type (classification or regression)")
	generateModelCmd.Flags().StringP("weights", "", "", "Comma-separated model weights")
	generateModelCmd.Flags().Float64P("bias", "", 0, "Model bias term")
	generateModelCmd.Flags().StringP("output-file", "", "model/model.gob", "Path to the output model artifact")
	rootCmd.AddCommand(generateModelCmd)

	var predictCmd = &cobra.Command{
		Use:   "predict",
		Short: "Evaluate a model artifact on a feature vector",
		Run:   handler.PredictCmd,
	}
	predictCmd.Flags().StringP("input-file", "", "model/model.gob", "Path to the model artifact")
	predictCmd.Flags().StringP("features", "", "", "Comma-separated feature values")
	rootCmd.AddCommand(predictCmd)

	return nil
}

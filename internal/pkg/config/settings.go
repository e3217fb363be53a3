package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Settings holds the environment-driven configuration of the service.
// It is constructed explicitly at process start via NewSettingsFromEnv and
// passed to the components that need it; nothing reads the environment after
// construction.
type Settings struct {
	// Provider selects the active LLM provider. It may name a provider whose
	// credentials are missing; the service then runs in a degraded state and
	// reports the gap instead of refusing to start.
	Provider string `validate:"required,oneof=openai anthropic google azure"`

	OpenAIAPIKey string
	OpenAIModel  string `validate:"required"`

	AnthropicAPIKey string
	AnthropicModel  string `validate:"required"`

	GoogleAPIKey string
	GoogleModel  string `validate:"required"`

	AzureOpenAIAPIKey     string
	AzureOpenAIEndpoint   string
	AzureOpenAIModel      string `validate:"required"`
	AzureOpenAIAPIVersion string `validate:"required"`

	Debug              bool
	LogLevel           string  `validate:"required,oneof=info debug error warning critical"`
	MaxRetries         int     `validate:"gte=0,lte=10"`
	DefaultTemperature float64 `validate:"gte=0,lte=2"`

	ModelPath string `validate:"required"`
	TaskType  string `validate:"required,oneof=classification regression"`

	Port string `validate:"required,numeric"`
}

// NewSettingsFromEnv builds Settings from environment variables, applying the
// documented defaults for unset values. Malformed boolean or numeric values
// are reported as errors rather than silently replaced.
func NewSettingsFromEnv() (*Settings, error) {
	debug, err := getEnvBool("DEBUG", false)
	if err != nil {
		return nil, err
	}

	maxRetries, err := getEnvInt("MAX_RETRIES", 3)
	if err != nil {
		return nil, err
	}

	defaultTemperature, err := getEnvFloat("DEFAULT_TEMPERATURE", 0.7)
	if err != nil {
		return nil, err
	}

	settings := &Settings{
		Provider: getEnv("LLM_PROVIDER", ProviderOpenAI),

		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4"),

		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel:  getEnv("ANTHROPIC_MODEL", "claude-3-sonnet-20240229"),

		GoogleAPIKey: os.Getenv("GOOGLE_API_KEY"),
		GoogleModel:  getEnv("GOOGLE_MODEL", "gemini-pro"),

		AzureOpenAIAPIKey:     os.Getenv("AZURE_OPENAI_API_KEY"),
		AzureOpenAIEndpoint:   os.Getenv("AZURE_OPENAI_ENDPOINT"),
		AzureOpenAIModel:      getEnv("AZURE_OPENAI_MODEL", "gpt-4"),
		AzureOpenAIAPIVersion: getEnv("AZURE_OPENAI_API_VERSION", "2024-02-01"),

		Debug:              debug,
		LogLevel:           getEnv("LOG_LEVEL", LogLevelInfo),
		MaxRetries:         maxRetries,
		DefaultTemperature: defaultTemperature,

		ModelPath: getEnv("MODEL_PATH", "model/model.gob"),
		TaskType:  getEnv("TASK_TYPE", "classification"),

		Port: getEnv("PORT", "8080"),
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

// Validate checks that all fields in Settings are valid
func (s *Settings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for Settings: %w", err)
	}

	return nil
}

// AvailableProviders returns exactly the providers whose required credentials
// are set, in a fixed order: openai, anthropic, google, azure. Azure OpenAI
// requires both an API key and an endpoint.
func (s *Settings) AvailableProviders() []string {
	var available []string

	if s.OpenAIAPIKey != "" {
		available = append(available, ProviderOpenAI)
	}
	if s.AnthropicAPIKey != "" {
		available = append(available, ProviderAnthropic)
	}
	if s.GoogleAPIKey != "" {
		available = append(available, ProviderGoogle)
	}
	if s.AzureOpenAIAPIKey != "" && s.AzureOpenAIEndpoint != "" {
		available = append(available, ProviderAzureOpenAI)
	}

	return available
}

// IsProviderAvailable reports whether the named provider has its required
// credentials set.
func (s *Settings) IsProviderAvailable(name string) bool {
	for _, available := range s.AvailableProviders() {
		if available == name {
			return true
		}
	}
	return false
}

// ModelFor returns the configured model name for the given provider, or an
// empty string for an unknown provider name.
func (s *Settings) ModelFor(name string) string {
	switch name {
	case ProviderOpenAI:
		return s.OpenAIModel
	case ProviderAnthropic:
		return s.AnthropicModel
	case ProviderGoogle:
		return s.GoogleModel
	case ProviderAzureOpenAI:
		return s.AzureOpenAIModel
	default:
		return ""
	}
}

// NewLoggerSettingsFrom derives logger settings from the service settings.
// DEBUG lowers the level to debug regardless of LOG_LEVEL.
func NewLoggerSettingsFrom(s *Settings) *LoggerSettings {
	level := s.LogLevel
	if s.Debug {
		level = LogLevelDebug
	}

	return &LoggerSettings{
		LogLevel: level,
		LogType:  LogTypeConsole,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid boolean value for %s: %w", key, err)
	}
	return parsed, nil
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid integer value for %s: %w", key, err)
	}
	return parsed, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float value for %s: %w", key, err)
	}
	return parsed, nil
}

package config

// ProviderOpenAI represents the OpenAI LLM provider
const ProviderOpenAI = "openai"

// ProviderAnthropic represents the Anthropic LLM provider
const ProviderAnthropic = "anthropic"

// ProviderGoogle represents the Google LLM provider
const ProviderGoogle = "google"

// ProviderAzureOpenAI represents the Azure OpenAI LLM provider
const ProviderAzureOpenAI = "azure"

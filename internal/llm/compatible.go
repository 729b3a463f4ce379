package llm

import "fmt"

const (
	defaultEuronBaseURL      = "https://api.euron.one/api/v1/euri"
	defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"
	defaultOllamaBaseURL     = "http://localhost:11434/v1"
)

// The providers below expose OpenAI-compatible chat completion APIs, so the
// OpenAI SDK is reused with a different base URL and schema mode.

// EuronProvider targets the Euron (euri) gateway.
type EuronProvider struct {
	*OpenAIProvider
}

// NewEuronProvider creates a provider targeting the Euron API.
func NewEuronProvider(cfg EuronConfig) (*EuronProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("euron API token is required")
	}

	inner := newOpenAIProviderRaw(OpenAIConfig{
		APIKey:     cfg.APIKey,
		Model:      cfg.Model,
		BaseURL:    orDefault(cfg.BaseURL, defaultEuronBaseURL),
		SchemaMode: orDefault(cfg.SchemaMode, SchemaModePrompt),
	})
	inner.legacyMaxTokens = true
	return &EuronProvider{OpenAIProvider: inner}, nil
}

// OpenRouterProvider wraps OpenAIProvider with OpenRouter-specific defaults.
type OpenRouterProvider struct {
	*OpenAIProvider
}

// NewOpenRouterProvider creates a provider targeting the OpenRouter API.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}

	inner := newOpenAIProviderRaw(OpenAIConfig{
		APIKey:     cfg.APIKey,
		Model:      cfg.Model,
		BaseURL:    orDefault(cfg.BaseURL, defaultOpenRouterBaseURL),
		SchemaMode: orDefault(cfg.SchemaMode, SchemaModeJSONSchema),
	})
	return &OpenRouterProvider{OpenAIProvider: inner}, nil
}

// OllamaProvider talks to a local Ollama server through its /v1 endpoint.
// No API key is needed.
type OllamaProvider struct {
	*OpenAIProvider
}

// NewOllamaProvider creates a provider targeting a local Ollama server.
func NewOllamaProvider(cfg OllamaConfig) (*OllamaProvider, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("ollama model is required")
	}

	inner := newOpenAIProviderRaw(OpenAIConfig{
		APIKey:     "ollama",
		Model:      cfg.Model,
		BaseURL:    orDefault(cfg.BaseURL, defaultOllamaBaseURL),
		SchemaMode: orDefault(cfg.SchemaMode, SchemaModeJSONObject),
	})
	inner.legacyMaxTokens = true
	return &OllamaProvider{OpenAIProvider: inner}, nil
}

func orDefault[T ~string](v, def T) T {
	if v == "" {
		return def
	}
	return v
}

package llm

import (
	"fmt"
	"os"
	"time"
)

// Provider names accepted in Config.Provider.
const (
	ProviderEuron      = "euron"
	ProviderOpenAI     = "openai"
	ProviderOpenRouter = "openrouter"
	ProviderOllama     = "ollama"
	ProviderAnthropic  = "anthropic"
	ProviderGemini     = "gemini"
	ProviderMock       = "mock"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which LLM provider to use. Empty means "discover
	// from the API key environment variables".
	Provider string

	Euron      EuronConfig
	OpenAI     OpenAIConfig
	OpenRouter OpenRouterConfig
	Ollama     OllamaConfig
	Anthropic  AnthropicConfig
	Gemini     GeminiConfig

	// Timeout bounds a single generate call including all its attempts.
	// Default: 30s.
	Timeout time.Duration
}

// EuronConfig holds Euron-specific configuration.
type EuronConfig struct {
	APIKey     string
	Model      string // Default: "gpt-4.1-nano"
	BaseURL    string // Default: "https://api.euron.one/api/v1/euri"
	SchemaMode SchemaMode
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey     string
	Model      string // Default: "gpt-4o-mini"
	BaseURL    string // Optional. Override for compatible APIs.
	SchemaMode SchemaMode
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey     string
	Model      string // Default: "openai/gpt-4.1-nano"
	BaseURL    string // Default: "https://openrouter.ai/api/v1"
	SchemaMode SchemaMode
}

// OllamaConfig holds configuration for a local Ollama server.
type OllamaConfig struct {
	Model      string // Default: "gemma3n:e4b"
	BaseURL    string // Default: "http://localhost:11434/v1"
	SchemaMode SchemaMode
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey  string
	Model   string // Default: "claude-haiku"
	BaseURL string
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey  string
	Model   string // Default: "gemini-flash"
	BaseURL string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Euron:      EuronConfig{Model: "gpt-4.1-nano"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		OpenRouter: OpenRouterConfig{Model: "openai/gpt-4.1-nano"},
		Ollama:     OllamaConfig{Model: "gemma3n:e4b"},
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		Timeout:    30 * time.Second,
	}
}

// keyVars lists the API key environment variables in discovery order.
var keyVars = []struct {
	provider string
	env      string
}{
	{ProviderEuron, "EURON_API_TOKEN"},
	{ProviderOpenAI, "OPENAI_API_KEY"},
	{ProviderAnthropic, "ANTHROPIC_API_KEY"},
	{ProviderGemini, "GEMINI_API_KEY"},
	{ProviderOpenRouter, "OPENROUTER_API_KEY"},
}

// ApplyEnv reads API keys and overrides from environment variables.
// QUIZGEN_LLM_PROVIDER and QUIZGEN_LLM_MODEL override the provider and the
// selected provider's model. If no provider is set afterwards, the first
// provider whose API key is present is selected.
func (c *Config) ApplyEnv() {
	c.applyEnv(os.Getenv)
}

func (c *Config) applyEnv(getenv func(string) string) {
	c.Euron.APIKey = firstNonEmpty(getenv("EURON_API_TOKEN"), c.Euron.APIKey)
	c.OpenAI.APIKey = firstNonEmpty(getenv("OPENAI_API_KEY"), c.OpenAI.APIKey)
	c.Anthropic.APIKey = firstNonEmpty(getenv("ANTHROPIC_API_KEY"), c.Anthropic.APIKey)
	c.Gemini.APIKey = firstNonEmpty(getenv("GEMINI_API_KEY"), c.Gemini.APIKey)
	c.OpenRouter.APIKey = firstNonEmpty(getenv("OPENROUTER_API_KEY"), c.OpenRouter.APIKey)

	if p := getenv("QUIZGEN_LLM_PROVIDER"); p != "" {
		c.Provider = p
	}

	if c.Provider == "" {
		for _, kv := range keyVars {
			if getenv(kv.env) != "" {
				c.Provider = kv.provider
				break
			}
		}
	}

	if m := getenv("QUIZGEN_LLM_MODEL"); m != "" {
		c.SetModel(m)
	}
}

// SetModel sets the model of the selected provider.
func (c *Config) SetModel(model string) {
	switch c.Provider {
	case ProviderEuron:
		c.Euron.Model = model
	case ProviderOpenAI:
		c.OpenAI.Model = model
	case ProviderOpenRouter:
		c.OpenRouter.Model = model
	case ProviderOllama:
		c.Ollama.Model = model
	case ProviderAnthropic:
		c.Anthropic.Model = model
	case ProviderGemini:
		c.Gemini.Model = model
	}
}

// Model returns the model configured for the selected provider.
func (c Config) Model() string {
	switch c.Provider {
	case ProviderEuron:
		return c.Euron.Model
	case ProviderOpenAI:
		return c.OpenAI.Model
	case ProviderOpenRouter:
		return c.OpenRouter.Model
	case ProviderOllama:
		return c.Ollama.Model
	case ProviderAnthropic:
		return c.Anthropic.Model
	case ProviderGemini:
		return c.Gemini.Model
	case ProviderMock:
		return "mock"
	}
	return ""
}

// SetBaseURL overrides the endpoint of the selected provider.
func (c *Config) SetBaseURL(url string) {
	switch c.Provider {
	case ProviderEuron:
		c.Euron.BaseURL = url
	case ProviderOpenAI:
		c.OpenAI.BaseURL = url
	case ProviderOpenRouter:
		c.OpenRouter.BaseURL = url
	case ProviderOllama:
		c.Ollama.BaseURL = url
	case ProviderAnthropic:
		c.Anthropic.BaseURL = url
	case ProviderGemini:
		c.Gemini.BaseURL = url
	}
}

// SetSchemaMode overrides the schema mode of an OpenAI-compatible provider.
func (c *Config) SetSchemaMode(mode SchemaMode) {
	switch c.Provider {
	case ProviderEuron:
		c.Euron.SchemaMode = mode
	case ProviderOpenAI:
		c.OpenAI.SchemaMode = mode
	case ProviderOpenRouter:
		c.OpenRouter.SchemaMode = mode
	case ProviderOllama:
		c.Ollama.SchemaMode = mode
	}
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderEuron:
		if c.Euron.APIKey == "" {
			return fmt.Errorf("EURON_API_TOKEN is required for the euron provider")
		}
	case ProviderOpenAI:
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for the openai provider")
		}
	case ProviderOpenRouter:
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case ProviderAnthropic:
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case ProviderGemini:
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required for the gemini provider")
		}
	case ProviderOllama, ProviderMock:
		// No API key needed.
	case "":
		return fmt.Errorf("no LLM provider configured: set EURON_API_TOKEN or QUIZGEN_LLM_PROVIDER")
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// resolveModel maps a friendly model name to a vendor model ID. Unknown
// names are passed through as model IDs.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}

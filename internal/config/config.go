package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/abhisek/quizgen/internal/llm"
	"github.com/abhisek/quizgen/internal/quizgen"
	"github.com/abhisek/quizgen/internal/store"
)

const (
	DefaultAddr    = "127.0.0.1:8088"
	configFileName = "config.toml"
)

// Config is the root of the quizgen TOML configuration file.
type Config struct {
	LLM       LLMConfig       `toml:"llm"`
	Generator GeneratorConfig `toml:"generator"`
	Store     StoreConfig     `toml:"store"`
	Server    ServerConfig    `toml:"server"`
}

// LLMConfig selects and tunes the LLM provider.
type LLMConfig struct {
	Provider    string   `toml:"provider"`
	Model       string   `toml:"model"`
	Temperature float64  `toml:"temperature"`
	MaxTokens   int      `toml:"max_tokens"`
	Timeout     Duration `toml:"timeout"`
	BaseURL     string   `toml:"base_url,omitempty"`
	SchemaMode  string   `toml:"schema_mode,omitempty"`
}

// GeneratorConfig tunes question generation.
type GeneratorConfig struct {
	MaxAttempts   int  `toml:"max_attempts"`
	StrictChoices bool `toml:"strict_choices"`
}

// StoreConfig locates the request log database.
type StoreConfig struct {
	Path string `toml:"path,omitempty"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Addr           string   `toml:"addr"`
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Duration wraps time.Duration for TOML parsing
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Overrides holds command-line values that take precedence over both the
// file and the environment.
type Overrides struct {
	Provider string
	Model    string
}

// Default returns a Config populated with defaults.
func Default() *Config {
	c := &Config{}
	c.ApplyDefaults()
	return c
}

// ApplyDefaults sets default values for all config fields
func (c *Config) ApplyDefaults() {
	c.LLM.Temperature = 0.9
	c.LLM.MaxTokens = 512
	c.LLM.Timeout = Duration{30 * time.Second}

	c.Generator.MaxAttempts = llm.DefaultMaxAttempts
	c.Generator.StrictChoices = true

	c.Server.Addr = DefaultAddr
	c.Server.AllowedOrigins = []string{"*"}
}

// Load reads the configuration at path on top of the defaults. A missing
// file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	path = ExpandPath(path)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to the given path
func (c *Config) Save(path string) error {
	path = ExpandPath(path)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// Validate checks value ranges. Provider credentials are checked later by
// llm.Config.Validate, once the environment has been applied.
func (c *Config) Validate() error {
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2, got %v", c.LLM.Temperature)
	}
	if c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("llm.max_tokens must be positive, got %d", c.LLM.MaxTokens)
	}
	if c.LLM.Timeout.Duration < 0 {
		return fmt.Errorf("llm.timeout must not be negative")
	}
	switch llm.SchemaMode(c.LLM.SchemaMode) {
	case "", llm.SchemaModeJSONSchema, llm.SchemaModeJSONObject, llm.SchemaModePrompt:
	default:
		return fmt.Errorf("llm.schema_mode must be one of json_schema, json_object, prompt; got %q", c.LLM.SchemaMode)
	}
	if c.Generator.MaxAttempts < 1 {
		return fmt.Errorf("generator.max_attempts must be at least 1, got %d", c.Generator.MaxAttempts)
	}
	return nil
}

// LLMConfig resolves the provider configuration. Precedence for provider
// and model is flags, then environment, then file. API keys come from the
// environment only.
func (c *Config) LLMConfig(flags Overrides) llm.Config {
	lc := llm.DefaultConfig()
	lc.Provider = c.LLM.Provider
	lc.ApplyEnv()

	if flags.Provider != "" {
		lc.Provider = flags.Provider
	}
	if model := firstNonEmpty(flags.Model, os.Getenv("QUIZGEN_LLM_MODEL"), c.LLM.Model); model != "" {
		lc.SetModel(model)
	}
	if c.LLM.BaseURL != "" {
		lc.SetBaseURL(c.LLM.BaseURL)
	}
	if c.LLM.SchemaMode != "" {
		lc.SetSchemaMode(llm.SchemaMode(c.LLM.SchemaMode))
	}
	if c.LLM.Timeout.Duration > 0 {
		lc.Timeout = c.LLM.Timeout.Duration
	}
	return lc
}

// GeneratorConfig builds the question generator configuration.
func (c *Config) GeneratorConfig() quizgen.Config {
	gc := quizgen.DefaultConfig()
	gc.MaxAttempts = c.Generator.MaxAttempts
	gc.MaxTokens = c.LLM.MaxTokens
	gc.Temperature = c.LLM.Temperature
	if !c.Generator.StrictChoices {
		gc.MCQValidators = quizgen.LenientMCQValidators()
	}
	return gc
}

// DefaultPath returns the config file location: $QUIZGEN_CONFIG, else
// $XDG_CONFIG_HOME/quizgen/config.toml, else ~/.config/quizgen/config.toml.
func DefaultPath() (string, error) {
	if p := os.Getenv("QUIZGEN_CONFIG"); p != "" {
		return ExpandPath(p), nil
	}
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "quizgen", configFileName), nil
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// DBPath resolves the request log location: flag, then $QUIZGEN_DB, then
// the file's store.path, then the XDG data directory. The parent directory
// is created.
func (c *Config) DBPath(flag string) (string, error) {
	path := flag
	if path == "" && os.Getenv("QUIZGEN_DB") == "" && c.Store.Path != "" {
		path = ExpandPath(c.Store.Path)
	}
	if path == "" {
		return store.DefaultDBPath()
	}
	if err := store.EnsureDir(path); err != nil {
		return "", err
	}
	return path, nil
}

package llm

import "testing"

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "euron without key",
			cfg:     Config{Provider: ProviderEuron},
			wantErr: true,
		},
		{
			name:    "euron with key",
			cfg:     Config{Provider: ProviderEuron, Euron: EuronConfig{APIKey: "euri-test"}},
			wantErr: false,
		},
		{
			name:    "anthropic without key",
			cfg:     Config{Provider: ProviderAnthropic},
			wantErr: true,
		},
		{
			name:    "anthropic with key",
			cfg:     Config{Provider: ProviderAnthropic, Anthropic: AnthropicConfig{APIKey: "sk-test"}},
			wantErr: false,
		},
		{
			name:    "openai without key",
			cfg:     Config{Provider: ProviderOpenAI},
			wantErr: true,
		},
		{
			name:    "ollama needs no key",
			cfg:     Config{Provider: ProviderOllama},
			wantErr: false,
		},
		{
			name:    "mock needs no key",
			cfg:     Config{Provider: ProviderMock},
			wantErr: false,
		},
		{
			name:    "no provider",
			cfg:     Config{},
			wantErr: true,
		},
		{
			name:    "unknown provider",
			cfg:     Config{Provider: "unknown"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestConfig_ApplyEnv(t *testing.T) {
	t.Run("discovers euron first", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.applyEnv(envMap(map[string]string{
			"EURON_API_TOKEN": "euri-key",
			"OPENAI_API_KEY":  "sk-key",
		}))
		if cfg.Provider != ProviderEuron {
			t.Fatalf("provider = %q, want euron", cfg.Provider)
		}
		if cfg.Euron.APIKey != "euri-key" || cfg.OpenAI.APIKey != "sk-key" {
			t.Fatalf("keys not applied: %+v", cfg)
		}
	})

	t.Run("discovers next available key", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.applyEnv(envMap(map[string]string{"GEMINI_API_KEY": "g-key"}))
		if cfg.Provider != ProviderGemini {
			t.Fatalf("provider = %q, want gemini", cfg.Provider)
		}
	})

	t.Run("explicit provider and model", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.applyEnv(envMap(map[string]string{
			"EURON_API_TOKEN":      "euri-key",
			"QUIZGEN_LLM_PROVIDER": "ollama",
			"QUIZGEN_LLM_MODEL":    "llama3.2",
		}))
		if cfg.Provider != ProviderOllama {
			t.Fatalf("provider = %q, want ollama", cfg.Provider)
		}
		if cfg.Ollama.Model != "llama3.2" {
			t.Fatalf("ollama model = %q", cfg.Ollama.Model)
		}
		if cfg.Euron.Model != "gpt-4.1-nano" {
			t.Fatalf("euron model changed: %q", cfg.Euron.Model)
		}
	})

	t.Run("configured provider is kept", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Provider = ProviderAnthropic
		cfg.applyEnv(envMap(map[string]string{"EURON_API_TOKEN": "euri-key"}))
		if cfg.Provider != ProviderAnthropic {
			t.Fatalf("provider = %q, want anthropic", cfg.Provider)
		}
	})

	t.Run("nothing set", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.applyEnv(envMap(nil))
		if cfg.Provider != "" {
			t.Fatalf("provider = %q, want empty", cfg.Provider)
		}
	})
}

func TestConfig_SetBaseURLAndSchemaMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = ProviderEuron
	cfg.SetBaseURL("https://proxy.example/v1")
	cfg.SetSchemaMode(SchemaModeJSONObject)
	if cfg.Euron.BaseURL != "https://proxy.example/v1" {
		t.Fatalf("base URL = %q", cfg.Euron.BaseURL)
	}
	if cfg.Euron.SchemaMode != SchemaModeJSONObject {
		t.Fatalf("schema mode = %q", cfg.Euron.SchemaMode)
	}
}

func TestConfig_Model(t *testing.T) {
	cfg := DefaultConfig()
	for provider, want := range map[string]string{
		ProviderEuron:     "gpt-4.1-nano",
		ProviderOpenAI:    "gpt-4o-mini",
		ProviderOllama:    "gemma3n:e4b",
		ProviderAnthropic: "claude-haiku",
		ProviderMock:      "mock",
		"":                "",
	} {
		cfg.Provider = provider
		if got := cfg.Model(); got != want {
			t.Errorf("Model() for %q = %q, want %q", provider, got, want)
		}
	}

	cfg.Provider = ProviderGemini
	cfg.SetModel("gemini-pro")
	if cfg.Model() != "gemini-pro" {
		t.Errorf("SetModel not reflected: %q", cfg.Model())
	}
}

func TestLookupCost(t *testing.T) {
	if c := LookupCost("gpt-4.1-nano"); c == nil || c.InputPerMTok != 0.1 {
		t.Fatalf("unexpected cost for gpt-4.1-nano: %+v", c)
	}
	if c := LookupCost("openai/gpt-4.1-nano"); c == nil {
		t.Fatal("expected gateway-prefixed model to resolve")
	}
	if c := LookupCost("gemma3n:e4b"); c != nil {
		t.Fatalf("expected nil for local model, got %+v", c)
	}
	got := ModelCost{InputPerMTok: 1, OutputPerMTok: 2}.Cost(1_000_000, 500_000)
	if got != 2 {
		t.Fatalf("Cost() = %v, want 2", got)
	}
}

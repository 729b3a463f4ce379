package cmd

import (
	"context"
	"fmt"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/quizgen/internal/config"
	"github.com/abhisek/quizgen/internal/llm"
	"github.com/abhisek/quizgen/internal/quizgen"
	"github.com/abhisek/quizgen/internal/store"
	"github.com/abhisek/quizgen/internal/ui/theme"
)

var rootCmd = &cobra.Command{
	Use:           "quizgen",
	Short:         "Generate quiz questions with an LLM",
	Long:          "quizgen asks an LLM for multiple-choice and fill-in-the-blank questions on any topic and validates what comes back.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to config file (overrides QUIZGEN_CONFIG env var)")
	pf.String("db", "", "Path to SQLite request log (overrides QUIZGEN_DB env var)")
	pf.String("provider", "", "LLM provider: euron, openai, openrouter, ollama, anthropic, gemini, mock")
	pf.String("model", "", "Model ID or alias for the selected provider")

	rootCmd.AddCommand(mcqCmd)
	rootCmd.AddCommand(blankCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfigPath returns the config path using --config flag (highest
// priority), then QUIZGEN_CONFIG env var, then the default XDG path.
func resolveConfigPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		return config.ExpandPath(p), nil
	}
	return config.DefaultPath()
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := resolveConfigPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}
	return config.Load(path)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then QUIZGEN_DB env var, then the config file, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	flag, _ := cmd.Flags().GetString("db")
	return cfg.DBPath(flag)
}

// openStore opens the request log named by the flags and config.
func openStore(cmd *cobra.Command, cfg *config.Config) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// session bundles what a generating command needs.
type session struct {
	cfg       *config.Config
	llmConfig llm.Config
	generator *quizgen.QuestionGenerator
	store     *store.Store
}

func (s *session) Close() {
	if s.store != nil {
		s.store.Close()
	}
}

// newSession loads config, opens the request log and builds the generator.
// A request log that cannot be opened disables logging with a warning.
func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	provider, _ := cmd.Flags().GetString("provider")
	model, _ := cmd.Flags().GetString("model")
	lc := cfg.LLMConfig(config.Overrides{Provider: provider, Model: model})

	sess := &session{cfg: cfg, llmConfig: lc}

	var events store.EventRepo
	if st, err := openStore(cmd, cfg); err != nil {
		lipgloss.Fprintln(os.Stderr, theme.Warning.Render("warning: request log disabled: "+err.Error()))
	} else {
		sess.store = st
		events = st.EventRepo()
	}

	p, err := llm.NewProvider(cmd.Context(), lc, events)
	if err != nil {
		sess.Close()
		return nil, err
	}
	sess.generator = quizgen.New(p, cfg.GeneratorConfig())
	return sess, nil
}

// generateContext bounds a single generate call by the configured timeout.
func (s *session) generateContext(parent context.Context) (context.Context, context.CancelFunc) {
	if s.llmConfig.Timeout > 0 {
		return context.WithTimeout(parent, s.llmConfig.Timeout)
	}
	return context.WithCancel(parent)
}

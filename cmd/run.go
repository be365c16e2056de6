package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avinsharma/intervu/internal/app"
	"github.com/avinsharma/intervu/internal/config"
	"github.com/avinsharma/intervu/internal/evaluate"
	"github.com/avinsharma/intervu/internal/llm"
	"github.com/avinsharma/intervu/internal/logging"
	"github.com/avinsharma/intervu/internal/question"
	"github.com/avinsharma/intervu/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	configPath, err := config.DefaultPath()
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logPath, err := logging.DefaultLogPath()
	if err != nil {
		return fmt.Errorf("resolve log path: %w", err)
	}
	logger, err := logging.New(logPath)
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Interviews will run with canned questions and zero scores.")
		provider = llm.NewMockProvider()
	}

	generator := question.New(provider, question.DefaultConfig())
	evaluator := evaluate.New(provider)

	return app.Run(generator, evaluator, provider, st, cfg, logger)
}

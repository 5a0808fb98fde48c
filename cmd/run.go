package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	tui "github.com/abhisek/interviewprep/internal/app"
	"github.com/abhisek/interviewprep/internal/export"
	"github.com/abhisek/interviewprep/internal/logger"
	"github.com/abhisek/interviewprep/internal/session"
)

// runApp trains the model, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	config, err := getConfig()
	if err != nil {
		return fmt.Errorf("getting a config: %w", err)
	}

	// The TUI owns the terminal, so logs only go to --log-file.
	log, err := logger.New(logger.Options{
		JSON:  config.JSON,
		Debug: config.Debug,
		Path:  config.LogFile,
	})
	if err != nil {
		return fmt.Errorf("creating a logger: %w", err)
	}
	defer log.Sync()

	scorer, err := trainScorer(config, log)
	if err != nil {
		return err
	}

	responses := session.NewLog()
	log.Info("starting interviewprep",
		zap.String("version", version),
		zap.String("session", responses.ID()),
	)

	skipWelcome, _ := cmd.Flags().GetBool("no-welcome")
	err = tui.Run(tui.Options{
		Scorer:      scorer,
		Log:         responses,
		Exporter:    export.New(log),
		Logger:      log,
		SkipWelcome: skipWelcome,
	})

	log.Info("session finished",
		zap.String("session", responses.ID()),
		zap.Int("responses", responses.Len()),
	)
	return err
}

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	termcard "github.com/danielgatis/go-termcard"
)

var rootCmd = &cobra.Command{
	Use:   "termcard",
	Short: "Render a terminal-style GitHub profile card",
	Long: `termcard draws a fake terminal session running neofetch for a GitHub user.

It writes a still image (terminal.png) and a blinking-cursor animation
(terminal.gif) to the working directory. The profile is fetched from the
GitHub API; when that fails a built-in profile is used instead.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer logger.Sync()

		cfg := termcard.DefaultConfig()
		source := termcard.NewClient(
			termcard.WithBaseURL(cfg.APIBaseURL),
			termcard.WithTimeout(cfg.FetchTimeout),
			termcard.WithClientLogger(logger),
		)
		return run(cmd.Context(), afero.NewOsFs(), cmd.OutOrStdout(), cfg, source, logger)
	},
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, fs afero.Fs, out io.Writer, cfg termcard.Config, source termcard.ProfileSource, logger *zap.Logger) error {
	face, err := termcard.LoadFont(fs, cfg.FontPath, cfg.FontSize)
	if err != nil {
		return fmt.Errorf("load font %s: %w", cfg.FontPath, err)
	}
	defer face.Close()

	r := termcard.NewRenderer(cfg, face, termcard.WithLogger(logger))
	artifacts, err := r.Generate(ctx, fs, source)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Generated %s\n", artifacts.Still)
	fmt.Fprintf(out, "Generated %s\n", artifacts.Animation)
	return nil
}

// newLogger logs to stderr and stays quiet unless something goes wrong.
func newLogger() (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	config.DisableStacktrace = true

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

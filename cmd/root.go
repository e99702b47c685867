package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yarlson/go-progressbar/internal/config"
	"github.com/yarlson/go-progressbar/internal/termwidth"
	"github.com/yarlson/go-progressbar/pkg/progressbar"
)

var (
	cfgFile string
	verbose bool
)

// GetConfigFile returns the config file path from the flag.
func GetConfigFile() string {
	return cfgFile
}

// NewRootCmd creates the root command for the pbar CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pbar",
		Short: "Text progress bars for long-running terminal tasks",
		Long: `pbar draws a single-line progress indicator with a completion
percentage, a proportional bar and the estimated time remaining.

It can simulate a task, copy a file while showing the transfer rate, or
run a batch of tasks described in a YAML plan.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", fmt.Sprintf("config file (default: ./%s, then ~/.config/pbar/config.yaml)", config.DefaultConfigName))
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newCopyCmd())
	rootCmd.AddCommand(newBatchCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command, cancelling it on SIGINT or SIGTERM.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

func setupLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}

// settings bundles what every subcommand needs before drawing a bar.
type settings struct {
	Config  *config.Config
	Options []progressbar.Option
	Logger  *slog.Logger
}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	logger := setupLogger(cmd.ErrOrStderr())

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.LoadConfigWithFile(workDir, GetConfigFile())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	opts, err := cfg.Bar.Options()
	if err != nil {
		return nil, fmt.Errorf("invalid bar config: %w", err)
	}

	out := cmd.ErrOrStderr()
	logger.Debug("settings loaded",
		"config", GetConfigFile(),
		"terminal", termwidth.IsTerminal(out),
		"width", termwidth.Query(out),
	)

	return &settings{Config: cfg, Options: opts, Logger: logger}, nil
}

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/yarlson/go-progressbar/internal/jobs"
	"github.com/yarlson/go-progressbar/pkg/progressbar"
)

type runOptions struct {
	title   string
	total   int64
	delay   time.Duration
	reverse bool
}

func newRunCmd() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a simulated task",
		Long:  "Advance a progress bar one step at a time, waiting between steps.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.title, "title", "t", "run", "progress bar title")
	cmd.Flags().Int64VarP(&opts.total, "total", "n", 0, "number of steps (0 uses config)")
	cmd.Flags().DurationVarP(&opts.delay, "delay", "d", 0, "wait between steps (0 uses config)")
	cmd.Flags().BoolVarP(&opts.reverse, "reverse", "r", false, "empty the bar instead of filling it")

	return cmd
}

func runRun(cmd *cobra.Command, opts runOptions) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	total := s.Config.Demo.Total
	if cmd.Flags().Changed("total") {
		total = opts.total
	}
	if total < 0 {
		return fmt.Errorf("total cannot be negative: %d", total)
	}
	delay := s.Config.Demo.Delay
	if cmd.Flags().Changed("delay") {
		delay = opts.delay
	}

	barOpts := s.Options
	if opts.reverse {
		barOpts = append(barOpts, progressbar.WithStyle(progressbar.ReversedStyle()))
	}

	s.Logger.Debug("run started", "title", opts.title, "total", total, "delay", delay)

	ctx := cmd.Context()
	err = progressbar.Run(opts.title, total, cmd.ErrOrStderr(), func(b *progressbar.Bar) error {
		for i := int64(0); i < total; i++ {
			if err := jobs.Sleep(ctx, delay); err != nil {
				return err
			}
			if err := b.Inc(1); err != nil {
				return err
			}
		}
		return nil
	}, barOpts...)
	if err != nil {
		if ctx.Err() != nil {
			s.Logger.Info("run interrupted")
		}
		return fmt.Errorf("run failed: %w", err)
	}

	s.Logger.Debug("run finished", "title", opts.title)
	return nil
}

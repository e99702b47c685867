package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yarlson/go-progressbar/internal/jobs"
	"github.com/yarlson/go-progressbar/internal/reporter"
)

func newBatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch PLAN",
		Short: "Run the jobs of a YAML plan",
		Long: `Run every job listed in a YAML plan file, one progress bar per job.

Example plan:

  jobs:
    - title: download
      total: 200
      delay: 20ms
      style: transfer
    - title: cleanup
      total: 50
      style: reversed`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, args[0])
		},
	}
}

func runBatch(cmd *cobra.Command, planPath string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	plan, err := jobs.Load(planPath)
	if err != nil {
		return err
	}

	runner := jobs.NewRunner(cmd.ErrOrStderr(), s.Logger, s.Options...)
	results, err := runner.Run(cmd.Context(), plan)
	_, _ = fmt.Fprint(cmd.OutOrStdout(), reporter.FormatBatchReport(results))
	if err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}

	return nil
}

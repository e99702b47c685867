package jobs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/yarlson/go-progressbar/pkg/progressbar"
)

// Result describes one finished job.
type Result struct {
	RunID    string
	Title    string
	Steps    int64
	Duration time.Duration
}

// Runner executes plans, drawing one progress bar per job on Out.
type Runner struct {
	Out     io.Writer
	Logger  *slog.Logger
	Options []progressbar.Option

	// sleep waits between steps; replaced in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewRunner creates a runner writing bars to out.
func NewRunner(out io.Writer, logger *slog.Logger, opts ...progressbar.Option) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{
		Out:     out,
		Logger:  logger,
		Options: opts,
		sleep:   Sleep,
	}
}

// Run executes the jobs of plan in order and stops at the first failure.
func (r *Runner) Run(ctx context.Context, plan *Plan) ([]Result, error) {
	results := make([]Result, 0, len(plan.Jobs))
	for _, job := range plan.Jobs {
		result, err := r.runJob(ctx, job)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}

func (r *Runner) runJob(ctx context.Context, job Job) (Result, error) {
	style, err := job.BarStyle()
	if err != nil {
		return Result{}, err
	}

	runID := NewRunID()
	logger := r.Logger.With("run_id", runID, "job", job.Title)
	logger.Debug("job started", "total", job.Total, "delay", job.Delay, "style", job.Style)

	start := time.Now()
	opts := append(append([]progressbar.Option{}, r.Options...), progressbar.WithStyle(style))
	err = progressbar.Run(job.Title, job.Total, r.Out, func(b *progressbar.Bar) error {
		for i := int64(0); i < job.Total; i++ {
			if err := r.sleep(ctx, job.Delay); err != nil {
				return err
			}
			if err := b.Inc(1); err != nil {
				return err
			}
		}
		return nil
	}, opts...)
	duration := time.Since(start)

	if err != nil {
		logger.Warn("job failed", "error", err, "duration", duration)
		return Result{}, fmt.Errorf("job %q: %w", job.Title, err)
	}
	logger.Info("job finished", "steps", job.Total, "duration", duration)

	return Result{
		RunID:    runID,
		Title:    job.Title,
		Steps:    job.Total,
		Duration: duration,
	}, nil
}

// Sleep waits for d or until ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

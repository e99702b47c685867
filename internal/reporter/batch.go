// Package reporter formats summaries of completed progress-tracked runs.
package reporter

import (
	"fmt"
	"strings"
	"time"

	"github.com/yarlson/go-progressbar/internal/jobs"
)

// FormatBatchReport formats the results of a batch run for CLI display.
func FormatBatchReport(results []jobs.Result) string {
	var sb strings.Builder

	sb.WriteString("# Batch Report\n\n")

	var total time.Duration
	var steps int64
	for _, r := range results {
		total += r.Duration
		steps += r.Steps
	}

	sb.WriteString("## Summary\n\n")
	_, _ = fmt.Fprintf(&sb, "- **Jobs:** %d\n", len(results))
	_, _ = fmt.Fprintf(&sb, "- **Steps:** %d\n", steps)
	if total > 0 {
		_, _ = fmt.Fprintf(&sb, "- **Duration:** %s\n", formatDuration(total))
	}
	sb.WriteString("\n")

	sb.WriteString("## Jobs\n\n")
	if len(results) == 0 {
		sb.WriteString("No jobs completed.\n")
		return sb.String()
	}
	for _, r := range results {
		_, _ = fmt.Fprintf(&sb, "- [x] %s (`%s`) %d steps in %s\n", r.Title, r.RunID, r.Steps, formatDuration(r.Duration))
	}

	return sb.String()
}

// formatDuration formats a duration for display.
func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.0f seconds", d.Seconds())
	}
	if d < time.Hour {
		return fmt.Sprintf("%.1f minutes", d.Minutes())
	}
	return fmt.Sprintf("%.1f hours", d.Hours())
}

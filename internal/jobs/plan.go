// Package jobs loads and runs batch plans: ordered lists of simulated tasks
// that are each tracked by their own progress bar.
package jobs

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/yarlson/go-progressbar/pkg/progressbar"
)

// ErrValidation is returned when a plan fails validation.
var ErrValidation = errors.New("plan validation failed")

// Style names accepted in a plan.
const (
	StyleDefault  = "default"
	StyleReversed = "reversed"
	StyleTransfer = "transfer"
)

// Job is a single tracked task in a plan.
type Job struct {
	Title string        `yaml:"title"`
	Total int64         `yaml:"total"`
	Delay time.Duration `yaml:"delay,omitempty"`
	Style string        `yaml:"style,omitempty"`
}

// Plan is the structure of a plan YAML file.
type Plan struct {
	Jobs []Job `yaml:"jobs"`
}

// Load reads and validates a plan file.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a plan.
func Parse(data []byte) (*Plan, error) {
	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse plan: %w", err)
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return &plan, nil
}

// Validate checks every job and reports all problems at once.
func (p *Plan) Validate() error {
	if len(p.Jobs) == 0 {
		return fmt.Errorf("%w: no jobs", ErrValidation)
	}

	var problems []string
	for i, job := range p.Jobs {
		name := fmt.Sprintf("job %d", i+1)
		if job.Title != "" {
			name = fmt.Sprintf("job %d (%s)", i+1, job.Title)
		}
		if strings.TrimSpace(job.Title) == "" {
			problems = append(problems, name+": title is required")
		}
		if job.Total < 0 {
			problems = append(problems, name+": total cannot be negative")
		}
		if job.Delay < 0 {
			problems = append(problems, name+": delay cannot be negative")
		}
		if _, err := job.BarStyle(); err != nil {
			problems = append(problems, name+": "+err.Error())
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %d errors:\n%s", ErrValidation, len(problems), strings.Join(problems, "\n"))
	}
	return nil
}

// BarStyle returns the progress bar style named by the job.
func (j Job) BarStyle() (progressbar.Style, error) {
	switch strings.ToLower(j.Style) {
	case "", StyleDefault:
		return progressbar.DefaultStyle(), nil
	case StyleReversed:
		return progressbar.ReversedStyle(), nil
	case StyleTransfer:
		return progressbar.FileTransferStyle(), nil
	default:
		return progressbar.Style{}, fmt.Errorf("unknown style %q", j.Style)
	}
}

// NewRunID generates a short identifier for one job run.
func NewRunID() string {
	return uuid.New().String()[:8]
}

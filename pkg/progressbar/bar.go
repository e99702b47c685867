package progressbar

import (
	"fmt"
	"io"
	"math"
	"math/bits"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/yarlson/go-progressbar/internal/termwidth"
)

// Defaults applied by New.
const (
	DefaultBarMark        = 'o'
	DefaultMinTitleWidth  = 14
	DefaultDisplayWidth   = 80
	DefaultRedrawInterval = time.Second
)

// Bar tracks the position of a single operation and renders it to an
// output stream.
type Bar struct {
	title string
	total int64
	out   io.Writer

	current            int64
	previous           int64
	currentPercentage  int
	previousPercentage int
	finished           bool

	startTime    time.Time
	previousTime time.Time

	// displayWidth is the bar's drawable width in columns. Only the width
	// negotiation in show changes it.
	displayWidth  int
	titleWidth    int
	minTitleWidth int
	barMark       rune
	format        string
	fields        []Field
	style         Style

	now            func() time.Time
	width          func() int
	redrawInterval time.Duration

	// frozen pins the clock while a line is rendered so every field of
	// that line sees the same instant.
	frozen time.Time
	// passes is the number of renders used by the most recent redraw.
	passes int
}

// Option configures a Bar.
type Option func(b *Bar)

// WithBarMark sets the character used to fill the bar.
func WithBarMark(mark rune) Option {
	return func(b *Bar) {
		b.barMark = mark
	}
}

// WithFormat sets the line template and the fields substituted into it.
// The template must carry one %s verb per field.
func WithFormat(format string, fields ...Field) Option {
	return func(b *Bar) {
		b.format = format
		b.fields = fields
	}
}

// WithStyle sets the fill direction and stat field of the bar.
func WithStyle(s Style) Option {
	return func(b *Bar) {
		b.style = s.withDefaults()
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(b *Bar) {
		b.now = now
	}
}

// WithWidthFunc replaces the terminal width query.
func WithWidthFunc(width func() int) Option {
	return func(b *Bar) {
		b.width = width
	}
}

// WithRedrawInterval sets how long the bar waits before redrawing when the
// percentage did not change.
func WithRedrawInterval(d time.Duration) Option {
	return func(b *Bar) {
		b.redrawInterval = d
	}
}

// WithMinTitleWidth sets the minimum number of columns reserved for the
// title field.
func WithMinTitleWidth(n int) Option {
	return func(b *Bar) {
		b.minTitleWidth = n
	}
}

// WithDisplayWidth sets the initial bar width before it is fitted to the
// terminal.
func WithDisplayWidth(n int) Option {
	return func(b *Bar) {
		if n >= 0 {
			b.displayWidth = n
		}
	}
}

// New clears the current line of out, draws the empty bar and returns it.
func New(title string, total int64, out io.Writer, opts ...Option) (*Bar, error) {
	if total < 0 {
		return nil, fmt.Errorf("%w: negative total %d", ErrInvalidArgument, total)
	}

	b := &Bar{
		title:          title,
		total:          total,
		out:            out,
		displayWidth:   DefaultDisplayWidth,
		minTitleWidth:  DefaultMinTitleWidth,
		barMark:        DefaultBarMark,
		fields:         DefaultFields(),
		style:          DefaultStyle(),
		now:            time.Now,
		redrawInterval: DefaultRedrawInterval,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.width == nil {
		b.width = termwidth.Func(out)
	}

	b.titleWidth = max(b.minTitleWidth, runewidth.StringWidth(title)+1)
	if b.format == "" {
		b.format = DefaultFormat
	}
	b.startTime = b.now()
	b.previousTime = b.startTime
	b.updatePosition()

	if err := b.Clear(); err != nil {
		return nil, err
	}
	if err := b.show(); err != nil {
		return nil, err
	}
	return b, nil
}

// Title returns the bar title.
func (b *Bar) Title() string { return b.title }

// Total returns the target count.
func (b *Bar) Total() int64 { return b.total }

// Current returns the current position.
func (b *Bar) Current() int64 { return b.current }

// Percentage returns the completion percentage from 0 to 100.
func (b *Bar) Percentage() int { return b.currentPercentage }

// Finished reports whether Finish or Halt has been called.
func (b *Bar) Finished() bool { return b.finished }

// StartTime returns when the bar was created.
func (b *Bar) StartTime() time.Time { return b.startTime }

// SetBarMark changes the fill character for subsequent redraws.
func (b *Bar) SetBarMark(mark rune) {
	b.barMark = mark
}

// SetFormat changes the line template and fields for subsequent redraws.
func (b *Bar) SetFormat(format string, fields ...Field) {
	b.format = format
	b.fields = fields
}

// String implements fmt.Stringer.
func (b *Bar) String() string {
	return fmt.Sprintf("(ProgressBar: %d/%d)", b.current, b.total)
}

// Inc advances the position by step. The position never goes past the total
// or below zero; overshoot is clamped silently.
func (b *Bar) Inc(step int64) error {
	if b.finished {
		return fmt.Errorf("%w: progress bar already finished", ErrInvalidState)
	}
	b.current += step
	if b.current > b.total {
		b.current = b.total
	}
	if b.current < 0 {
		b.current = 0
	}
	b.updatePosition()
	err := b.showIfNeeded()
	b.previous = b.current
	return err
}

// Set moves the position to n, which must lie within [0, total].
func (b *Bar) Set(n int64) error {
	if b.finished {
		return fmt.Errorf("%w: progress bar already finished", ErrInvalidState)
	}
	if n < 0 || n > b.total {
		return fmt.Errorf("%w: invalid count %d (total: %d)", ErrInvalidArgument, n, b.total)
	}
	b.current = n
	b.updatePosition()
	err := b.showIfNeeded()
	b.previous = b.current
	return err
}

// Finish moves the position to the total and halts the bar. A bar is
// meant to be finished once.
func (b *Bar) Finish() error {
	b.current = b.total
	return b.Halt()
}

// Halt stops the bar where it is and draws the final line, which shows the
// elapsed time and ends with a newline.
func (b *Bar) Halt() error {
	b.finished = true
	b.updatePosition()
	return b.show()
}

// Elapsed returns the time since the bar was created.
func (b *Bar) Elapsed() time.Duration {
	return b.clock().Sub(b.startTime)
}

// ETA estimates the time remaining until the position reaches the total.
// It reports false while nothing has been done yet. Estimates beyond the
// range of time.Duration saturate at its maximum.
func (b *Bar) ETA() (time.Duration, bool) {
	if b.current == 0 {
		return 0, false
	}
	elapsed := b.Elapsed().Seconds()
	eta := (elapsed*float64(b.total)/float64(b.current) - elapsed) * float64(time.Second)
	switch {
	case eta >= math.MaxInt64:
		return time.Duration(math.MaxInt64), true
	case eta < 0:
		return 0, true
	}
	return time.Duration(eta), true
}

func (b *Bar) clock() time.Time {
	if !b.frozen.IsZero() {
		return b.frozen
	}
	return b.now()
}

func (b *Bar) updatePosition() {
	if b.total == 0 {
		b.currentPercentage = 100
		b.previousPercentage = 0
		return
	}
	b.currentPercentage = percentage(b.current, b.total)
	b.previousPercentage = percentage(b.previous, b.total)
}

// percentage returns floor(n*100/total) without overflowing for any
// 0 <= n <= total.
func percentage(n, total int64) int {
	hi, lo := bits.Mul64(uint64(n), 100)
	q, _ := bits.Div64(hi, lo, uint64(total))
	return int(q)
}

func (b *Bar) showIfNeeded() error {
	// != rather than > so a lower Set still redraws.
	if b.currentPercentage != b.previousPercentage ||
		b.now().Sub(b.previousTime) >= b.redrawInterval ||
		b.finished {
		return b.show()
	}
	return nil
}

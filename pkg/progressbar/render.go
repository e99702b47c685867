package progressbar

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/yarlson/go-progressbar/internal/units"
)

// Field names a value substituted into the line format.
type Field int

const (
	FieldTitle Field = iota
	FieldPercentage
	FieldBar
	FieldStat
	FieldETA
	FieldElapsed
	FieldBytes
	FieldRate
)

// DefaultFormat is the line template used with DefaultFields.
const DefaultFormat = "%s %3s%% %s %s"

// maxRenderPasses bounds width negotiation. Two passes suffice when the
// line grows one column per bar column; wide fill characters break that.
const maxRenderPasses = 4

var fieldNames = map[Field]string{
	FieldTitle:      "title",
	FieldPercentage: "percentage",
	FieldBar:        "bar",
	FieldStat:       "stat",
	FieldETA:        "eta",
	FieldElapsed:    "elapsed",
	FieldBytes:      "bytes",
	FieldRate:       "rate",
}

var fieldFormatters = map[Field]func(b *Bar) string{
	FieldTitle:      (*Bar).fmtTitle,
	FieldPercentage: (*Bar).fmtPercentage,
	FieldBar:        (*Bar).fmtBar,
	FieldStat:       func(b *Bar) string { return b.style.Stat(b) },
	FieldETA:        (*Bar).fmtETA,
	FieldElapsed:    (*Bar).fmtElapsed,
	FieldBytes:      (*Bar).fmtBytes,
	FieldRate:       (*Bar).fmtRate,
}

// DefaultFields returns the fields of DefaultFormat in order.
func DefaultFields() []Field {
	return []Field{FieldTitle, FieldPercentage, FieldBar, FieldStat}
}

func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return "Field(" + strconv.Itoa(int(f)) + ")"
}

// ParseField returns the field with the given name.
func ParseField(name string) (Field, error) {
	for f, n := range fieldNames {
		if n == strings.ToLower(strings.TrimSpace(name)) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown field %q", ErrInvalidArgument, name)
}

// TimeStat shows the elapsed time once the bar is finished and the
// estimated time remaining before that.
func TimeStat(b *Bar) string {
	if b.finished {
		return b.fmtElapsed()
	}
	return b.fmtETA()
}

// TransferStat treats positions as bytes and shows the amount transferred
// and the average rate ahead of TimeStat.
func TransferStat(b *Bar) string {
	return fmt.Sprintf("%s %s %s", b.fmtBytes(), b.fmtRate(), TimeStat(b))
}

func (b *Bar) fmtTitle() string {
	title := runewidth.Truncate(b.title, b.titleWidth-1, "") + ":"
	return runewidth.FillRight(title, b.titleWidth)
}

func (b *Bar) fmtPercentage() string {
	return strconv.Itoa(b.currentPercentage)
}

func (b *Bar) fmtBar() string {
	fill := b.style.Fill(b.currentPercentage) * b.displayWidth / 100
	fill = min(max(fill, 0), b.displayWidth)
	return "|" + strings.Repeat(string(b.barMark), fill) + strings.Repeat(" ", b.displayWidth-fill) + "|"
}

func (b *Bar) fmtETA() string {
	eta, ok := b.ETA()
	if !ok {
		return "ETA:  --:--:--"
	}
	return "ETA:  " + units.FormatClock(eta)
}

func (b *Bar) fmtElapsed() string {
	return "Time: " + units.FormatClock(b.Elapsed())
}

func (b *Bar) fmtBytes() string {
	return units.FormatBytes(float64(b.current))
}

func (b *Bar) fmtRate() string {
	var rate float64
	if elapsed := b.Elapsed().Seconds(); elapsed > 0 {
		rate = float64(b.current) / elapsed
	}
	return units.FormatBytes(rate) + "/s"
}

func (b *Bar) render() string {
	args := make([]any, len(b.fields))
	for i, f := range b.fields {
		if format, ok := fieldFormatters[f]; ok {
			args[i] = format(b)
		} else {
			args[i] = ""
		}
	}
	return fmt.Sprintf(b.format, args...)
}

// show renders the line and writes it. The bar is resized until the line
// occupies exactly one column less than the terminal; a line that does not
// fit even with an empty bar is written as is.
func (b *Bar) show() error {
	b.frozen = b.now()
	defer func() { b.frozen = time.Time{} }()

	width := b.width()
	line := b.render()
	b.passes = 1
	for b.passes < maxRenderPasses {
		n := runewidth.StringWidth(line)
		if n == width-1 {
			break
		}
		if n >= width {
			if b.displayWidth == 0 {
				break
			}
			b.displayWidth = max(b.displayWidth-(n-width+1), 0)
		} else {
			b.displayWidth += width - 1 - n
		}
		line = b.render()
		b.passes++
	}

	if err := b.write(line + b.eol()); err != nil {
		return err
	}
	b.previousTime = b.frozen
	return nil
}

func (b *Bar) eol() string {
	if b.finished {
		return "\n"
	}
	return "\r"
}

// Clear blanks the current line without advancing it.
func (b *Bar) Clear() error {
	blank := max(b.width()-1, 0)
	return b.write("\r" + strings.Repeat(" ", blank) + "\r")
}

type flusher interface {
	Flush() error
}

func (b *Bar) write(s string) error {
	if _, err := io.WriteString(b.out, s); err != nil {
		return fmt.Errorf("write progress line: %w", err)
	}
	if f, ok := b.out.(flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("flush progress line: %w", err)
		}
	}
	return nil
}

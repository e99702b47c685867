package progressbar

import "io"

// Run creates a bar, hands it to fn and finishes it when fn returns. If fn
// fails the bar is halted where it stopped and the error is returned.
func Run(title string, total int64, out io.Writer, fn func(b *Bar) error, opts ...Option) error {
	b, err := New(title, total, out, opts...)
	if err != nil {
		return err
	}

	if err := fn(b); err != nil {
		if !b.finished {
			_ = b.Halt()
		}
		return err
	}
	if b.finished {
		return nil
	}
	return b.Finish()
}

// ForEach calls fn for every item and advances a bar titled title once per
// item. It stops at the first error.
func ForEach[T any](items []T, title string, out io.Writer, fn func(item T) error, opts ...Option) error {
	return Run(title, int64(len(items)), out, func(b *Bar) error {
		for _, item := range items {
			if err := fn(item); err != nil {
				return err
			}
			if err := b.Inc(1); err != nil {
				return err
			}
		}
		return nil
	}, opts...)
}

// Writer advances a bar by the number of bytes written through it, so that
// io.Copy can drive a file transfer bar.
type Writer struct {
	bar *Bar
}

// NewWriter returns a Writer that advances b.
func NewWriter(b *Bar) *Writer {
	return &Writer{bar: b}
}

// Write implements io.Writer. The bytes themselves are discarded.
func (w *Writer) Write(p []byte) (int, error) {
	if err := w.bar.Inc(int64(len(p))); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Package units formats byte quantities and durations for progress display.
package units

import (
	"fmt"
	"time"
)

// Byte scale thresholds. The KB and MB scales switch over at 1000 of the
// lower unit so the number never needs more than three integer digits.
const (
	KB = 1024
	MB = KB * 1024
	GB = MB * 1024

	kbLimit = KB * 1000
	mbLimit = MB * 1000
)

// FormatBytes returns a fixed-width, human-readable byte count.
//
// Example: FormatBytes(2048) returns "  2.0KB"
func FormatBytes(b float64) string {
	switch {
	case b < KB:
		return fmt.Sprintf("%6dB", int64(b))
	case b < kbLimit:
		return fmt.Sprintf("%5.1fKB", b/KB)
	case b < mbLimit:
		return fmt.Sprintf("%5.1fMB", b/MB)
	default:
		return fmt.Sprintf("%5.1fGB", b/GB)
	}
}

// FormatClock formats d as HH:MM:SS. Hours are not wrapped at 24.
// Fractional seconds are truncated and negative durations render as zero.
func FormatClock(d time.Duration) string {
	t := int64(d / time.Second)
	if t < 0 {
		t = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", t/3600, (t/60)%60, t%60)
}

package progressbar

// StatFunc renders the trailing stat field of a line.
type StatFunc func(b *Bar) string

// Style decides how the percentage maps to filled bar columns and what the
// stat field shows. Nil members fall back to the default style.
type Style struct {
	// Fill maps the completion percentage to the percentage of the bar
	// that is filled.
	Fill func(percentage int) int

	// Stat renders the stat field.
	Stat StatFunc
}

func forward(percentage int) int {
	return percentage
}

func backward(percentage int) int {
	return 100 - percentage
}

// DefaultStyle fills the bar left to right and shows the ETA, or the
// elapsed time once finished.
func DefaultStyle() Style {
	return Style{Fill: forward, Stat: TimeStat}
}

// ReversedStyle empties the bar as progress is made.
func ReversedStyle() Style {
	return Style{Fill: backward, Stat: TimeStat}
}

// FileTransferStyle shows transferred bytes and the transfer rate. Positions
// and the total are taken to be byte counts.
func FileTransferStyle() Style {
	return Style{Fill: forward, Stat: TransferStat}
}

func (s Style) withDefaults() Style {
	if s.Fill == nil {
		s.Fill = forward
	}
	if s.Stat == nil {
		s.Stat = TimeStat
	}
	return s
}

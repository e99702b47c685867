// Package progressbar renders a single-line, live-updating text progress
// indicator for long-running loops and transfers.
//
// # Usage
//
//	bar, err := progressbar.New("test", 100, os.Stderr)
//	if err != nil {
//	    return err
//	}
//	for i := 0; i < 100; i++ {
//	    work(i)
//	    if err := bar.Inc(1); err != nil {
//	        return err
//	    }
//	}
//	return bar.Finish()
//
// # Output Format
//
//	test:          100% |oooooooooooooooooooooooooooooooooooooooo| Time: 00:00:10
//	test:           67% |oooooooooooooooooooooooooo              | ETA:  00:00:03
//
// The line is redrawn in place with a carriage return when the integer
// percentage changes or at least one second passed since the last redraw.
// The bar width adapts to the terminal so the line fills all but the last
// column. Finish and Halt always redraw and end the line with a newline.
//
// A Bar is not safe for concurrent use; drive it from one loop.
package progressbar

// Package progress renders a live, single-line progress bar for transfers
// with a known total.
//
// Each redraw starts with a carriage return so the terminal line is
// overwritten in place. Redraws are throttled to changes of the integer
// percentage, so a transfer produces at most 101 of them regardless of how
// many chunks it moves.
//
// # Usage
//
//	bar, err := progress.NewBar(progress.Options{
//	    Total:  totalBytes,
//	    Prefix: "Copying: ",
//	})
//	if err != nil {
//	    return err
//	}
//
//	bar.Update(written)
//	// ...
//	bar.Finish()
//
// # Output Format
//
//	\rCopying: [█████████████████████████-------------------------]  50%
//
// Finish completes the bar at 100% and terminates the line with a newline.
package progress

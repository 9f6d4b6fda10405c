package progress

import (
	"errors"
	"fmt"
	"io"
	"math/bits"
	"os"
	"strings"
	"sync"
)

// ErrInvalidConfiguration is returned by NewBar when the options cannot
// describe a bar, most commonly a non-positive total.
var ErrInvalidConfiguration = errors.New("progress: invalid configuration")

const (
	// DefaultWidth is the number of bar columns used when Options.Width is zero.
	DefaultWidth = 50

	// DefaultFill is the glyph for the completed portion of the bar.
	DefaultFill = '█'

	// DefaultEmpty is the glyph for the remaining portion of the bar.
	DefaultEmpty = '-'
)

// Options configures a progress bar.
type Options struct {
	// Total is the value that corresponds to 100%. Must be positive.
	Total int64

	// Width is the number of columns between the brackets.
	// Default: 50
	Width int

	// Fill is the glyph for the completed portion.
	// Default: '█'
	Fill rune

	// Empty is the glyph for the remaining portion.
	// Default: '-'
	Empty rune

	// Prefix is printed before the opening bracket.
	Prefix string

	// Output is where the bar is drawn.
	// Default: os.Stdout
	Output io.Writer
}

// Bar draws a throttled progress bar. Only the integer percentage is
// tracked, so updates that do not move it produce no output.
type Bar struct {
	opts Options

	mu   sync.Mutex
	last int // -1 until the first redraw
}

// NewBar creates a progress bar. Nothing is written until the first Update.
func NewBar(opts Options) (*Bar, error) {
	if opts.Total <= 0 {
		return nil, fmt.Errorf("%w: total must be greater than zero, got %d", ErrInvalidConfiguration, opts.Total)
	}
	if opts.Width < 0 {
		return nil, fmt.Errorf("%w: width must not be negative, got %d", ErrInvalidConfiguration, opts.Width)
	}
	if opts.Width == 0 {
		opts.Width = DefaultWidth
	}
	if opts.Fill == 0 {
		opts.Fill = DefaultFill
	}
	if opts.Empty == 0 {
		opts.Empty = DefaultEmpty
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Bar{
		opts: opts,
		last: -1,
	}, nil
}

// Total returns the value the bar treats as 100%.
func (b *Bar) Total() int64 {
	return b.opts.Total
}

// Update redraws the bar for current if the integer percentage changed.
// Values outside [0, Total] are clamped.
func (b *Bar) Update(current int64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	percent := Percent(current, b.opts.Total)
	if percent == b.last {
		return
	}
	b.last = percent

	fmt.Fprintf(b.opts.Output, "\r%s[%s] %3d%%", b.opts.Prefix, b.render(percent), percent)
}

// Finish draws the bar at 100% and ends the line.
func (b *Bar) Finish() {
	b.Update(b.opts.Total)

	b.mu.Lock()
	defer b.mu.Unlock()
	fmt.Fprintln(b.opts.Output)
}

// render builds the bracketed portion of the bar for percent.
func (b *Bar) render(percent int) string {
	filled := b.opts.Width * percent / 100

	var sb strings.Builder
	sb.Grow(b.opts.Width * 3)
	for i := 0; i < filled; i++ {
		sb.WriteRune(b.opts.Fill)
	}
	for i := filled; i < b.opts.Width; i++ {
		sb.WriteRune(b.opts.Empty)
	}
	return sb.String()
}

// Percent returns floor(current*100/total) with current clamped to
// [0, total]. The product is computed in 128 bits, so any positive int64
// total is safe. Percent returns 0 when total is not positive.
func Percent(current, total int64) int {
	if total <= 0 {
		return 0
	}
	if current < 0 {
		current = 0
	}
	if current > total {
		current = total
	}

	hi, lo := bits.Mul64(uint64(current), 100)
	// hi < total because current <= total, so the quotient fits in 64 bits.
	q, _ := bits.Div64(hi, lo, uint64(total))
	return int(q)
}

package progress

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// FormatBytes formats b using IEC units, e.g. "1.5 KiB" or "256 MiB".
func FormatBytes(b int64) string {
	if b < 0 {
		return "-" + humanize.IBytes(uint64(-b))
	}
	return humanize.IBytes(uint64(b))
}

// ParseBytes parses a human-readable byte string such as "8KiB" or "256MB".
// IEC suffixes (KiB, MiB, ...) are powers of 1024; SI suffixes (KB, MB, ...)
// are powers of 1000. A bare number is a byte count.
func ParseBytes(s string) (int64, error) {
	n, err := humanize.ParseBytes(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid byte string %q: %w", s, err)
	}
	if n > math.MaxInt64 {
		return 0, fmt.Errorf("invalid byte string %q: value overflows int64", s)
	}
	return int64(n), nil
}

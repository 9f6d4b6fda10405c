package transfer

import (
	"errors"
	"fmt"
)

// ErrSourceNotFound is returned when the source of a transfer does not exist.
var ErrSourceNotFound = errors.New("transfer: source not found")

// IOError records a read, write, open or close failure during a transfer.
//
// Use errors.As to extract it; Err holds the underlying error.
type IOError struct {
	Op   string // "stat", "open", "create", "read", "write", "close"
	Path string // file path or object key, empty for anonymous streams
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("transfer: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("transfer: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

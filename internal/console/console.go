// Package console prepares the process's standard output for progress
// rendering. Call Init once at process start, before the first bar is drawn.
package console

import "sync"

var once sync.Once

// Init switches the terminal attached to standard output to UTF-8 so the
// bar glyphs render correctly. It is safe to call more than once; only the
// first call has an effect.
func Init() {
	once.Do(initOutput)
}

//go:build !windows

package console

// Terminals outside Windows take UTF-8 as written.
func initOutput() {}

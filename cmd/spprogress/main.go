package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ligustah/spprogress/internal/console"
	"github.com/ligustah/spprogress/internal/downloader"
	sphttp "github.com/ligustah/spprogress/internal/http"
	"github.com/ligustah/spprogress/internal/progress"
	"github.com/ligustah/spprogress/internal/transfer"
)

// Exit codes
const (
	ExitSuccess              = 0
	ExitGeneralError         = 1
	ExitInvalidArgs          = 2
	ExitSourceNotFound       = 3
	ExitHTTPError            = 4
	ExitMissingContentLength = 5
	ExitStorageError         = 6
	ExitIOError              = 7
	ExitInvalidConfiguration = 8
)

func main() {
	console.Init()

	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\n[spprogress] Received interrupt, shutting down...")
		cancel()
	}()

	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	out := &lineWriter{w: stdout}

	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err != nil {
		// A failed transfer leaves the bar without its newline.
		if out.open {
			fmt.Fprintln(stdout)
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if ctx.Err() != nil {
			fmt.Fprintln(stderr, "[spprogress] Transfer interrupted, destination may be incomplete")
		}
	}
	return exitCode(err)
}

// lineWriter tracks whether the last byte written ended a line.
type lineWriter struct {
	w    io.Writer
	open bool
}

func (lw *lineWriter) Write(p []byte) (int, error) {
	n, err := lw.w.Write(p)
	if n > 0 {
		lw.open = p[n-1] != '\n'
	}
	return n, err
}

// usageError marks errors caused by how the command was invoked.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// storageError marks failures to reach a bucket.
type storageError struct {
	err error
}

func (e storageError) Error() string { return e.err.Error() }
func (e storageError) Unwrap() error { return e.err }

func exitCode(err error) int {
	var (
		usageErr   usageError
		storageErr storageError
		ioErr      *transfer.IOError
	)

	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &usageErr):
		return ExitInvalidArgs
	case errors.Is(err, transfer.ErrSourceNotFound):
		return ExitSourceNotFound
	case errors.Is(err, sphttp.ErrStatus):
		return ExitHTTPError
	case errors.Is(err, downloader.ErrMissingContentLength):
		return ExitMissingContentLength
	case errors.Is(err, progress.ErrInvalidConfiguration):
		return ExitInvalidConfiguration
	case errors.As(err, &storageErr):
		return ExitStorageError
	case errors.As(err, &ioErr):
		return ExitIOError
	default:
		return ExitGeneralError
	}
}

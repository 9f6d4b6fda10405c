package transfer

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ligustah/spprogress/internal/progress"
)

// DefaultChunkSize is the read size used when Options.ChunkSize is zero.
const DefaultChunkSize = 8192

// Renderer receives the cumulative byte count after every chunk and a
// final Finish once the source is exhausted. *progress.Bar implements it.
type Renderer interface {
	Update(current int64)
	Finish()
}

// SizedReader is a source whose total length is known before reading.
type SizedReader interface {
	io.Reader
	Size() int64
}

// Options configures a transfer.
type Options struct {
	// ChunkSize is the size of each read.
	// Default: 8192
	ChunkSize int

	// Bar configures the progress bar. Total is taken from the source.
	// An empty Prefix is replaced by the variant's default label.
	Bar progress.Options

	// NewRenderer overrides the progress bar. It is called once with the
	// source size.
	NewRenderer func(total int64) (Renderer, error)
}

func (o Options) withPrefix(prefix string) Options {
	if o.Bar.Prefix == "" {
		o.Bar.Prefix = prefix
	}
	return o
}

func (o Options) renderer(total int64) (Renderer, error) {
	if o.NewRenderer != nil {
		return o.NewRenderer(total)
	}
	bar := o.Bar
	bar.Total = total
	return progress.NewBar(bar)
}

// Stream copies src to dst in chunks of chunkSize bytes, calling r.Update
// with the running total after each chunk and r.Finish once src returns
// io.EOF. It returns the number of bytes written.
//
// A failed read or write returns an *IOError and Finish is not called.
// The context is checked before every read.
func Stream(ctx context.Context, src io.Reader, dst io.Writer, chunkSize int, r Renderer) (int64, error) {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	buf := make([]byte, chunkSize)
	var written int64

	for {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		n, readErr := src.Read(buf)
		if n > 0 {
			nw, writeErr := dst.Write(buf[:n])
			if writeErr == nil && nw != n {
				writeErr = io.ErrShortWrite
			}
			written += int64(nw)
			if writeErr != nil {
				return written, &IOError{Op: "write", Err: writeErr}
			}
			r.Update(written)
		}
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return written, &IOError{Op: "read", Err: readErr}
		}
	}

	r.Finish()
	return written, nil
}

// OpenSink creates the destination of a transfer. Run calls it only after
// the renderer has been created, so a transfer rejected up front leaves no
// destination behind.
type OpenSink func() (io.WriteCloser, error)

// aborter is implemented by sinks that can discard a partial destination
// instead of committing it on Close.
type aborter interface {
	Abort() error
}

// Run streams src into the sink returned by open, drawing progress against
// src.Size(). The sink is closed on every path; a failed Close is reported
// when nothing failed before it. Sinks with an Abort method are aborted
// rather than closed when the stream fails.
func Run(ctx context.Context, src SizedReader, open OpenSink, opts Options) (n int64, err error) {
	r, err := opts.renderer(src.Size())
	if err != nil {
		return 0, fmt.Errorf("create renderer: %w", err)
	}

	dst, err := open()
	if err != nil {
		return 0, err
	}
	defer func() {
		if a, ok := dst.(aborter); ok && err != nil {
			a.Abort()
			return
		}
		if cerr := dst.Close(); cerr != nil && err == nil {
			err = &IOError{Op: "close", Err: cerr}
		}
	}()

	return Stream(ctx, src, dst, opts.ChunkSize, r)
}

// annotate fills in the path of an IOError produced by Stream or Run.
func annotate(err error, srcPath, dstPath string) error {
	var ioErr *IOError
	if !errors.As(err, &ioErr) || ioErr.Path != "" {
		return err
	}
	switch ioErr.Op {
	case "read":
		ioErr.Path = srcPath
	case "write", "close":
		ioErr.Path = dstPath
	}
	return err
}

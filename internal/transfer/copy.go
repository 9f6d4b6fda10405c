package transfer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// sizedFile is an open file whose size was taken before the transfer began.
type sizedFile struct {
	*os.File
	size int64
}

func (f sizedFile) Size() int64 {
	return f.size
}

// openSource stats and opens a local source file.
func openSource(path string) (sizedFile, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return sizedFile{}, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
	}
	if err != nil {
		return sizedFile{}, &IOError{Op: "stat", Path: path, Err: err}
	}
	if !info.Mode().IsRegular() {
		return sizedFile{}, fmt.Errorf("%w: %s is not a regular file", ErrSourceNotFound, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return sizedFile{}, &IOError{Op: "open", Path: path, Err: err}
	}
	return sizedFile{File: f, size: info.Size()}, nil
}

// CreateFile returns an OpenSink for a local destination file. Missing
// parent directories are created and an existing file is truncated.
func CreateFile(path string) OpenSink {
	return func() (io.WriteCloser, error) {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, &IOError{Op: "create", Path: dir, Err: err}
			}
		}
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
		if err != nil {
			return nil, &IOError{Op: "create", Path: path, Err: err}
		}
		return f, nil
	}
}

// Copy copies the file at srcPath to dstPath, drawing a progress bar
// labelled "Copying: " unless opts.Bar.Prefix is set.
//
// The source must be an existing regular file, otherwise ErrSourceNotFound
// is returned. An empty source cannot be drawn and fails with
// progress.ErrInvalidConfiguration before the destination is created.
func Copy(ctx context.Context, srcPath, dstPath string, opts Options) error {
	src, err := openSource(srcPath)
	if err != nil {
		return err
	}
	defer src.Close()

	opts = opts.withPrefix("Copying: ")
	if _, err := Run(ctx, src, CreateFile(dstPath), opts); err != nil {
		return annotate(err, srcPath, dstPath)
	}
	return nil
}

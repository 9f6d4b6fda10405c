package transfer

import (
	"context"
	"fmt"
	"io"

	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

// FetchObject copies the object key from bucket to the local file dstPath,
// drawing a progress bar labelled "Fetching: " unless opts.Bar.Prefix is set.
// A missing object returns ErrSourceNotFound.
func FetchObject(ctx context.Context, bucket *blob.Bucket, key, dstPath string, opts Options) error {
	r, err := bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return fmt.Errorf("%w: %s", ErrSourceNotFound, key)
		}
		return &IOError{Op: "open", Path: key, Err: err}
	}
	defer r.Close()

	opts = opts.withPrefix("Fetching: ")
	if _, err := Run(ctx, r, CreateFile(dstPath), opts); err != nil {
		return annotate(err, key, dstPath)
	}
	return nil
}

// PutObject copies the local file srcPath into bucket as key, drawing a
// progress bar labelled "Uploading: " unless opts.Bar.Prefix is set.
// The object only becomes visible once the whole file has been written.
func PutObject(ctx context.Context, srcPath string, bucket *blob.Bucket, key string, opts Options) error {
	src, err := openSource(srcPath)
	if err != nil {
		return err
	}
	defer src.Close()

	opts = opts.withPrefix("Uploading: ")
	if _, err := Run(ctx, src, CreateObject(ctx, bucket, key), opts); err != nil {
		return annotate(err, srcPath, key)
	}
	return nil
}

// CreateObject returns an OpenSink that writes the object key in bucket.
func CreateObject(ctx context.Context, bucket *blob.Bucket, key string) OpenSink {
	return func() (io.WriteCloser, error) {
		wctx, cancel := context.WithCancel(ctx)
		w, err := bucket.NewWriter(wctx, key, nil)
		if err != nil {
			cancel()
			return nil, &IOError{Op: "create", Path: key, Err: err}
		}
		return &objectSink{w: w, cancel: cancel}, nil
	}
}

// objectSink commits the object on Close. Cancelling the writer's context
// before Close discards it instead.
type objectSink struct {
	w      *blob.Writer
	cancel context.CancelFunc
}

func (s *objectSink) Write(p []byte) (int, error) {
	return s.w.Write(p)
}

func (s *objectSink) Close() error {
	defer s.cancel()
	return s.w.Close()
}

func (s *objectSink) Abort() error {
	s.cancel()
	return s.w.Close()
}

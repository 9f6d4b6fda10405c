package downloader

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"

	sphttp "github.com/ligustah/spprogress/internal/http"
	"github.com/ligustah/spprogress/internal/transfer"
)

// ErrMissingContentLength is returned when the response does not declare a
// positive Content-Length.
var ErrMissingContentLength = errors.New("downloader: content-length header is missing or invalid")

// Options configures the downloader.
type Options struct {
	// Transfer configures chunk size and the progress bar. The bar prefix
	// defaults to "Downloading: ".
	Transfer transfer.Options

	// HTTPOptions configures the HTTP client. Ignored when Client is set.
	HTTPOptions sphttp.Options

	// Client replaces the default HTTP client.
	Client *nethttp.Client
}

// responseBody is the streamed response with its declared length.
type responseBody struct {
	*sphttp.Response
}

func (b responseBody) Read(p []byte) (int, error) {
	return b.Body.Read(p)
}

func (b responseBody) Size() int64 {
	return b.ContentLength
}

// Download fetches url into outputPath.
func Download(ctx context.Context, url, outputPath string, opts Options) error {
	client := newClient(opts)

	resp, err := client.Get(ctx, url)
	if err != nil {
		return fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.ContentLength <= 0 {
		return fmt.Errorf("%w: got %d", ErrMissingContentLength, resp.ContentLength)
	}

	topts := opts.Transfer
	if topts.Bar.Prefix == "" {
		topts.Bar.Prefix = "Downloading: "
	}

	if _, err := transfer.Run(ctx, responseBody{resp}, transfer.CreateFile(outputPath), topts); err != nil {
		var ioErr *transfer.IOError
		if errors.As(err, &ioErr) && ioErr.Path == "" {
			if ioErr.Op == "read" {
				ioErr.Path = url
			} else {
				ioErr.Path = outputPath
			}
		}
		return err
	}
	return nil
}

func newClient(opts Options) *sphttp.Client {
	if opts.Client != nil {
		return sphttp.WrapClient(opts.Client, opts.HTTPOptions)
	}
	hopts := opts.HTTPOptions
	if hopts == (sphttp.Options{}) {
		hopts = sphttp.DefaultOptions()
	}
	return sphttp.NewClient(hopts)
}

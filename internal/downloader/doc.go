// Package downloader streams an HTTP response body into a local file while
// drawing a progress bar.
//
// The response must be successful and must declare a positive
// Content-Length: the bar needs the total before the first byte arrives.
// Both checks happen before the output file is created.
//
// # Usage
//
//	err := downloader.Download(ctx, "https://example.com/image.gif", "image.gif", downloader.Options{})
//	switch {
//	case errors.Is(err, http.ErrStatus):
//	    // server answered with a non-2xx status
//	case errors.Is(err, downloader.ErrMissingContentLength):
//	    // total unknown, nothing was written
//	}
//
// Downloads are not retried or resumed. A failure part-way leaves the
// output file as far as it was written.
package downloader

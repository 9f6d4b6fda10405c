// Package http provides the HTTP client used for streamed downloads.
//
// This package handles:
//   - A GET whose body is streamed rather than buffered
//   - Mapping unsuccessful status codes to errors
//   - Reporting the declared content length
//
// Requests are never retried.
//
// # Usage
//
//	client := http.NewClient(http.DefaultOptions())
//
//	resp, err := client.Get(ctx, url)
//	if err != nil {
//	    return err // errors.Is(err, http.ErrStatus) for non-2xx responses
//	}
//	defer resp.Body.Close()
//	// resp.ContentLength is -1 when the server did not declare one
package http

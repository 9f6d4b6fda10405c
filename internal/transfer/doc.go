// Package transfer moves a byte stream with a known total from a source to
// a sink in fixed-size chunks, drawing a progress bar as it goes.
//
// The loop itself is Stream. Variants only differ in how they obtain the
// source, the sink and the total:
//
//   - Copy: local file to local file
//   - FetchObject: bucket object to local file
//   - PutObject: local file to bucket object
//
// HTTP downloads live in the downloader package and reuse Run.
//
// # Usage
//
//	err := transfer.Copy(ctx, "source.bin", "backup/source.bin", transfer.Options{
//	    ChunkSize: 64 * 1024,
//	})
//
// # Failure
//
// Nothing is retried and nothing is rolled back. If a transfer fails, the
// destination is left as the last successful write made it and the bar
// stops at the last percentage it drew.
package transfer

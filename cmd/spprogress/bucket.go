package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"gocloud.dev/blob"

	// Register bucket URL schemes.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"

	"github.com/ligustah/spprogress/internal/progress"
	"github.com/ligustah/spprogress/internal/transfer"
)

func openBucket(ctx context.Context, bucketURL string) (*blob.Bucket, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, storageError{fmt.Errorf("failed to open bucket %s: %w", bucketURL, err)}
	}
	return bucket, nil
}

func (a *app) newFetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch <bucket-url> <key> <output>",
		Short: "Fetch an object from a bucket to a local file",
		Long: `Fetch an object from a bucket to a local file.

Bucket URLs use the gocloud.dev format, for example:
  s3://my-bucket?region=us-east-1
  gs://my-bucket
  file:///var/data`,
		Args: exactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			bucketURL, key, output := args[0], args[1], args[2]

			bucket, err := openBucket(cmd.Context(), bucketURL)
			if err != nil {
				return err
			}
			defer bucket.Close()

			if err := transfer.FetchObject(cmd.Context(), bucket, key, output, a.transferOptions(cmd)); err != nil {
				return err
			}
			a.logf(cmd, "Fetched %s (%s) to %s", key, progress.FormatBytes(fileSize(output)), output)
			return nil
		},
	}
}

func (a *app) newPutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "put <source> <bucket-url> <key>",
		Short: "Upload a local file to a bucket",
		Long: `Upload a local file to a bucket object.

The object is only committed when the whole file was written.`,
		Args: exactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, bucketURL, key := args[0], args[1], args[2]

			bucket, err := openBucket(cmd.Context(), bucketURL)
			if err != nil {
				return err
			}
			defer bucket.Close()

			if err := transfer.PutObject(cmd.Context(), src, bucket, key, a.transferOptions(cmd)); err != nil {
				return err
			}
			a.logf(cmd, "Uploaded %s (%s) to %s", src, progress.FormatBytes(fileSize(src)), key)
			return nil
		},
	}
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/ligustah/spprogress/internal/downloader"
	"github.com/ligustah/spprogress/internal/progress"
)

func (a *app) newDownloadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "download <url> <output>",
		Short: "Download a URL to a local file",
		Long: `Download a URL to a local file with a single GET request.

The server must answer with a 2xx status and a Content-Length header;
otherwise no output file is created.`,
		Args: exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			url, output := args[0], args[1]
			opts := downloader.Options{
				Transfer:    a.transferOptions(cmd),
				HTTPOptions: a.cfg.HTTPOptions(),
			}
			if err := downloader.Download(cmd.Context(), url, output, opts); err != nil {
				return err
			}
			a.logf(cmd, "Downloaded %s to %s", progress.FormatBytes(fileSize(output)), output)
			return nil
		},
	}
}

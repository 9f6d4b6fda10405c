package main

import (
	"github.com/spf13/cobra"

	"github.com/ligustah/spprogress/internal/progress"
	"github.com/ligustah/spprogress/internal/transfer"
)

func (a *app) newCopyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copy <source> <destination>",
		Short: "Copy a local file",
		Long: `Copy a local file to a destination path, creating parent directories.

An existing destination is truncated. A failed copy leaves the partial
destination in place.`,
		Args: exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, dst := args[0], args[1]
			if err := transfer.Copy(cmd.Context(), src, dst, a.transferOptions(cmd)); err != nil {
				return err
			}
			a.logf(cmd, "Copied %s to %s", progress.FormatBytes(fileSize(dst)), dst)
			return nil
		},
	}
}

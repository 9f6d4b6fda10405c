package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ligustah/spprogress/internal/config"
	"github.com/ligustah/spprogress/internal/progress"
	"github.com/ligustah/spprogress/internal/transfer"
)

// app holds state shared by all subcommands of one invocation.
type app struct {
	cfgFile   string
	chunkSize string
	flags     config.Config // values set on the command line
	cfg       config.Config // effective configuration
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "spprogress",
		Short: "Copy and download files with a live progress bar",
		Long: `spprogress moves a file while drawing a single-line progress bar.

Sources and destinations can be local files, HTTP(S) URLs (download only)
or objects in a bucket (mem://, file://, s3://, gs://).

Configuration is read from --config (YAML), then SPPROGRESS_* environment
variables, then command-line flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageError{fmt.Errorf("unknown command %q", args[0])}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Usage()
			return usageError{fmt.Errorf("a command is required")}
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig()
		},
	}

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (YAML)")
	flags.StringVar(&a.chunkSize, "chunk-size", "", "read size per chunk, e.g. 8KiB (default 8192)")
	flags.IntVar(&a.flags.Bar.Width, "width", 0, "bar width in columns (default 50)")
	flags.StringVar(&a.flags.Bar.Fill, "fill", "", "glyph for the completed portion (default █)")
	flags.StringVar(&a.flags.Bar.Empty, "empty", "", "glyph for the remaining portion (default -)")

	root.AddCommand(
		a.newCopyCmd(),
		a.newDownloadCmd(),
		a.newFetchCmd(),
		a.newPutCmd(),
		a.newDemoCmd(),
	)

	return root
}

// loadConfig layers defaults, the config file, the environment and flags.
func (a *app) loadConfig() error {
	cfg := config.Default()
	if a.cfgFile != "" {
		var err error
		cfg, err = config.LoadFromFile(a.cfgFile)
		if err != nil {
			return usageError{err}
		}
	}
	if err := cfg.LoadFromEnv(); err != nil {
		return usageError{err}
	}

	if a.chunkSize != "" {
		size, err := progress.ParseBytes(a.chunkSize)
		if err != nil {
			return usageError{fmt.Errorf("invalid chunk size: %w", err)}
		}
		a.flags.ChunkSize = size
	}

	cfg = cfg.Merge(a.flags)
	if err := cfg.Validate(); err != nil {
		return usageError{err}
	}
	a.cfg = cfg
	return nil
}

// transferOptions returns options that draw to the command's stdout.
func (a *app) transferOptions(cmd *cobra.Command) transfer.Options {
	opts := a.cfg.TransferOptions()
	opts.Bar.Output = cmd.OutOrStdout()
	return opts
}

func (a *app) logf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.ErrOrStderr(), "[spprogress] "+format+"\n", args...)
}

// exactArgs is cobra.ExactArgs reporting a usage error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return usageError{fmt.Errorf("%s accepts %d arg(s), received %d", cmd.Name(), n, len(args))}
		}
		return nil
	}
}

// fileSize reports the size of path for summaries, or -1.
func fileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return -1
	}
	return info.Size()
}

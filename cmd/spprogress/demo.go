package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/ligustah/spprogress/internal/progress"
)

func (a *app) newDemoCmd() *cobra.Command {
	var (
		steps int64
		delay time.Duration
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Draw a bar that advances on a timer",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.transferOptions(cmd).Bar
			opts.Total = steps
			opts.Prefix = "Loading: "

			bar, err := progress.NewBar(opts)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			for i := int64(0); i <= steps; i++ {
				bar.Update(i)
				if i == steps || delay <= 0 {
					continue
				}
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(delay):
				}
			}
			bar.Finish()
			return nil
		},
	}

	cmd.Flags().Int64Var(&steps, "steps", 100, "number of steps to the end")
	cmd.Flags().DurationVar(&delay, "delay", 50*time.Millisecond, "time between steps")

	return cmd
}

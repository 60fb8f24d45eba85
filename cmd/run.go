package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

func newRunCmd(load appLoader) *cobra.Command {
	var once bool
	var schedule string
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the bot for every account, then wait and repeat",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := load(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			if cmd.Flags().Changed("schedule") {
				app.cfg.Run.Schedule = schedule
			}
			if cmd.Flags().Changed("interval") {
				if interval <= 0 {
					return errors.New("--interval must be positive")
				}
				app.cfg.Run.WaitInterval = interval
				app.cfg.Run.Schedule = ""
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			err = runBot(ctx, cmd, app, once)
			if ctx.Err() != nil {
				app.logger.Info("shutdown signal received, stopping")
				app.loop.ReportMetrics()
				return nil
			}

			return err
		},
	}

	cmd.Flags().BoolVar(&once, "once", false, "Run a single pass and exit")
	cmd.Flags().StringVar(&schedule, "schedule", "", "Cron spec for passes, e.g. \"@every 30m\" (overrides run.wait_interval)")
	cmd.Flags().DurationVar(&interval, "interval", 0, "Wait between passes (overrides run.wait_interval)")
	cmd.MarkFlagsMutuallyExclusive("schedule", "interval")

	return cmd
}

func runBot(ctx context.Context, cmd *cobra.Command, app *app, once bool) error {
	if once {
		_, err := app.loop.RunPass(ctx)
		return err
	}

	if app.cfg.Run.Schedule != "" {
		return runScheduled(ctx, app, app.cfg.Run.Schedule)
	}

	for {
		if _, err := app.loop.RunPass(ctx); err != nil {
			return err
		}

		wait := app.cfg.Run.WaitInterval
		app.logger.Info(fmt.Sprintf("waiting %s before the next pass", wait))
		if err := waitForNextPass(ctx, cmd, app, wait); err != nil {
			return err
		}
	}
}

func waitForNextPass(ctx context.Context, cmd *cobra.Command, app *app, wait time.Duration) error {
	if isTerminal(cmd.ErrOrStderr()) {
		return runWaitSpinner(ctx, cmd.ErrOrStderr(), app.now, app.now().Add(wait))
	}

	return app.clock.Sleep(ctx, wait)
}

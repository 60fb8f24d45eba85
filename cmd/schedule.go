package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/animix-bot/internal/logging"
	"github.com/robfig/cron/v3"
)

// cronLogger routes cron's own messages into the bot logger.
type cronLogger struct {
	logger *logging.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, err, keysAndValues...)
}

// runScheduled runs one pass right away, then one per cron tick until ctx is
// done. A tick that fires while a pass is still running is skipped.
func runScheduled(ctx context.Context, app *app, spec string) error {
	logger := cronLogger{logger: app.logger.With("schedule")}
	scheduler := cron.New(
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)

	job := cron.FuncJob(func() {
		if _, err := app.loop.RunPass(ctx); err != nil && ctx.Err() == nil {
			app.logger.Error("scheduled pass failed", err)
		}
	})

	entryID, err := scheduler.AddJob(spec, job)
	if err != nil {
		return fmt.Errorf("parse schedule %q: %w", spec, err)
	}

	if _, err := app.loop.RunPass(ctx); err != nil {
		return err
	}

	scheduler.Start()
	app.logger.Info("waiting for scheduled passes", "schedule", spec, "next", scheduler.Entry(entryID).Next.Format("15:04:05"))

	<-ctx.Done()
	<-scheduler.Stop().Done()

	return ctx.Err()
}

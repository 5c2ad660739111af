package jobs

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleOrderExpiryJob cancels orders left in the created status for too long.
// Runs every minute and processes each stale order in its own transaction.
type StaleOrderExpiryJob struct {
	handler commands.CancelStaleOrdersCommandHandler
	maxAge  time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStaleOrderExpiryJob creates a new job for expiring stale orders.
// Orders older than maxAge that were never confirmed get cancelled.
func NewStaleOrderExpiryJob(
	handler commands.CancelStaleOrdersCommandHandler,
	maxAge time.Duration,
	logger *slog.Logger,
) *StaleOrderExpiryJob {
	return &StaleOrderExpiryJob{
		handler: handler,
		maxAge:  maxAge,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stale_order_expiry_job"),
	}
}

// Start begins the expiry job to run every minute.
func (j *StaleOrderExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewCancelStaleOrdersCommand(j.maxAge)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Stale order expiry job misconfigured", "error", cmdErr)
			return
		}

		cancelled, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Stale order expiry job failed", "error", handleErr)
			return
		}

		if cancelled > 0 {
			j.logger.InfoContext(ctx, "Cancelled stale orders", "count", cancelled)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order expiry job started (running every minute)")
	return nil
}

// Stop stops the expiry job.
func (j *StaleOrderExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order expiry job stopped")
}

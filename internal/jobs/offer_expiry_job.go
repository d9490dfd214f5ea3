package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"hireflow/internal/core/application/txn"
	"hireflow/internal/core/application/usecases/commands"
)

// OfferExpiryJob expires overdue offers on a schedule. Runs every minute
// and pushes each batch through the retry executor so a transient database
// failure does not skip a whole expiry cycle.
type OfferExpiryJob struct {
	handler commands.ExpireOffersCommandHandler
	policy  txn.RetryPolicy
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOfferExpiryJob creates a job that expires overdue offers.
func NewOfferExpiryJob(handler commands.ExpireOffersCommandHandler, logger *slog.Logger) *OfferExpiryJob {
	return &OfferExpiryJob{
		handler: handler,
		policy:  txn.DefaultRetryPolicy(),
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "offer_expiry_job"),
	}
}

// Start begins the offer expiry job to run every minute.
func (j *OfferExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewExpireOffersCommand(time.Now())
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Offer expiry command construction failed", "error", cmdErr)
			return
		}

		if handleErr := j.handler.HandleWithRetry(ctx, cmd, j.policy); handleErr != nil {
			j.logger.ErrorContext(ctx, "Offer expiry job failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Offer expiry job started (running every minute)")
	return nil
}

// Stop stops the offer expiry job.
func (j *OfferExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Offer expiry job stopped")
}

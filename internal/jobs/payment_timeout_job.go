package jobs

import (
	"context"
	"log/slog"
	"time"

	"ordering/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultPaymentTimeoutSchedule runs the job every thirty seconds.
const DefaultPaymentTimeoutSchedule = "*/30 * * * * *"

type expiredOrdersHandler interface {
	Handle(ctx context.Context, cmd commands.CancelExpiredOrdersCommand) (int, error)
}

// PaymentTimeoutJob cancels orders that stayed Pending longer than the payment timeout.
type PaymentTimeoutJob struct {
	handler  expiredOrdersHandler
	schedule string
	timeout  time.Duration
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewPaymentTimeoutJob creates the job. schedule is a six-field cron expression
// (seconds first) or a descriptor such as "@every 1m".
func NewPaymentTimeoutJob(
	handler expiredOrdersHandler,
	schedule string,
	timeout time.Duration,
	logger *slog.Logger,
) *PaymentTimeoutJob {
	return &PaymentTimeoutJob{
		handler:  handler,
		schedule: schedule,
		timeout:  timeout,
		now:      time.Now,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "payment_timeout_job"),
	}
}

func (j *PaymentTimeoutJob) Name() string {
	return "payment timeout"
}

// Start registers the job with its schedule and starts the scheduler.
func (j *PaymentTimeoutJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payment timeout job started",
		"schedule", j.schedule,
		"timeout", j.timeout.String(),
	)
	return nil
}

// Run performs a single pass. Failures are logged and retried on the next tick.
func (j *PaymentTimeoutJob) Run(ctx context.Context) {
	cmd, err := commands.NewCancelExpiredOrdersCommand(j.now().Add(-j.timeout))
	if err != nil {
		j.logger.ErrorContext(ctx, "Payment timeout job failed", "error", err)
		return
	}

	cancelled, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Payment timeout job failed", "error", err)
		return
	}

	if cancelled > 0 {
		j.logger.InfoContext(ctx, "Unpaid orders cancelled", "count", cancelled)
	}
}

// Stop stops the scheduler and waits for a running pass to finish.
func (j *PaymentTimeoutJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Payment timeout job stopped")
}

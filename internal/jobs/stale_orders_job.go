package jobs

import (
	"context"
	"log/slog"
	"time"

	"ordering/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultStaleOrdersSchedule runs the stale orders job at the start of every minute.
const DefaultStaleOrdersSchedule = "0 * * * * *"

type staleOrdersCanceler interface {
	Handle(ctx context.Context, cmd commands.CancelStalePendingOrdersCommand) (int, error)
}

// StaleOrdersJob periodically cancels Pending orders older than the configured TTL.
type StaleOrdersJob struct {
	handler  staleOrdersCanceler
	ttl      time.Duration
	schedule string
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStaleOrdersJob creates the job. schedule is a six-field cron expression
// (with seconds); an empty schedule means DefaultStaleOrdersSchedule.
func NewStaleOrdersJob(
	handler staleOrdersCanceler,
	ttl time.Duration,
	schedule string,
	logger *slog.Logger,
) *StaleOrdersJob {
	if schedule == "" {
		schedule = DefaultStaleOrdersSchedule
	}

	return &StaleOrdersJob{
		handler:  handler,
		ttl:      ttl,
		schedule: schedule,
		now:      time.Now,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "stale_orders_job"),
	}
}

// Start schedules the job.
func (j *StaleOrdersJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		canceled, err := j.RunOnce(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale orders job failed", "error", err)
			return
		}
		if canceled > 0 {
			j.logger.InfoContext(ctx, "Stale pending orders canceled", "count", canceled)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale orders job started",
		"schedule", j.schedule,
		"ttl", j.ttl.String(),
	)
	return nil
}

// RunOnce cancels the orders that are stale right now and returns how many were canceled.
func (j *StaleOrdersJob) RunOnce(ctx context.Context) (int, error) {
	cmd, err := commands.NewCancelStalePendingOrdersCommand(j.ttl, j.now())
	if err != nil {
		return 0, err
	}

	return j.handler.Handle(ctx, cmd)
}

// Stop stops the scheduler and waits for a running execution to finish.
func (j *StaleOrdersJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Stale orders job stopped")
}

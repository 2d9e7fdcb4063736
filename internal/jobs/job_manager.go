package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ordering/internal/core/application/usecases/commands"
)

// StaleOrdersConfig configures the stale orders job. A zero TTL disables it.
type StaleOrdersConfig struct {
	TTL      time.Duration
	Schedule string
}

type job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	jobs    []job
	started []job
	logger  *slog.Logger
}

// NewJobManager creates a new job manager with all enabled jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	cancelStaleHandler commands.CancelStalePendingOrdersCommandHandler,
	staleOrders StaleOrdersConfig,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{logger: logger.With("component", "job_manager")}

	if staleOrders.TTL > 0 {
		jm.jobs = append(jm.jobs, NewStaleOrdersJob(cancelStaleHandler, staleOrders.TTL, staleOrders.Schedule, logger))
	} else {
		jm.logger.InfoContext(context.Background(), "Stale orders job disabled")
	}

	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start; jobs already started are stopped.
func (jm *JobManager) StartAll() error {
	for _, j := range jm.jobs {
		if err := j.Start(); err != nil {
			jm.StopAll()
			return fmt.Errorf("failed to start job: %w", err)
		}
		jm.started = append(jm.started, j)
	}

	return nil
}

// StopAll stops all started jobs gracefully.
func (jm *JobManager) StopAll() {
	for _, j := range jm.started {
		j.Stop()
	}
	jm.started = nil
}

// Len returns the number of enabled jobs.
func (jm *JobManager) Len() int {
	return len(jm.jobs)
}

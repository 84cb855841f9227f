package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"marketplace/internal/core/application/usecases/commands"
)

const dispatchSweepJobName = "auto_assign"

// DispatchSweepJob periodically hands orders waiting for dispatch to available partners.
type DispatchSweepJob struct {
	handler  AssignPendingOrdersHandler
	observer SweepObserver
	opts     SweepOptions
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewDispatchSweepJob(
	handler AssignPendingOrdersHandler,
	observer SweepObserver,
	opts SweepOptions,
	logger *slog.Logger,
) *DispatchSweepJob {
	if observer == nil {
		observer = noopObserver{}
	}
	return &DispatchSweepJob{
		handler:  handler,
		observer: observer,
		opts:     opts,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "dispatch_sweep_job"),
	}
}

func (j *DispatchSweepJob) Start() error {
	if _, err := j.cron.AddFunc(j.opts.Spec, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Dispatch sweep job started", "spec", j.opts.Spec, "limit", j.opts.Limit)
	return nil
}

// Run performs one sweep. Errors are logged, never returned.
func (j *DispatchSweepJob) Run(ctx context.Context) {
	if j.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.opts.Timeout)
		defer cancel()
	}

	started := time.Now()
	cmd, err := commands.NewAssignPendingOrdersCommand(j.opts.Limit)
	if err != nil {
		j.logger.ErrorContext(ctx, "Dispatch sweep misconfigured", "error", err)
		return
	}

	result, err := j.handler.Handle(ctx, cmd)
	j.observer.ObserveSweep(dispatchSweepJobName, result.Processed, result.Skipped, result.Failed, time.Since(started))
	if err != nil {
		j.logger.ErrorContext(ctx, "Dispatch sweep failed", "error", err, "processed", result.Processed)
		return
	}
	if result.Processed > 0 {
		j.logger.InfoContext(ctx, "Orders dispatched", "processed", result.Processed, "skipped", result.Skipped)
	}
}

func (j *DispatchSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Dispatch sweep job stopped")
}

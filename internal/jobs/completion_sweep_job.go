package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"marketplace/internal/core/application/usecases/commands"
)

const completionSweepJobName = "auto_complete"

// CompletionSweepJob completes orders that were delivered longer than the grace period ago.
type CompletionSweepJob struct {
	handler  CompleteDeliveredOrdersHandler
	observer SweepObserver
	opts     SweepOptions
	grace    time.Duration
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewCompletionSweepJob(
	handler CompleteDeliveredOrdersHandler,
	observer SweepObserver,
	opts SweepOptions,
	grace time.Duration,
	logger *slog.Logger,
) *CompletionSweepJob {
	if observer == nil {
		observer = noopObserver{}
	}
	return &CompletionSweepJob{
		handler:  handler,
		observer: observer,
		opts:     opts,
		grace:    grace,
		now:      time.Now,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "completion_sweep_job"),
	}
}

func (j *CompletionSweepJob) Start() error {
	if _, err := j.cron.AddFunc(j.opts.Spec, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Completion sweep job started", "spec", j.opts.Spec, "grace", j.grace.String())
	return nil
}

// Run performs one sweep. Errors are logged, never returned.
func (j *CompletionSweepJob) Run(ctx context.Context) {
	if j.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.opts.Timeout)
		defer cancel()
	}

	started := j.now()
	cmd, err := commands.NewCompleteDeliveredOrdersCommand(started.Add(-j.grace), j.opts.Limit)
	if err != nil {
		j.logger.ErrorContext(ctx, "Completion sweep misconfigured", "error", err)
		return
	}

	result, err := j.handler.Handle(ctx, cmd)
	j.observer.ObserveSweep(completionSweepJobName, result.Processed, result.Skipped, result.Failed, time.Since(started))
	if err != nil {
		j.logger.ErrorContext(ctx, "Completion sweep failed", "error", err, "processed", result.Processed)
		return
	}
	if result.Processed > 0 {
		j.logger.InfoContext(ctx, "Delivered orders completed", "processed", result.Processed)
	}
}

func (j *CompletionSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Completion sweep job stopped")
}

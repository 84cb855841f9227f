package jobs

import (
	"context"
	"time"

	"marketplace/internal/core/application/usecases/commands"
)

type AssignPendingOrdersHandler interface {
	Handle(ctx context.Context, cmd commands.AssignPendingOrdersCommand) (commands.SweepResult, error)
}

type CompleteDeliveredOrdersHandler interface {
	Handle(ctx context.Context, cmd commands.CompleteDeliveredOrdersCommand) (commands.SweepResult, error)
}

// SweepObserver receives the outcome of every sweep run.
type SweepObserver interface {
	ObserveSweep(job string, processed, skipped, failed int, duration time.Duration)
}

type noopObserver struct{}

func (noopObserver) ObserveSweep(string, int, int, int, time.Duration) {}

// SweepOptions configures a scheduled sweep.
type SweepOptions struct {
	// Spec is a six-field cron expression (seconds first).
	Spec string
	// Limit caps the orders handled per run.
	Limit int
	// Timeout bounds a single run.
	Timeout time.Duration
}

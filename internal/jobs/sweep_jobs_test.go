package jobs

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"marketplace/internal/core/application/usecases/commands"
)

type MockAssignPendingOrdersHandler struct {
	mock.Mock
}

func (m *MockAssignPendingOrdersHandler) Handle(
	ctx context.Context,
	cmd commands.AssignPendingOrdersCommand,
) (commands.SweepResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.SweepResult), args.Error(1)
}

type MockCompleteDeliveredOrdersHandler struct {
	mock.Mock
}

func (m *MockCompleteDeliveredOrdersHandler) Handle(
	ctx context.Context,
	cmd commands.CompleteDeliveredOrdersCommand,
) (commands.SweepResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.SweepResult), args.Error(1)
}

type MockSweepObserver struct {
	mock.Mock
}

func (m *MockSweepObserver) ObserveSweep(job string, processed, skipped, failed int, duration time.Duration) {
	m.Called(job, processed, skipped, failed, duration)
}

func TestDispatchSweepJob_Run(t *testing.T) {
	t.Run("should run the sweep with the configured limit and report the outcome", func(t *testing.T) {
		handler := new(MockAssignPendingOrdersHandler)
		observer := new(MockSweepObserver)
		handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.AssignPendingOrdersCommand) bool {
			return cmd.Limit() == 25
		})).Return(commands.SweepResult{Processed: 3, Skipped: 1}, nil).Once()
		observer.On("ObserveSweep", "auto_assign", 3, 1, 0, mock.AnythingOfType("time.Duration")).Once()

		job := NewDispatchSweepJob(handler, observer, SweepOptions{Spec: "@every 1s", Limit: 25}, slog.Default())
		job.Run(t.Context())

		handler.AssertExpectations(t)
		observer.AssertExpectations(t)
	})

	t.Run("should report failures without panicking", func(t *testing.T) {
		handler := new(MockAssignPendingOrdersHandler)
		observer := new(MockSweepObserver)
		handler.On("Handle", mock.Anything, mock.Anything).
			Return(commands.SweepResult{Processed: 1, Failed: 2}, errors.New("db down")).Once()
		observer.On("ObserveSweep", "auto_assign", 1, 0, 2, mock.Anything).Once()

		job := NewDispatchSweepJob(handler, observer, SweepOptions{Spec: "@every 1s", Limit: 5}, slog.Default())
		job.Run(t.Context())

		observer.AssertExpectations(t)
	})

	t.Run("should not call the handler with an invalid limit", func(t *testing.T) {
		handler := new(MockAssignPendingOrdersHandler)

		job := NewDispatchSweepJob(handler, nil, SweepOptions{Spec: "@every 1s"}, slog.Default())
		job.Run(t.Context())

		handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should bound the run with the timeout", func(t *testing.T) {
		handler := new(MockAssignPendingOrdersHandler)
		handler.On("Handle", mock.MatchedBy(func(ctx context.Context) bool {
			_, ok := ctx.Deadline()
			return ok
		}), mock.Anything).Return(commands.SweepResult{}, nil).Once()

		job := NewDispatchSweepJob(handler, nil, SweepOptions{Spec: "@every 1s", Limit: 1, Timeout: time.Second}, slog.Default())
		job.Run(t.Context())

		handler.AssertExpectations(t)
	})
}

func TestCompletionSweepJob_Run(t *testing.T) {
	t.Run("should complete orders delivered before now minus the grace period", func(t *testing.T) {
		now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
		handler := new(MockCompleteDeliveredOrdersHandler)
		observer := new(MockSweepObserver)
		handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CompleteDeliveredOrdersCommand) bool {
			return cmd.DeliveredBefore().Equal(now.Add(-48*time.Hour)) && cmd.Limit() == 10
		})).Return(commands.SweepResult{Processed: 2}, nil).Once()
		observer.On("ObserveSweep", "auto_complete", 2, 0, 0, mock.Anything).Once()

		job := NewCompletionSweepJob(handler, observer, SweepOptions{Spec: "@every 1m", Limit: 10}, 48*time.Hour, slog.Default())
		job.now = func() time.Time { return now }
		job.Run(t.Context())

		handler.AssertExpectations(t)
		observer.AssertExpectations(t)
	})
}

func TestJobManager_StartAll(t *testing.T) {
	t.Run("should fail on an invalid schedule", func(t *testing.T) {
		dispatch := NewDispatchSweepJob(new(MockAssignPendingOrdersHandler), nil,
			SweepOptions{Spec: "@every 1h", Limit: 1}, slog.Default())
		completion := NewCompletionSweepJob(new(MockCompleteDeliveredOrdersHandler), nil,
			SweepOptions{Spec: "not a schedule", Limit: 1}, time.Hour, slog.Default())

		err := NewJobManager(dispatch, completion).StartAll()

		assert.ErrorContains(t, err, "completion sweep job")
		assert.Empty(t, completion.cron.Entries())
	})

	t.Run("should start and stop both jobs", func(t *testing.T) {
		dispatch := NewDispatchSweepJob(new(MockAssignPendingOrdersHandler), nil,
			SweepOptions{Spec: "@every 1h", Limit: 1}, slog.Default())
		completion := NewCompletionSweepJob(new(MockCompleteDeliveredOrdersHandler), nil,
			SweepOptions{Spec: "0 0 * * * *", Limit: 1}, time.Hour, slog.Default())
		manager := NewJobManager(dispatch, completion)

		assert.NoError(t, manager.StartAll())
		assert.Len(t, dispatch.cron.Entries(), 1)
		assert.Len(t, completion.cron.Entries(), 1)

		manager.StopAll()
	})
}

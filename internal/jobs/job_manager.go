package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	dispatchSweepJob   *DispatchSweepJob
	completionSweepJob *CompletionSweepJob
}

func NewJobManager(dispatchSweepJob *DispatchSweepJob, completionSweepJob *CompletionSweepJob) *JobManager {
	return &JobManager{
		dispatchSweepJob:   dispatchSweepJob,
		completionSweepJob: completionSweepJob,
	}
}

// StartAll starts all scheduled jobs. If one fails to start, the jobs already
// running are stopped.
func (jm *JobManager) StartAll() error {
	if err := jm.dispatchSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start dispatch sweep job: %w", err)
	}

	if err := jm.completionSweepJob.Start(); err != nil {
		jm.dispatchSweepJob.Stop()
		return fmt.Errorf("failed to start completion sweep job: %w", err)
	}

	return nil
}

// StopAll stops all jobs and waits for running sweeps to finish.
func (jm *JobManager) StopAll() {
	jm.completionSweepJob.Stop()
	jm.dispatchSweepJob.Stop()
}

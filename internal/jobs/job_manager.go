package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	dayEnd *DayEndJob
}

func NewJobManager(dayEnd *DayEndJob) *JobManager {
	return &JobManager{dayEnd: dayEnd}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.dayEnd.Start(); err != nil {
		return fmt.Errorf("failed to start day end job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dayEnd.Stop()
}

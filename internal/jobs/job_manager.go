package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager starts and stops the background jobs together.
type JobManager struct {
	delayedMonitorJob *DelayedShipmentMonitorJob
	logger            *slog.Logger
}

// NewJobManager wires the jobs. An empty delayedSchedule leaves the delayed
// shipment monitor out.
func NewJobManager(
	delayedHandler DelayedShipmentsHandler,
	gauge DelayedShipmentsGauge,
	delayedSchedule string,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{logger: logger.With("component", "job_manager")}
	if delayedSchedule != "" {
		jm.delayedMonitorJob = NewDelayedShipmentMonitorJob(delayedHandler, gauge, delayedSchedule, logger)
	}
	return jm
}

func (jm *JobManager) StartAll() error {
	if jm.delayedMonitorJob == nil {
		jm.logger.Info("Delayed shipment monitor disabled")
		return nil
	}

	if err := jm.delayedMonitorJob.Start(); err != nil {
		return fmt.Errorf("failed to start delayed shipment monitor: %w", err)
	}
	return nil
}

// StopAll waits for running jobs to finish.
func (jm *JobManager) StopAll() {
	if jm.delayedMonitorJob != nil {
		jm.delayedMonitorJob.Stop()
	}
}

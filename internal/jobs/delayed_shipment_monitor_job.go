package jobs

import (
	"context"
	"log/slog"
	"time"

	"ledger/internal/core/application/usecases/queries"
	"ledger/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// worstReported caps how many delayed shipments one run logs individually.
const worstReported = 5

type DelayedShipmentsHandler interface {
	Handle(ctx context.Context, query queries.GetDelayedShipmentsQuery) ([]queries.GetDelayedShipmentsQueryResponse, error)
}

type DelayedShipmentsGauge interface {
	SetDelayedShipments(n int)
}

// DelayedShipmentMonitorJob periodically counts shipments past their estimated
// delivery time. It never changes shipment state.
type DelayedShipmentMonitorJob struct {
	handler  DelayedShipmentsHandler
	gauge    DelayedShipmentsGauge
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
	now      func() time.Time
}

func NewDelayedShipmentMonitorJob(
	handler DelayedShipmentsHandler,
	gauge DelayedShipmentsGauge,
	schedule string,
	logger *slog.Logger,
) *DelayedShipmentMonitorJob {
	return &DelayedShipmentMonitorJob{
		handler:  handler,
		gauge:    gauge,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "delayed_shipment_monitor_job"),
		now:      kernel.Now,
	}
}

// Start registers the job on its schedule. An invalid expression is returned
// as is.
func (j *DelayedShipmentMonitorJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		_ = j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delayed shipment monitor started", "schedule", j.schedule)
	return nil
}

// Run performs one check. Failures are logged and leave the gauge untouched.
func (j *DelayedShipmentMonitorJob) Run(ctx context.Context) error {
	query, err := queries.NewGetDelayedShipmentsQuery(j.now())
	if err != nil {
		return err
	}

	delayed, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Delayed shipment check failed", "error", err)
		return err
	}

	j.gauge.SetDelayedShipments(len(delayed))
	if len(delayed) == 0 {
		j.logger.DebugContext(ctx, "No delayed shipments")
		return nil
	}

	j.logger.WarnContext(ctx, "Delayed shipments found",
		"count", len(delayed),
		"worst_delay_hours", delayed[0].DelayHours,
	)
	for _, d := range delayed[:min(len(delayed), worstReported)] {
		j.logger.InfoContext(ctx, "Delayed shipment",
			"shipment_id", d.ShipmentID,
			"delay_hours", d.DelayHours,
			"driver", d.DriverName,
		)
	}
	return nil
}

func (j *DelayedShipmentMonitorJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Delayed shipment monitor stopped")
}

package cmd

import (
	"log/slog"

	httpin "ledger/internal/adapters/in/http"
	"ledger/internal/adapters/out/postgres"
	"ledger/internal/core/application/usecases/commands"
	"ledger/internal/core/application/usecases/queries"
	"ledger/internal/jobs"
	"ledger/internal/pkg/metrics"
	"ledger/internal/pkg/retry"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	policy     retry.Policy
	registry   *prometheus.Registry
	metrics    *metrics.Metrics
	logger     *slog.Logger
	config     Config
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	registry := prometheus.NewRegistry()
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		policy:     config.RetryPolicy(),
		registry:   registry,
		metrics:    metrics.New(registry),
		logger:     logger,
		config:     config,
	}
}

func (c *CompositionRoot) Registry() *prometheus.Registry {
	return c.registry
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(c.shipmentUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateUpdateShipmentStatusCommandHandler() commands.UpdateShipmentStatusCommandHandler {
	return commands.NewUpdateShipmentStatusCommandHandler(c.shipmentUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateAddPackageToShipmentCommandHandler() commands.AddPackageToShipmentCommandHandler {
	return commands.NewAddPackageToShipmentCommandHandler(c.packageUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateMovePackageBetweenShipmentsCommandHandler() commands.MovePackageBetweenShipmentsCommandHandler {
	return commands.NewMovePackageBetweenShipmentsCommandHandler(c.packageUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateRegisterDriverCommandHandler() commands.RegisterDriverCommandHandler {
	return commands.NewRegisterDriverCommandHandler(c.driverUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateAssignShipmentToDriverCommandHandler() commands.AssignShipmentToDriverCommandHandler {
	return commands.NewAssignShipmentToDriverCommandHandler(c.driverUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateCompleteDriverAssignmentCommandHandler() commands.CompleteDriverAssignmentCommandHandler {
	return commands.NewCompleteDriverAssignmentCommandHandler(c.driverUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateDirectoryCommandHandler() commands.DirectoryCommandHandler {
	var f commands.DirectoryUoWFactory = FuncDirectoryUoWFactory(func() commands.DirectoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDirectoryCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateGetShipmentStatusLogQueryHandler() queries.GetShipmentStatusLogQueryHandler {
	return queries.NewGetShipmentStatusLogQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateGetPendingShipmentsForDriverQueryHandler() queries.GetPendingShipmentsForDriverQueryHandler {
	return queries.NewGetPendingShipmentsForDriverQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateGetDelayedShipmentsQueryHandler() queries.GetDelayedShipmentsQueryHandler {
	return queries.NewGetDelayedShipmentsQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateGetDailyShipmentVolumeQueryHandler() queries.GetDailyShipmentVolumeQueryHandler {
	return queries.NewGetDailyShipmentVolumeQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		Directory:          c.CreateDirectoryCommandHandler(),
		RegisterDriver:     c.CreateRegisterDriverCommandHandler(),
		CreateShipment:     c.CreateCreateShipmentCommandHandler(),
		AddPackage:         c.CreateAddPackageToShipmentCommandHandler(),
		UpdateStatus:       c.CreateUpdateShipmentStatusCommandHandler(),
		AssignShipment:     c.CreateAssignShipmentToDriverCommandHandler(),
		CompleteAssignment: c.CreateCompleteDriverAssignmentCommandHandler(),
		MovePackage:        c.CreateMovePackageBetweenShipmentsCommandHandler(),
		StatusLog:          c.CreateGetShipmentStatusLogQueryHandler(),
		PendingShipments:   c.CreateGetPendingShipmentsForDriverQueryHandler(),
		DelayedShipments:   c.CreateGetDelayedShipmentsQueryHandler(),
		DailyVolume:        c.CreateGetDailyShipmentVolumeQueryHandler(),
	}, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetDelayedShipmentsQueryHandler(),
		c.metrics,
		c.config.DelayedMonitorSchedule,
		c.logger,
	)
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) packageUoWFactory() commands.PackageUoWFactory {
	return FuncPackageUoWFactory(func() commands.PackageUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) driverUoWFactory() commands.DriverUoWFactory {
	return FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncPackageUoWFactory func() commands.PackageUoW

func (f FuncPackageUoWFactory) Create() commands.PackageUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncDirectoryUoWFactory func() commands.DirectoryUoW

func (f FuncDirectoryUoWFactory) Create() commands.DirectoryUoW {
	return f()
}

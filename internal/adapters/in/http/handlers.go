package http

import (
	"context"

	"ledger/internal/core/application/usecases/commands"
	"ledger/internal/core/application/usecases/queries"
)

// CommandHandler is satisfied by every single-command handler.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// QueryHandler is satisfied by every report handler.
type QueryHandler[Q, R any] interface {
	Handle(ctx context.Context, query Q) ([]R, error)
}

type DirectoryHandler interface {
	HandleRegisterCustomer(ctx context.Context, cmd commands.RegisterCustomerCommand) error
	HandleRegisterLocation(ctx context.Context, cmd commands.RegisterLocationCommand) error
	HandleRegisterAgent(ctx context.Context, cmd commands.RegisterAgentCommand) error
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	Directory          DirectoryHandler
	RegisterDriver     CommandHandler[commands.RegisterDriverCommand]
	CreateShipment     CommandHandler[commands.CreateShipmentCommand]
	AddPackage         CommandHandler[commands.AddPackageToShipmentCommand]
	UpdateStatus       CommandHandler[commands.UpdateShipmentStatusCommand]
	AssignShipment     CommandHandler[commands.AssignShipmentToDriverCommand]
	CompleteAssignment CommandHandler[commands.CompleteDriverAssignmentCommand]
	MovePackage        CommandHandler[commands.MovePackageBetweenShipmentsCommand]

	StatusLog        QueryHandler[queries.GetShipmentStatusLogQuery, queries.GetShipmentStatusLogQueryResponse]
	PendingShipments QueryHandler[queries.GetPendingShipmentsForDriverQuery, queries.GetPendingShipmentsForDriverQueryResponse]
	DelayedShipments QueryHandler[queries.GetDelayedShipmentsQuery, queries.GetDelayedShipmentsQueryResponse]
	DailyVolume      QueryHandler[queries.GetDailyShipmentVolumeQuery, queries.GetDailyShipmentVolumeQueryResponse]
}

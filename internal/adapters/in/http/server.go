// Package http exposes the ledger use cases as a JSON API on echo.
package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"ledger/internal/core/application/usecases/commands"
	"ledger/internal/core/application/usecases/queries"
	"ledger/internal/core/domain/model/kernel"
	"ledger/internal/pkg/errs"
	"ledger/internal/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Server translates HTTP requests into commands and queries and maps their
// errors to status codes.
type Server struct {
	handlers  Handlers
	validator *validator.Validate
	metrics   *metrics.Metrics
	logger    *slog.Logger
	now       func() time.Time
}

func NewServer(handlers Handlers, m *metrics.Metrics, logger *slog.Logger) *Server {
	return &Server{
		handlers:  handlers,
		validator: validator.New(),
		metrics:   m,
		logger:    logger.With("component", "http"),
		now:       kernel.Now,
	}
}

// RegisterRoutes mounts the API under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/customers", s.RegisterCustomer)
	api.POST("/locations", s.RegisterLocation)
	api.POST("/agents", s.RegisterAgent)
	api.POST("/drivers", s.RegisterDriver)
	api.POST("/shipments", s.CreateShipment)
	api.POST("/shipments/:id/packages", s.AddPackage)
	api.POST("/shipments/:id/status", s.UpdateShipmentStatus)
	api.GET("/shipments/:id/log", s.GetShipmentStatusLog)
	api.POST("/drivers/:id/assignments", s.AssignShipment)
	api.GET("/drivers/:id/pending-shipments", s.GetPendingShipments)
	api.POST("/driver-assignments/:id/complete", s.CompleteAssignment)
	api.POST("/packages/:id/move", s.MovePackage)
	api.GET("/reports/delayed", s.GetDelayedShipments)
	api.GET("/reports/daily-volume", s.GetDailyVolume)
}

// RegisterCustomer handles POST /api/v1/customers.
func (s *Server) RegisterCustomer(c echo.Context) error {
	const op = "register_customer"

	var req registerCustomerRequest
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, op, err)
	}

	cmd, err := commands.NewRegisterCustomerCommand(req.CustomerID, req.Name, req.Contact)
	if err != nil {
		return s.fail(c, op, err)
	}
	if err = s.handlers.Directory.HandleRegisterCustomer(c.Request().Context(), cmd); err != nil {
		return s.fail(c, op, err)
	}

	return s.respond(c, op, http.StatusCreated, createdResponse{ID: req.CustomerID})
}

// RegisterLocation handles POST /api/v1/locations.
func (s *Server) RegisterLocation(c echo.Context) error {
	const op = "register_location"

	var req registerLocationRequest
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, op, err)
	}

	cmd, err := commands.NewRegisterLocationCommand(req.LocationID, req.Name, req.ParentLocationID, req.PostalCode)
	if err != nil {
		return s.fail(c, op, err)
	}
	if err = s.handlers.Directory.HandleRegisterLocation(c.Request().Context(), cmd); err != nil {
		return s.fail(c, op, err)
	}

	return s.respond(c, op, http.StatusCreated, createdResponse{ID: req.LocationID})
}

// RegisterAgent handles POST /api/v1/agents.
func (s *Server) RegisterAgent(c echo.Context) error {
	const op = "register_agent"

	var req registerAgentRequest
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, op, err)
	}

	cmd, err := commands.NewRegisterAgentCommand(req.AgentID, req.Name, req.Contacts)
	if err != nil {
		return s.fail(c, op, err)
	}
	if err = s.handlers.Directory.HandleRegisterAgent(c.Request().Context(), cmd); err != nil {
		return s.fail(c, op, err)
	}

	return s.respond(c, op, http.StatusCreated, createdResponse{ID: req.AgentID})
}

// RegisterDriver handles POST /api/v1/drivers.
func (s *Server) RegisterDriver(c echo.Context) error {
	const op = "register_driver"

	var req registerDriverRequest
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, op, err)
	}

	cmd, err := commands.NewRegisterDriverCommand(req.DriverID, req.Name, req.LicenseNumber, req.Contact, req.CapacityLimit)
	if err != nil {
		return s.fail(c, op, err)
	}
	if err = s.handlers.RegisterDriver.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, op, err)
	}

	return s.respond(c, op, http.StatusCreated, createdResponse{ID: req.DriverID})
}

// CreateShipment handles POST /api/v1/shipments.
func (s *Server) CreateShipment(c echo.Context) error {
	const op = "create_shipment"

	var req createShipmentRequest
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, op, err)
	}

	cmd, err := commands.NewCreateShipmentCommand(
		req.ShipmentID, req.SenderID, req.RecipientID, req.OriginID, req.DestinationID, req.EstimatedDeliveryTime,
	)
	if err != nil {
		return s.fail(c, op, err)
	}
	if err = s.handlers.CreateShipment.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, op, err)
	}

	return s.respond(c, op, http.StatusCreated, createdResponse{ID: req.ShipmentID})
}

// AddPackage handles POST /api/v1/shipments/:id/packages.
func (s *Server) AddPackage(c echo.Context) error {
	const op = "add_package"

	shipmentID, err := pathID(c, "id")
	if err != nil {
		return s.fail(c, op, err)
	}

	var req addPackageRequest
	if err = s.bind(c, &req); err != nil {
		return s.fail(c, op, err)
	}

	cmd, err := commands.NewAddPackageToShipmentCommand(req.PackageID, req.Weight, req.Description, shipmentID, req.AgentID)
	if err != nil {
		return s.fail(c, op, err)
	}
	if err = s.handlers.AddPackage.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, op, err)
	}

	return s.respond(c, op, http.StatusCreated, createdResponse{ID: req.PackageID})
}

// UpdateShipmentStatus handles POST /api/v1/shipments/:id/status.
func (s *Server) UpdateShipmentStatus(c echo.Context) error {
	const op = "update_shipment_status"

	shipmentID, err := pathID(c, "id")
	if err != nil {
		return s.fail(c, op, err)
	}

	var req updateStatusRequest
	if err = s.bind(c, &req); err != nil {
		return s.fail(c, op, err)
	}

	cmd, err := commands.NewUpdateShipmentStatusCommand(shipmentID, req.Status, req.AgentID, req.Notes, req.LocationID)
	if err != nil {
		return s.fail(c, op, err)
	}
	if err = s.handlers.UpdateStatus.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, op, err)
	}

	return s.respond(c, op, http.StatusNoContent, nil)
}

// AssignShipment handles POST /api/v1/drivers/:id/assignments.
func (s *Server) AssignShipment(c echo.Context) error {
	const op = "assign_shipment"

	driverID, err := pathID(c, "id")
	if err != nil {
		return s.fail(c, op, err)
	}

	var req assignShipmentRequest
	if err = s.bind(c, &req); err != nil {
		return s.fail(c, op, err)
	}

	cmd, err := commands.NewAssignShipmentToDriverCommand(
		driverID, req.ShipmentID, req.StartLocationID, req.EndLocationID,
		req.EstimatedPickupTime, req.EstimatedDeliveryTime,
	)
	if err != nil {
		return s.fail(c, op, err)
	}
	if err = s.handlers.AssignShipment.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, op, err)
	}

	return s.respond(c, op, http.StatusCreated, assignmentCreatedResponse{AssignmentID: cmd.AssignmentID().String()})
}

// CompleteAssignment handles POST /api/v1/driver-assignments/:id/complete.
func (s *Server) CompleteAssignment(c echo.Context) error {
	const op = "complete_assignment"

	assignmentID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.fail(c, op, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	cmd, err := commands.NewCompleteDriverAssignmentCommand(assignmentID)
	if err != nil {
		return s.fail(c, op, err)
	}
	if err = s.handlers.CompleteAssignment.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, op, err)
	}

	return s.respond(c, op, http.StatusNoContent, nil)
}

// MovePackage handles POST /api/v1/packages/:id/move.
func (s *Server) MovePackage(c echo.Context) error {
	const op = "move_package"

	packageID, err := pathID(c, "id")
	if err != nil {
		return s.fail(c, op, err)
	}

	var req movePackageRequest
	if err = s.bind(c, &req); err != nil {
		return s.fail(c, op, err)
	}

	cmd, err := commands.NewMovePackageBetweenShipmentsCommand(
		packageID, req.FromShipmentID, req.ToShipmentID, req.AgentID, req.Reason, req.Notes,
	)
	if err != nil {
		return s.fail(c, op, err)
	}
	if err = s.handlers.MovePackage.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, op, err)
	}

	return s.respond(c, op, http.StatusNoContent, nil)
}

// GetShipmentStatusLog handles GET /api/v1/shipments/:id/log.
func (s *Server) GetShipmentStatusLog(c echo.Context) error {
	const op = "shipment_status_log"

	shipmentID, err := pathID(c, "id")
	if err != nil {
		return s.fail(c, op, err)
	}

	query, err := queries.NewGetShipmentStatusLogQuery(shipmentID)
	if err != nil {
		return s.fail(c, op, err)
	}
	rows, err := s.handlers.StatusLog.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, op, err)
	}

	response := make([]statusLogEntry, len(rows))
	for i, r := range rows {
		response[i] = statusLogEntry{
			ShipmentID:            r.ShipmentID,
			CurrentStatus:         r.CurrentStatus.String(),
			EstimatedDeliveryTime: r.EstimatedDelivery,
			ActualDelivery:        r.ActualDelivery,
			LogStatus:             r.LogStatus.String(),
			Timestamp:             r.LogTimestamp,
			LocationName:          r.LocationName,
			PostalCode:            r.PostalCode,
			AgentName:             r.AgentName,
			Notes:                 r.Notes,
		}
	}

	return s.respond(c, op, http.StatusOK, response)
}

// GetPendingShipments handles GET /api/v1/drivers/:id/pending-shipments.
func (s *Server) GetPendingShipments(c echo.Context) error {
	const op = "pending_shipments"

	driverID, err := pathID(c, "id")
	if err != nil {
		return s.fail(c, op, err)
	}

	query, err := queries.NewGetPendingShipmentsForDriverQuery(driverID)
	if err != nil {
		return s.fail(c, op, err)
	}
	rows, err := s.handlers.PendingShipments.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, op, err)
	}

	response := make([]pendingShipment, len(rows))
	for i, r := range rows {
		response[i] = pendingShipment{
			ShipmentID:            r.ShipmentID,
			Sender:                r.SenderName,
			Recipient:             r.RecipientName,
			Origin:                r.OriginLocation,
			Destination:           r.DestinationLocation,
			EstimatedDeliveryTime: r.EstimatedDelivery,
			AssignedAt:            r.AssignedAt,
			EstimatedPickupTime:   r.EstimatedPickup,
		}
	}

	return s.respond(c, op, http.StatusOK, response)
}

// GetDelayedShipments handles GET /api/v1/reports/delayed?as_of=RFC3339.
func (s *Server) GetDelayedShipments(c echo.Context) error {
	const op = "delayed_shipments"

	asOf, err := s.asOf(c)
	if err != nil {
		return s.fail(c, op, err)
	}

	query, err := queries.NewGetDelayedShipmentsQuery(asOf)
	if err != nil {
		return s.fail(c, op, err)
	}
	rows, err := s.handlers.DelayedShipments.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, op, err)
	}

	response := make([]delayedShipment, len(rows))
	for i, r := range rows {
		response[i] = delayedShipment{
			ShipmentID:            r.ShipmentID,
			Sender:                r.SenderName,
			Recipient:             r.RecipientName,
			EstimatedDeliveryTime: r.EstimatedDelivery,
			ActualDelivery:        r.ActualDelivery,
			DelayHours:            r.DelayHours,
			DriverName:            r.DriverName,
			DriverContact:         r.DriverContact,
		}
	}

	return s.respond(c, op, http.StatusOK, response)
}

// GetDailyVolume handles GET /api/v1/reports/daily-volume?as_of=RFC3339.
func (s *Server) GetDailyVolume(c echo.Context) error {
	const op = "daily_volume"

	asOf, err := s.asOf(c)
	if err != nil {
		return s.fail(c, op, err)
	}

	query, err := queries.NewGetDailyShipmentVolumeQuery(asOf)
	if err != nil {
		return s.fail(c, op, err)
	}
	rows, err := s.handlers.DailyVolume.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, op, err)
	}

	response := make([]dailyVolume, len(rows))
	for i, r := range rows {
		response[i] = dailyVolume{
			Date:             r.Date.Format(time.DateOnly),
			OriginLocationID: r.OriginLocationID,
			OriginLocation:   r.OriginLocation,
			OriginPostalCode: r.OriginPostalCode,
			TotalShipments:   r.TotalShipments,
			Delivered:        r.Delivered,
			InTransit:        r.InTransit,
			Pending:          r.Pending,
			TotalWeight:      r.TotalWeight,
		}
	}

	return s.respond(c, op, http.StatusOK, response)
}

func (s *Server) bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", bindError(err))
	}
	if err := s.validator.Struct(req); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	return nil
}

// bindError drops echo's status wrapper and keeps the decoding message.
func bindError(err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Internal != nil {
			return httpErr.Internal
		}
		return errors.New(http.StatusText(httpErr.Code))
	}
	return err
}

func (s *Server) asOf(c echo.Context) (time.Time, error) {
	raw := c.QueryParam("as_of")
	if raw == "" {
		return s.now(), nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause("as_of", err)
	}
	return t, nil
}

func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

func (s *Server) respond(c echo.Context, op string, status int, body any) error {
	s.metrics.ObserveOperation(op, metrics.OutcomeOK)
	if body == nil {
		return c.NoContent(status)
	}
	return c.JSON(status, body)
}

func (s *Server) fail(c echo.Context, op string, err error) error {
	status, kind := classify(err)
	s.metrics.ObserveOperation(op, kind)

	if status >= http.StatusInternalServerError {
		s.logger.Error("operation failed", "operation", op, "error", err)
	} else {
		s.logger.Debug("operation rejected", "operation", op, "kind", kind, "error", err)
	}

	return c.JSON(status, errorResponse{Code: status, Error: kind, Message: err.Error()})
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"ledger/internal/core/application/usecases/commands"
	"ledger/internal/core/application/usecases/queries"
	"ledger/internal/core/domain/model/kernel"
	"ledger/internal/core/domain/model/parcel"
	"ledger/internal/core/domain/model/shipment"
	"ledger/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type demoStep struct {
	name string
	run  func(ctx context.Context) error
}

// runSteps stops at the first unexpected failure. Steps rejected because
// their rows already exist are logged and skipped so the demo can run again
// against the same database.
func (c *CompositionRoot) runSteps(ctx context.Context, steps []demoStep) error {
	logger := c.logger.With("component", "demo")
	for _, s := range steps {
		err := s.run(ctx)
		switch {
		case err == nil:
			logger.InfoContext(ctx, "Step done", "step", s.name)
		case errors.Is(err, errs.ErrConstraintViolation), errors.Is(err, errs.ErrPreconditionFailed):
			logger.WarnContext(ctx, "Step skipped", "step", s.name, "error", err)
		default:
			logger.ErrorContext(ctx, "Step failed", "step", s.name, "error", err)
			return fmt.Errorf("%s: %w", s.name, err)
		}
	}
	return nil
}

// SeedDemo registers three customers, a hub with two sub-hubs, two agents and
// two drivers.
func (c *CompositionRoot) SeedDemo(ctx context.Context) error {
	directory := c.CreateDirectoryCommandHandler()
	drivers := c.CreateRegisterDriverCommandHandler()
	hub := int64(1)

	var steps []demoStep
	for _, cu := range []struct {
		id            int64
		name, contact string
	}{
		{1, "Alice Sender", "alice@example.com"},
		{2, "Bob Recipient", "bob@example.com"},
		{3, "Carol Recipient", "carol@example.com"},
	} {
		steps = append(steps, demoStep{fmt.Sprintf("register customer %d", cu.id), func(ctx context.Context) error {
			cmd, err := commands.NewRegisterCustomerCommand(cu.id, cu.name, cu.contact)
			if err != nil {
				return err
			}
			return directory.HandleRegisterCustomer(ctx, cmd)
		}})
	}

	for _, l := range []struct {
		id         int64
		name       string
		parent     *int64
		postalCode string
	}{
		{1, "Central Hub", nil, "10001"},
		{2, "North Sub-Hub", &hub, "20002"},
		{3, "South Sub-Hub", &hub, "30003"},
	} {
		steps = append(steps, demoStep{fmt.Sprintf("register location %d", l.id), func(ctx context.Context) error {
			cmd, err := commands.NewRegisterLocationCommand(l.id, l.name, l.parent, l.postalCode)
			if err != nil {
				return err
			}
			return directory.HandleRegisterLocation(ctx, cmd)
		}})
	}

	for _, a := range []struct {
		id             int64
		name, contacts string
	}{
		{1, "Day Dispatcher", "desk 1"},
		{2, "Night Dispatcher", "desk 2"},
	} {
		steps = append(steps, demoStep{fmt.Sprintf("register agent %d", a.id), func(ctx context.Context) error {
			cmd, err := commands.NewRegisterAgentCommand(a.id, a.name, a.contacts)
			if err != nil {
				return err
			}
			return directory.HandleRegisterAgent(ctx, cmd)
		}})
	}

	for _, d := range []struct {
		id                     int64
		name, license, contact string
		limit                  int
	}{
		{1, "Dana Driver", "DL-0001", "555-0001", 5},
		{2, "Eli Driver", "DL-0002", "555-0002", 2},
	} {
		steps = append(steps, demoStep{fmt.Sprintf("register driver %d", d.id), func(ctx context.Context) error {
			cmd, err := commands.NewRegisterDriverCommand(d.id, d.name, d.license, d.contact, d.limit)
			if err != nil {
				return err
			}
			return drivers.Handle(ctx, cmd)
		}})
	}

	return c.runSteps(ctx, steps)
}

// RunDemoScenario creates shipment 1001 with package 2001, puts it in transit,
// assigns driver 1, then moves the package to the new shipment 1002.
func (c *CompositionRoot) RunDemoScenario(ctx context.Context) error {
	const agentID = 1

	createShipment := c.CreateCreateShipmentCommandHandler()
	addPackage := c.CreateAddPackageToShipmentCommandHandler()
	updateStatus := c.CreateUpdateShipmentStatusCommandHandler()
	assign := c.CreateAssignShipmentToDriverCommandHandler()
	move := c.CreateMovePackageBetweenShipmentsCommandHandler()

	now := kernel.Now()
	hub := int64(1)

	return c.runSteps(ctx, []demoStep{
		{"create shipment 1001", func(ctx context.Context) error {
			cmd, err := commands.NewCreateShipmentCommand(1001, 1, 2, 1, 2, now.Add(48*time.Hour))
			if err != nil {
				return err
			}
			return createShipment.Handle(ctx, cmd)
		}},
		{"add package 2001 to shipment 1001", func(ctx context.Context) error {
			cmd, err := commands.NewAddPackageToShipmentCommand(2001, decimal.RequireFromString("2.5"), "Books", 1001, agentID)
			if err != nil {
				return err
			}
			return addPackage.Handle(ctx, cmd)
		}},
		{"mark shipment 1001 in transit", func(ctx context.Context) error {
			cmd, err := commands.NewUpdateShipmentStatusCommand(1001, shipment.InTransit.String(), agentID, "Left central hub", &hub)
			if err != nil {
				return err
			}
			return updateStatus.Handle(ctx, cmd)
		}},
		{"assign shipment 1001 to driver 1", func(ctx context.Context) error {
			cmd, err := commands.NewAssignShipmentToDriverCommand(1, 1001, 1, 2, now.Add(time.Hour), now.Add(6*time.Hour))
			if err != nil {
				return err
			}
			return assign.Handle(ctx, cmd)
		}},
		{"create shipment 1002", func(ctx context.Context) error {
			cmd, err := commands.NewCreateShipmentCommand(1002, 1, 3, 1, 3, now.Add(72*time.Hour))
			if err != nil {
				return err
			}
			return createShipment.Handle(ctx, cmd)
		}},
		{"move package 2001 to shipment 1002", func(ctx context.Context) error {
			cmd, err := commands.NewMovePackageBetweenShipmentsCommand(
				2001, 1001, 1002, agentID, parcel.MovementReassignment.String(), "Recipient changed",
			)
			if err != nil {
				return err
			}
			return move.Handle(ctx, cmd)
		}},
	})
}

// PrintReports writes every report to w as aligned text tables.
func (c *CompositionRoot) PrintReports(ctx context.Context, w io.Writer, asOf time.Time) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	logQuery, err := queries.NewGetShipmentStatusLogQuery(1001)
	if err != nil {
		return err
	}
	logRows, err := c.CreateGetShipmentStatusLogQueryHandler().Handle(ctx, logQuery)
	if err != nil {
		return err
	}
	fmt.Fprintln(tw, "Status log of shipment 1001")
	fmt.Fprintln(tw, "status\ttimestamp\tlocation\tpostal code\tagent\tnotes")
	for _, r := range logRows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.LogStatus, formatTime(r.LogTimestamp), r.LocationName, r.PostalCode, r.AgentName, r.Notes)
	}

	pendingQuery, err := queries.NewGetPendingShipmentsForDriverQuery(1)
	if err != nil {
		return err
	}
	pending, err := c.CreateGetPendingShipmentsForDriverQueryHandler().Handle(ctx, pendingQuery)
	if err != nil {
		return err
	}
	fmt.Fprintln(tw, "\nPending shipments of driver 1")
	fmt.Fprintln(tw, "shipment\tsender\trecipient\torigin\tdestination\tassigned at")
	for _, r := range pending {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			r.ShipmentID, r.SenderName, r.RecipientName, r.OriginLocation, r.DestinationLocation, formatTime(&r.AssignedAt))
	}

	delayedQuery, err := queries.NewGetDelayedShipmentsQuery(asOf)
	if err != nil {
		return err
	}
	delayed, err := c.CreateGetDelayedShipmentsQueryHandler().Handle(ctx, delayedQuery)
	if err != nil {
		return err
	}
	fmt.Fprintf(tw, "\nDelayed shipments as of %s\n", formatTime(&asOf))
	fmt.Fprintln(tw, "shipment\tsender\trecipient\tdelay hours\tdriver\tcontact")
	for _, r := range delayed {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\t%s\n",
			r.ShipmentID, r.SenderName, r.RecipientName, r.DelayHours, r.DriverName, r.DriverContact)
	}

	volumeQuery, err := queries.NewGetDailyShipmentVolumeQuery(asOf)
	if err != nil {
		return err
	}
	volume, err := c.CreateGetDailyShipmentVolumeQueryHandler().Handle(ctx, volumeQuery)
	if err != nil {
		return err
	}
	fmt.Fprintln(tw, "\nDaily shipment volume")
	fmt.Fprintln(tw, "date\torigin\tpostal code\ttotal\tdelivered\tin transit\tpending\tweight")
	for _, r := range volume {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%d\t%d\t%s\n",
			r.Date.Format(time.DateOnly), r.OriginLocation, r.OriginPostalCode,
			r.TotalShipments, r.Delivered, r.InTransit, r.Pending, r.TotalWeight.StringFixed(2))
	}

	return tw.Flush()
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(time.RFC3339)
}

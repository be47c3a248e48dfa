package commands

import (
	"context"

	"ledger/internal/core/domain/model/driver"
	"ledger/internal/pkg/retry"
)

// RegisterDriverCommandHandler inserts a driver. A duplicate id or license
// number is reported as errs.ErrConstraintViolation.
type RegisterDriverCommandHandler struct {
	uowFactory DriverUoWFactory
	policy     retry.Policy
}

func NewRegisterDriverCommandHandler(uowFactory DriverUoWFactory, policy retry.Policy) RegisterDriverCommandHandler {
	return RegisterDriverCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

func (h RegisterDriverCommandHandler) Handle(ctx context.Context, cmd RegisterDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	d, err := driver.NewDriver(cmd.DriverID(), cmd.Name(), cmd.LicenseNumber(), cmd.Contact(), cmd.CapacityLimit())
	if err != nil {
		return err
	}

	return retry.Write(ctx, h.policy, func(ctx context.Context) error {
		uow := h.uowFactory.Create()
		if err := uow.Begin(ctx); err != nil {
			return err
		}

		defer func() {
			_ = uow.Rollback(ctx)
		}()

		if err := uow.DriverRepository().Add(ctx, d); err != nil {
			return err
		}

		return uow.Commit(ctx)
	})
}

package commands

import (
	"context"

	"ledger/internal/core/domain/model/directory"
	"ledger/internal/pkg/retry"
)

// DirectoryCommandHandler registers customers, locations and agents. Each
// registration is a single insert.
type DirectoryCommandHandler struct {
	uowFactory DirectoryUoWFactory
	policy     retry.Policy
}

func NewDirectoryCommandHandler(uowFactory DirectoryUoWFactory, policy retry.Policy) DirectoryCommandHandler {
	return DirectoryCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

func (h DirectoryCommandHandler) HandleRegisterCustomer(ctx context.Context, cmd RegisterCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	c, err := directory.NewCustomer(cmd.CustomerID(), cmd.Name(), cmd.Contact())
	if err != nil {
		return err
	}

	return h.insert(ctx, func(ctx context.Context, repo DirectoryRepoFactory) error {
		return repo.DirectoryRepository().AddCustomer(ctx, c)
	})
}

// HandleRegisterLocation fails with errs.ErrConstraintViolation when the
// parent location does not exist.
func (h DirectoryCommandHandler) HandleRegisterLocation(ctx context.Context, cmd RegisterLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	l, err := directory.NewLocation(cmd.LocationID(), cmd.Name(), cmd.ParentID(), cmd.PostalCode())
	if err != nil {
		return err
	}

	return h.insert(ctx, func(ctx context.Context, repo DirectoryRepoFactory) error {
		return repo.DirectoryRepository().AddLocation(ctx, l)
	})
}

func (h DirectoryCommandHandler) HandleRegisterAgent(ctx context.Context, cmd RegisterAgentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	a, err := directory.NewAgent(cmd.AgentID(), cmd.Name(), cmd.Contacts())
	if err != nil {
		return err
	}

	return h.insert(ctx, func(ctx context.Context, repo DirectoryRepoFactory) error {
		return repo.DirectoryRepository().AddAgent(ctx, a)
	})
}

func (h DirectoryCommandHandler) insert(
	ctx context.Context,
	write func(ctx context.Context, repo DirectoryRepoFactory) error,
) error {
	return retry.Write(ctx, h.policy, func(ctx context.Context) error {
		uow := h.uowFactory.Create()
		if err := uow.Begin(ctx); err != nil {
			return err
		}

		defer func() {
			_ = uow.Rollback(ctx)
		}()

		if err := write(ctx, uow); err != nil {
			return err
		}

		return uow.Commit(ctx)
	})
}

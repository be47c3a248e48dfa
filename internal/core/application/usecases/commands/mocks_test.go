package commands_test

import (
	"context"

	"ledger/internal/core/application/usecases/commands"
	"ledger/internal/core/domain/model/directory"
	"ledger/internal/core/domain/model/driver"
	"ledger/internal/core/domain/model/kernel"
	"ledger/internal/core/domain/model/parcel"
	"ledger/internal/core/domain/model/shipment"
	"ledger/internal/core/ports"
	"ledger/internal/pkg/retry"

	"github.com/stretchr/testify/mock"
)

var noRetry = retry.Policy{}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.ID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockShipmentRepository) AppendStatusLog(ctx context.Context, entry *shipment.StatusLogEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockShipmentRepository) ListStatusLog(ctx context.Context, id kernel.ID) ([]*shipment.StatusLogEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.StatusLogEntry), args.Error(1)
}

type MockPackageRepository struct{ mock.Mock }

func (m *MockPackageRepository) Add(ctx context.Context, p *parcel.Package) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPackageRepository) Get(ctx context.Context, id kernel.ID) (*parcel.Package, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Package), args.Error(1)
}

func (m *MockPackageRepository) AddAssignment(ctx context.Context, a *parcel.Assignment) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockPackageRepository) GetOpenAssignmentForUpdate(ctx context.Context, id kernel.ID) (*parcel.Assignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Assignment), args.Error(1)
}

func (m *MockPackageRepository) CloseAssignment(ctx context.Context, a *parcel.Assignment) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockPackageRepository) ListAssignments(ctx context.Context, id kernel.ID) ([]*parcel.Assignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Assignment), args.Error(1)
}

func (m *MockPackageRepository) AppendMovement(ctx context.Context, mv *parcel.Movement) error {
	return m.Called(ctx, mv).Error(0)
}

func (m *MockPackageRepository) ListMovements(ctx context.Context, id kernel.ID) ([]*parcel.Movement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Movement), args.Error(1)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDriverRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) CountActiveAssignments(ctx context.Context, id kernel.ID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDriverRepository) AddAssignment(ctx context.Context, a *driver.Assignment) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockDriverRepository) GetAssignmentForUpdate(ctx context.Context, id kernel.UUID) (*driver.Assignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Assignment), args.Error(1)
}

func (m *MockDriverRepository) UpdateAssignment(ctx context.Context, a *driver.Assignment) error {
	return m.Called(ctx, a).Error(0)
}

type MockDirectoryRepository struct{ mock.Mock }

func (m *MockDirectoryRepository) AddCustomer(ctx context.Context, c *directory.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockDirectoryRepository) AddLocation(ctx context.Context, l *directory.Location) error {
	return m.Called(ctx, l).Error(0)
}

func (m *MockDirectoryRepository) AddAgent(ctx context.Context, a *directory.Agent) error {
	return m.Called(ctx, a).Error(0)
}

// MockUoW satisfies every narrowed unit of work interface.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	return m.Called().Get(0).(ports.ShipmentRepository)
}

func (m *MockUoW) PackageRepository() ports.PackageRepository {
	return m.Called().Get(0).(ports.PackageRepository)
}

func (m *MockUoW) DriverRepository() ports.DriverRepository {
	return m.Called().Get(0).(ports.DriverRepository)
}

func (m *MockUoW) DirectoryRepository() ports.DirectoryRepository {
	return m.Called().Get(0).(ports.DirectoryRepository)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	return m.Called().Get(0).(commands.ShipmentUoW)
}

type MockPackageUoWFactory struct{ mock.Mock }

func (m *MockPackageUoWFactory) Create() commands.PackageUoW {
	return m.Called().Get(0).(commands.PackageUoW)
}

type MockDriverUoWFactory struct{ mock.Mock }

func (m *MockDriverUoWFactory) Create() commands.DriverUoW {
	return m.Called().Get(0).(commands.DriverUoW)
}

type MockDirectoryUoWFactory struct{ mock.Mock }

func (m *MockDirectoryUoWFactory) Create() commands.DirectoryUoW {
	return m.Called().Get(0).(commands.DirectoryUoW)
}

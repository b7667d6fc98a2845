package commands_test

import (
	"testing"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/driver"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/packages"
	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDispatchPackageCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewDispatchPackageCommand()

	testPackage := newTestPackage(t, "P1")
	testDriver := newTestDriver(t, "D1")

	packageRepo := new(MockPackageRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		uow.On("PackageRepository").Return(packageRepo).Once(),
		packageRepo.On("GetFirstPending", ctx).Return(testPackage, nil).Once(),
		driverRepo.On("GetAll", ctx).Return([]*driver.Driver{testDriver}, nil).Once(),
		packageRepo.On("Update", ctx, mock.AnythingOfType("*packages.Package")).Return(nil).Once(),
		driverRepo.On("UpdateStatus", ctx, mustID(t, "D1"), driver.StatusBusy).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDispatchPackageCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, packages.StatusAssigned, testPackage.Status())
	assert.Equal(t, "D1", testPackage.AssignedDriver().String())
	packageRepo.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDispatchPackageCommandHandler_Handle_PrefersLeastLoadedDriver(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewDispatchPackageCommand()

	testPackage := newTestPackage(t, "P1")
	loaded, err := driver.RestoreDriver(mustID(t, "D1"), "Loaded", "555-0100",
		driver.VehicleVan, driver.StatusAvailable, 0,
		[]kernel.ID{mustID(t, "P7"), mustID(t, "P8")})
	require.NoError(t, err)
	idle := newTestDriver(t, "D2")

	packageRepo := new(MockPackageRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		uow.On("PackageRepository").Return(packageRepo).Once(),
		packageRepo.On("GetFirstPending", ctx).Return(testPackage, nil).Once(),
		driverRepo.On("GetAll", ctx).Return([]*driver.Driver{loaded, idle}, nil).Once(),
		packageRepo.On("Update", ctx, mock.AnythingOfType("*packages.Package")).Return(nil).Once(),
		driverRepo.On("UpdateStatus", ctx, mustID(t, "D2"), driver.StatusBusy).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDispatchPackageCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "D2", testPackage.AssignedDriver().String())
}

func TestDispatchPackageCommandHandler_Handle_NoPendingPackage(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewDispatchPackageCommand()

	packageRepo := new(MockPackageRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		uow.On("PackageRepository").Return(packageRepo).Once(),
		packageRepo.On("GetFirstPending", ctx).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDispatchPackageCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrNoPendingPackageFound)
}

func TestDispatchPackageCommandHandler_Handle_NoAvailableDrivers(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewDispatchPackageCommand()

	testPackage := newTestPackage(t, "P1")
	busyDriver, err := driver.RestoreDriver(mustID(t, "D1"), "Busy", "555-0100",
		driver.VehicleBike, driver.StatusBusy, 0, nil)
	require.NoError(t, err)

	packageRepo := new(MockPackageRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		uow.On("PackageRepository").Return(packageRepo).Once(),
		packageRepo.On("GetFirstPending", ctx).Return(testPackage, nil).Once(),
		driverRepo.On("GetAll", ctx).Return([]*driver.Driver{busyDriver}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDispatchPackageCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrNoAvailableDriversFound)
	assert.Equal(t, packages.StatusPending, testPackage.Status())
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestDispatchPackageCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.DispatchPackageCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	handler := commands.NewDispatchPackageCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrDispatchPackageCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

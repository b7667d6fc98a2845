package commands_test

import (
	"errors"
	"testing"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/driver"
	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateDriverCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateDriverCommand(mustID(t, "D1"), "Alice", "555-0101", driver.VehicleBike)
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Add", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateDriverCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	driverRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateDriverCommandHandler_Handle_DuplicateID(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateDriverCommand(mustID(t, "D1"), "Alice", "555-0101", driver.VehicleBike)
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)
	duplicateErr := errs.NewObjectAlreadyExistsError("driverId", "D1")

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Add", ctx, mock.AnythingOfType("*driver.Driver")).Return(duplicateErr).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateDriverCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateDriverCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateDriverCommand{} // not constructed properly

	factory := new(MockDriverUoWFactory)
	handler := commands.NewCreateDriverCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCreateDriverCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateDriverCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateDriverCommand(mustID(t, "D1"), "Alice", "555-0101", driver.VehicleBike)
	require.NoError(t, err)

	uow := new(MockUoW)
	factory := new(MockDriverUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	handler := commands.NewCreateDriverCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
}

package commands_test

import (
	"testing"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreatePackageCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreatePackageCommand(mustID(t, "P1"), "Acme Corp", "1 Industrial Way",
		"Jane Doe", "42 Oak St", 2.5)
	require.NoError(t, err)

	packageRepo := new(MockPackageRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PackageRepository").Return(packageRepo).Once(),
		packageRepo.On("Add", ctx, mock.AnythingOfType("*packages.Package")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPackageUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreatePackageCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	packageRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreatePackageCommandHandler_Handle_DuplicateID(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreatePackageCommand(mustID(t, "P1"), "Acme Corp", "1 Industrial Way",
		"Jane Doe", "42 Oak St", 2.5)
	require.NoError(t, err)

	packageRepo := new(MockPackageRepository)
	uow := new(MockUoW)
	duplicateErr := errs.NewObjectAlreadyExistsError("packageId", "P1")

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PackageRepository").Return(packageRepo).Once(),
		packageRepo.On("Add", ctx, mock.AnythingOfType("*packages.Package")).Return(duplicateErr).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPackageUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreatePackageCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreatePackageCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreatePackageCommand{} // not constructed properly

	factory := new(MockPackageUoWFactory)
	handler := commands.NewCreatePackageCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCreatePackageCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

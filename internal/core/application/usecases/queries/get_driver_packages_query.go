package queries

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrGetDriverPackagesQueryIsNotConstructed = errors.New(
	"GetDriverPackagesQuery must be created via NewGetDriverPackagesQuery constructor",
)

// GetDriverPackagesQuery retrieves the active route of a single driver.
// Returns every package currently assigned to the driver that has not been
// delivered yet, oldest first. Delivered packages drop off the route and are
// visible only through GetAllPackagesQuery.
//
// Example:
//
//	query, err := NewGetDriverPackagesQuery(driverID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetDriverPackagesQueryHandler(db)
//	route, err := handler.Handle(ctx, query)
type GetDriverPackagesQuery struct {
	driverID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetDriverPackagesQuery creates a query for one driver's active packages.
// Returns an error if the driver ID is invalid.
func NewGetDriverPackagesQuery(driverID kernel.ID) (GetDriverPackagesQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetDriverPackagesQuery{}, err
	}

	return GetDriverPackagesQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// DriverID returns the identifier of the driver whose route is requested.
func (q GetDriverPackagesQuery) DriverID() kernel.ID {
	return q.driverID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDriverPackagesQueryIsNotConstructed if validation fails.
func (q GetDriverPackagesQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverPackagesQueryIsNotConstructed)
}

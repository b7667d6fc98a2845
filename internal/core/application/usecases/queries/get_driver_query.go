package queries

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrGetDriverQueryIsNotConstructed = errors.New(
	"GetDriverQuery must be created via NewGetDriverQuery constructor",
)

// GetDriverQuery retrieves a single driver by ID.
// Returns the same read model as GetAllDriversQuery, including the current
// active delivery count.
type GetDriverQuery struct {
	driverID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetDriverQuery creates a query for one driver.
// Returns an error if the driver ID is invalid.
func NewGetDriverQuery(driverID kernel.ID) (GetDriverQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetDriverQuery{}, err
	}

	return GetDriverQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// DriverID returns the identifier of the requested driver.
func (q GetDriverQuery) DriverID() kernel.ID {
	return q.driverID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDriverQueryIsNotConstructed if validation fails.
func (q GetDriverQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverQueryIsNotConstructed)
}

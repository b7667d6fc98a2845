// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"courier/internal/core/domain/model/driver"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrGetAllDriversQueryIsNotConstructed = errors.New(
	"GetAllDriversQuery must be created via NewGetAllDriversQuery constructor",
)

// GetAllDriversQuery retrieves information about all drivers in the system.
// Returns driver identities, workload and availability for monitoring and
// dispatching. An optional status filter narrows the result to drivers in a
// single status.
//
// Example:
//
//	query := NewGetAllDriversQuery()
//	handler := NewGetAllDriversQueryHandler(db)
//
//	drivers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve drivers: %w", err)
//	}
//
//	for _, d := range drivers {
//	    fmt.Printf("Driver %s (%s): %d active deliveries\n",
//	        d.Name, d.Status, d.ActiveDeliveries)
//	}
type GetAllDriversQuery struct {
	statusFilter driver.Status
	hasFilter    bool

	guard guard.ConstructorGuard
}

// NewGetAllDriversQuery creates a query to retrieve all drivers regardless
// of status. This is a parameterless query that fetches the complete driver
// list.
func NewGetAllDriversQuery() GetAllDriversQuery {
	return GetAllDriversQuery{guard: guard.NewConstructorGuard()}
}

// NewGetAllDriversQueryWithStatus creates a query restricted to drivers in
// the given status. The status must already be validated by the caller,
// typically via driver.ParseStatus.
func NewGetAllDriversQueryWithStatus(status driver.Status) (GetAllDriversQuery, error) {
	if err := status.Validate(); err != nil {
		return GetAllDriversQuery{}, err
	}

	return GetAllDriversQuery{
		statusFilter: status,
		hasFilter:    true,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// StatusFilter returns the status to filter by and whether a filter is set.
func (q GetAllDriversQuery) StatusFilter() (driver.Status, bool) {
	return q.statusFilter, q.hasFilter
}

// Validate ensures the query was created through a constructor.
// Returns ErrGetAllDriversQueryIsNotConstructed if validation fails.
func (q GetAllDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetAllDriversQueryIsNotConstructed)
}

// GetAllDriversQueryResponse represents driver information in the read model.
// Contains essential driver data for display and dispatch decisions, including
// the number of packages currently on the driver's route.
//
// Example:
//
//	response := GetAllDriversQueryResponse{
//	    ID:               driverID,
//	    Name:             "Alice Johnson",
//	    Phone:            "555-0100",
//	    VehicleType:      driver.VehicleBike,
//	    Status:           driver.StatusAvailable,
//	    TotalDeliveries:  42,
//	    ActiveDeliveries: 0,
//	}
type GetAllDriversQueryResponse struct {
	ID               kernel.ID
	Name             string
	Phone            string
	VehicleType      driver.VehicleType
	Status           driver.Status
	TotalDeliveries  int
	ActiveDeliveries int
}

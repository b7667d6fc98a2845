package queries

import (
	"errors"

	"courier/internal/core/domain/model/driver"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var ErrGetDriverPerformanceQueryIsNotConstructed = errors.New(
	"GetDriverPerformanceQuery must be created via NewGetDriverPerformanceQuery constructor",
)

// GetDriverPerformanceQuery retrieves delivery statistics per driver.
// Drivers are ranked by completed deliveries, most productive first, and the
// result is capped to the requested number of top performers.
//
// Example:
//
//	query, err := NewGetDriverPerformanceQuery(5)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetDriverPerformanceQueryHandler(db)
//	top, err := handler.Handle(ctx, query)
type GetDriverPerformanceQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewGetDriverPerformanceQuery creates a query for the top performing drivers.
// The limit must be positive.
func NewGetDriverPerformanceQuery(limit int) (GetDriverPerformanceQuery, error) {
	if limit <= 0 {
		return GetDriverPerformanceQuery{}, errs.NewValueIsInvalidError("limit")
	}

	return GetDriverPerformanceQuery{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Limit returns the maximum number of drivers to include in the ranking.
func (q GetDriverPerformanceQuery) Limit() int {
	return q.limit
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDriverPerformanceQueryIsNotConstructed if validation fails.
func (q GetDriverPerformanceQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverPerformanceQueryIsNotConstructed)
}

// GetDriverPerformanceQueryResponse ranks one driver in the performance
// report. CurrentLoad is the number of undelivered packages on the driver's
// route right now, while TotalDeliveries counts completed deliveries over the
// driver's lifetime.
type GetDriverPerformanceQueryResponse struct {
	DriverID        kernel.ID
	Name            string
	TotalDeliveries int
	CurrentLoad     int
	Status          driver.Status
}

package queries

import (
	"errors"

	"courier/internal/pkg/guard"
)

var ErrGetPackageSummaryQueryIsNotConstructed = errors.New(
	"GetPackageSummaryQuery must be created via NewGetPackageSummaryQuery constructor",
)

// GetPackageSummaryQuery produces aggregate package counts for dashboards.
// The counts bucket the delivery lifecycle into the stages operators care
// about: waiting for dispatch, assigned to a driver, moving, and done.
//
// Example:
//
//	query := NewGetPackageSummaryQuery()
//	handler := NewGetPackageSummaryQueryHandler(db)
//
//	summary, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d of %d packages delivered\n", summary.Delivered, summary.Total)
type GetPackageSummaryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPackageSummaryQuery creates a query for aggregate package statistics.
func NewGetPackageSummaryQuery() GetPackageSummaryQuery {
	return GetPackageSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPackageSummaryQueryIsNotConstructed if validation fails.
func (q GetPackageSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetPackageSummaryQueryIsNotConstructed)
}

// GetPackageSummaryQueryResponse holds aggregate package counts by lifecycle
// stage. InTransit collapses the three moving statuses (picked up, in
// transit, out for delivery) into a single bucket.
type GetPackageSummaryQueryResponse struct {
	Total     int
	Pending   int
	Assigned  int
	InTransit int
	Delivered int
}

package queries

import (
	"errors"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/packages"
	"courier/internal/pkg/guard"
)

var ErrGetAllPackagesQueryIsNotConstructed = errors.New(
	"GetAllPackagesQuery must be created via NewGetAllPackagesQuery constructor",
)

// GetAllPackagesQuery retrieves information about all packages in the system.
// Returns the full delivery lifecycle state of each package for monitoring
// and dashboard views. An optional status filter narrows the result to
// packages in a single status.
//
// Example:
//
//	query := NewGetAllPackagesQuery()
//	handler := NewGetAllPackagesQueryHandler(db)
//
//	pkgs, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve packages: %w", err)
//	}
//
//	for _, p := range pkgs {
//	    fmt.Printf("Package %s: %s -> %s (%s)\n",
//	        p.ID, p.SenderName, p.RecipientName, p.Status)
//	}
type GetAllPackagesQuery struct {
	statusFilter packages.Status
	hasFilter    bool

	guard guard.ConstructorGuard
}

// NewGetAllPackagesQuery creates a query to retrieve all packages regardless
// of status.
func NewGetAllPackagesQuery() GetAllPackagesQuery {
	return GetAllPackagesQuery{guard: guard.NewConstructorGuard()}
}

// NewGetAllPackagesQueryWithStatus creates a query restricted to packages in
// the given status. The status must already be validated by the caller,
// typically via packages.ParseStatus.
func NewGetAllPackagesQueryWithStatus(status packages.Status) (GetAllPackagesQuery, error) {
	if err := status.Validate(); err != nil {
		return GetAllPackagesQuery{}, err
	}

	return GetAllPackagesQuery{
		statusFilter: status,
		hasFilter:    true,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// StatusFilter returns the status to filter by and whether a filter is set.
func (q GetAllPackagesQuery) StatusFilter() (packages.Status, bool) {
	return q.statusFilter, q.hasFilter
}

// Validate ensures the query was created through a constructor.
// Returns ErrGetAllPackagesQueryIsNotConstructed if validation fails.
func (q GetAllPackagesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllPackagesQueryIsNotConstructed)
}

// GetAllPackagesQueryResponse represents package information in the read model.
// AssignedDriver and DeliveredAt are nil for packages that have not been
// assigned or delivered yet.
type GetAllPackagesQueryResponse struct {
	ID               kernel.ID
	SenderName       string
	SenderAddress    string
	RecipientName    string
	RecipientAddress string
	Weight           float64
	Status           packages.Status
	AssignedDriver   *kernel.ID
	CreatedAt        time.Time
	DeliveredAt      *time.Time
}

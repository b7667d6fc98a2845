package queries

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrGetPackageQueryIsNotConstructed = errors.New(
	"GetPackageQuery must be created via NewGetPackageQuery constructor",
)

// GetPackageQuery retrieves a single package by ID.
// Returns the same read model as GetAllPackagesQuery.
type GetPackageQuery struct {
	packageID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetPackageQuery creates a query for one package.
// Returns an error if the package ID is invalid.
func NewGetPackageQuery(packageID kernel.ID) (GetPackageQuery, error) {
	if err := packageID.Validate(); err != nil {
		return GetPackageQuery{}, err
	}

	return GetPackageQuery{
		packageID: packageID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// PackageID returns the identifier of the requested package.
func (q GetPackageQuery) PackageID() kernel.ID {
	return q.packageID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPackageQueryIsNotConstructed if validation fails.
func (q GetPackageQuery) Validate() error {
	return q.guard.Validate(ErrGetPackageQueryIsNotConstructed)
}

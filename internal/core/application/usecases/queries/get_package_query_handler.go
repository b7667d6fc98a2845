package queries

import (
	"context"

	"courier/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetPackageQueryHandler retrieves a single package read model from the database.
type GetPackageQueryHandler struct {
	db *gorm.DB
}

// NewGetPackageQueryHandler creates a handler for single package queries.
// Requires a GORM database connection for query execution.
func NewGetPackageQueryHandler(db *gorm.DB) GetPackageQueryHandler {
	return GetPackageQueryHandler{db: db}
}

// Handle executes the query to retrieve one package.
// Returns errs.ErrObjectNotFound if no package exists with the requested ID.
func (h GetPackageQueryHandler) Handle(
	ctx context.Context,
	query GetPackageQuery,
) (GetAllPackagesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAllPackagesQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			sender_name,
			sender_address,
			recipient_name,
			recipient_address,
			weight,
			status,
			assigned_driver,
			created_at,
			delivered_at
		FROM packages
		WHERE id = ?
	`, query.PackageID().String()).Rows()
	if err != nil {
		return GetAllPackagesQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetAllPackagesQueryResponse{}, err
		}
		return GetAllPackagesQueryResponse{}, errs.NewObjectNotFoundError("package", query.PackageID().String())
	}

	return scanPackageRow(rows)
}

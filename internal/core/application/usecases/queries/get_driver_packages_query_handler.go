package queries

import (
	"context"

	"courier/internal/core/domain/model/packages"

	"gorm.io/gorm"
)

// GetDriverPackagesQueryHandler retrieves a driver's active route from the
// database. Reuses the package read model produced by GetAllPackagesQuery
// since both queries project the same rows.
type GetDriverPackagesQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverPackagesQueryHandler creates a handler for driver route queries.
// Requires a GORM database connection for query execution.
func NewGetDriverPackagesQueryHandler(db *gorm.DB) GetDriverPackagesQueryHandler {
	return GetDriverPackagesQueryHandler{db: db}
}

// Handle executes the query to retrieve the driver's undelivered packages.
// Returns packages sorted by creation time so the oldest assignment comes
// first. The result is empty, not an error, when the driver has no active
// packages or does not exist.
func (h GetDriverPackagesQueryHandler) Handle(
	ctx context.Context,
	query GetDriverPackagesQuery,
) ([]GetAllPackagesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pkgs := make([]GetAllPackagesQueryResponse, 0)

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
		WHERE assigned_driver = ? AND status != ?
		ORDER BY created_at, id
	`, query.DriverID().String(), packages.StatusDelivered).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanPackageRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		pkgs = append(pkgs, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return pkgs, nil
}

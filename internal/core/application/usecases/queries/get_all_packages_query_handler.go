package queries

import (
	"context"
	"database/sql"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/packages"

	"gorm.io/gorm"
)

// GetAllPackagesQueryHandler retrieves all package information from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetAllPackagesQueryHandler(db)
//	query := NewGetAllPackagesQuery()
//
//	pkgs, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get packages: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d packages\n", len(pkgs))
type GetAllPackagesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllPackagesQueryHandler creates a handler for package retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetAllPackagesQueryHandler(db *gorm.DB) GetAllPackagesQueryHandler {
	return GetAllPackagesQueryHandler{db: db}
}

// Handle executes the query to retrieve all packages.
// Returns a slice of package read models sorted by creation time, oldest
// first, optionally filtered by status.
func (h GetAllPackagesQueryHandler) Handle(
	ctx context.Context,
	query GetAllPackagesQuery,
) ([]GetAllPackagesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
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
	`
	args := []any{}

	if status, ok := query.StatusFilter(); ok {
		sqlQuery += ` WHERE status = ?`
		args = append(args, status)
	}

	sqlQuery += ` ORDER BY created_at, id`

	pkgs := make([]GetAllPackagesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
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

// scanPackageRow converts a single SQL row into a package read model.
// Shared by every query that projects full package rows.
func scanPackageRow(rows *sql.Rows) (GetAllPackagesQueryResponse, error) {
	var resp GetAllPackagesQueryResponse
	var id, status string
	var assignedDriver sql.NullString
	var deliveredAt sql.NullTime

	err := rows.Scan(
		&id,
		&resp.SenderName,
		&resp.SenderAddress,
		&resp.RecipientName,
		&resp.RecipientAddress,
		&resp.Weight,
		&status,
		&assignedDriver,
		&resp.CreatedAt,
		&deliveredAt,
	)
	if err != nil {
		return GetAllPackagesQueryResponse{}, err
	}

	packageID, idErr := kernel.ParseID(id)
	if idErr != nil {
		return GetAllPackagesQueryResponse{}, idErr
	}
	resp.ID = packageID

	packageStatus, statusErr := packages.ParseStatus(status)
	if statusErr != nil {
		return GetAllPackagesQueryResponse{}, statusErr
	}
	resp.Status = packageStatus

	if assignedDriver.Valid {
		driverID, driverErr := kernel.ParseID(assignedDriver.String)
		if driverErr != nil {
			return GetAllPackagesQueryResponse{}, driverErr
		}
		resp.AssignedDriver = &driverID
	}

	if deliveredAt.Valid {
		delivered := deliveredAt.Time.UTC()
		resp.DeliveredAt = &delivered
	}
	resp.CreatedAt = resp.CreatedAt.UTC()

	return resp, nil
}

package queries

import (
	"context"

	"courier/internal/core/domain/model/driver"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/packages"

	"gorm.io/gorm"
)

// GetAllDriversQueryHandler retrieves all driver information from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
// The active delivery count is computed in the database by joining against
// the packages table, so the read model never loads full aggregates.
//
// Example:
//
//	handler := NewGetAllDriversQueryHandler(db)
//	query := NewGetAllDriversQuery()
//
//	drivers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get drivers: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d drivers\n", len(drivers))
type GetAllDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetAllDriversQueryHandler creates a handler for driver retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetAllDriversQueryHandler(db *gorm.DB) GetAllDriversQueryHandler {
	return GetAllDriversQueryHandler{db: db}
}

// Handle executes the query to retrieve all drivers.
// Returns a slice of driver read models sorted by name, optionally filtered
// by status. Converts database types to domain types for consistency.
func (h GetAllDriversQueryHandler) Handle(
	ctx context.Context,
	query GetAllDriversQuery,
) ([]GetAllDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			d.id,
			d.name,
			d.phone,
			d.vehicle_type,
			d.status,
			d.total_deliveries,
			COUNT(p.id) AS active_deliveries
		FROM drivers d
		LEFT JOIN packages p
			ON p.assigned_driver = d.id AND p.status != ?
	`
	args := []any{packages.StatusDelivered}

	if status, ok := query.StatusFilter(); ok {
		sql += ` WHERE d.status = ?`
		args = append(args, status)
	}

	sql += `
		GROUP BY d.id, d.name, d.phone, d.vehicle_type, d.status, d.total_deliveries
		ORDER BY d.name
	`

	drivers := make([]GetAllDriversQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllDriversQueryResponse
		var id, status, vehicleType string

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Phone,
			&vehicleType,
			&status,
			&resp.TotalDeliveries,
			&resp.ActiveDeliveries,
		)
		if err != nil {
			return nil, err
		}

		driverID, idErr := kernel.ParseID(id)
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = driverID

		driverStatus, statusErr := driver.ParseStatus(status)
		if statusErr != nil {
			return nil, statusErr
		}
		resp.Status = driverStatus

		driverVehicle, vehicleErr := driver.ParseVehicleType(vehicleType)
		if vehicleErr != nil {
			return nil, vehicleErr
		}
		resp.VehicleType = driverVehicle

		drivers = append(drivers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}

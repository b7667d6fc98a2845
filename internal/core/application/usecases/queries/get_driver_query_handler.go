package queries

import (
	"context"
	"database/sql"
	"errors"

	"courier/internal/core/domain/model/driver"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/packages"
	"courier/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDriverQueryHandler retrieves a single driver read model from the database.
type GetDriverQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverQueryHandler creates a handler for single driver queries.
// Requires a GORM database connection for query execution.
func NewGetDriverQueryHandler(db *gorm.DB) GetDriverQueryHandler {
	return GetDriverQueryHandler{db: db}
}

// Handle executes the query to retrieve one driver.
// Returns errs.ErrObjectNotFound if no driver exists with the requested ID.
func (h GetDriverQueryHandler) Handle(
	ctx context.Context,
	query GetDriverQuery,
) (GetAllDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAllDriversQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
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
		WHERE d.id = ?
		GROUP BY d.id, d.name, d.phone, d.vehicle_type, d.status, d.total_deliveries
	`, packages.StatusDelivered, query.DriverID().String()).Row()

	var resp GetAllDriversQueryResponse
	var id, status, vehicleType string

	err := row.Scan(
		&id,
		&resp.Name,
		&resp.Phone,
		&vehicleType,
		&status,
		&resp.TotalDeliveries,
		&resp.ActiveDeliveries,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetAllDriversQueryResponse{}, errs.NewObjectNotFoundError("driver", query.DriverID().String())
	}
	if err != nil {
		return GetAllDriversQueryResponse{}, err
	}

	driverID, err := kernel.ParseID(id)
	if err != nil {
		return GetAllDriversQueryResponse{}, err
	}
	resp.ID = driverID

	driverStatus, err := driver.ParseStatus(status)
	if err != nil {
		return GetAllDriversQueryResponse{}, err
	}
	resp.Status = driverStatus

	driverVehicle, err := driver.ParseVehicleType(vehicleType)
	if err != nil {
		return GetAllDriversQueryResponse{}, err
	}
	resp.VehicleType = driverVehicle

	return resp, nil
}

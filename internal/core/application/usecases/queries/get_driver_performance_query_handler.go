package queries

import (
	"context"

	"courier/internal/core/domain/model/driver"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/packages"

	"gorm.io/gorm"
)

// GetDriverPerformanceQueryHandler computes the driver leaderboard in the
// database. Ranking, load counting and the top-N cut all happen in SQL.
type GetDriverPerformanceQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverPerformanceQueryHandler creates a handler for driver
// performance queries. Requires a GORM database connection for query
// execution.
func NewGetDriverPerformanceQueryHandler(db *gorm.DB) GetDriverPerformanceQueryHandler {
	return GetDriverPerformanceQueryHandler{db: db}
}

// Handle executes the query to rank drivers by completed deliveries.
// Ties are broken by name so the ranking is stable between calls.
func (h GetDriverPerformanceQueryHandler) Handle(
	ctx context.Context,
	query GetDriverPerformanceQuery,
) ([]GetDriverPerformanceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	performers := make([]GetDriverPerformanceQueryResponse, 0, query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.name,
			d.total_deliveries,
			COUNT(p.id) AS current_load,
			d.status
		FROM drivers d
		LEFT JOIN packages p
			ON p.assigned_driver = d.id AND p.status != ?
		GROUP BY d.id, d.name, d.total_deliveries, d.status
		ORDER BY d.total_deliveries DESC, d.name
		LIMIT ?
	`, packages.StatusDelivered, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetDriverPerformanceQueryResponse
		var id, status string

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.TotalDeliveries,
			&resp.CurrentLoad,
			&status,
		)
		if err != nil {
			return nil, err
		}

		driverID, idErr := kernel.ParseID(id)
		if idErr != nil {
			return nil, idErr
		}
		resp.DriverID = driverID

		driverStatus, statusErr := driver.ParseStatus(status)
		if statusErr != nil {
			return nil, statusErr
		}
		resp.Status = driverStatus

		performers = append(performers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return performers, nil
}

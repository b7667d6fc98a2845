package queries

import (
	"context"

	"courier/internal/core/domain/model/packages"

	"gorm.io/gorm"
)

// GetPackageSummaryQueryHandler computes aggregate package counts in the
// database. A single GROUP BY query feeds all buckets, so the summary stays
// cheap even with a large package table.
type GetPackageSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetPackageSummaryQueryHandler creates a handler for package statistics
// queries. Requires a GORM database connection for query execution.
func NewGetPackageSummaryQueryHandler(db *gorm.DB) GetPackageSummaryQueryHandler {
	return GetPackageSummaryQueryHandler{db: db}
}

// Handle executes the query and buckets per-status counts into the summary.
// The three moving statuses all count toward InTransit.
func (h GetPackageSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetPackageSummaryQuery,
) (GetPackageSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPackageSummaryQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM packages
		GROUP BY status
	`).Rows()
	if err != nil {
		return GetPackageSummaryQueryResponse{}, err
	}
	defer rows.Close()

	var summary GetPackageSummaryQueryResponse

	for rows.Next() {
		var status string
		var count int

		if err = rows.Scan(&status, &count); err != nil {
			return GetPackageSummaryQueryResponse{}, err
		}

		summary.Total += count

		switch packages.Status(status) {
		case packages.StatusPending:
			summary.Pending += count
		case packages.StatusAssigned:
			summary.Assigned += count
		case packages.StatusPickedUp, packages.StatusInTransit, packages.StatusOutForDelivery:
			summary.InTransit += count
		case packages.StatusDelivered:
			summary.Delivered += count
		}
	}

	if err = rows.Err(); err != nil {
		return GetPackageSummaryQueryResponse{}, err
	}

	return summary, nil
}

package http

import (
	"errors"
	"net/http"
	"time"

	"courier/internal/core/application/usecases/queries"
	"courier/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Envelope is the uniform JSON shape of every API response.
// Status is "success" or "error"; Data is omitted when there is nothing to
// return.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func success(c echo.Context, code int, data any) error {
	return c.JSON(code, Envelope{Status: "success", Data: data})
}

func successMessage(c echo.Context, code int, message string, data any) error {
	return c.JSON(code, Envelope{Status: "success", Message: message, Data: data})
}

// fail maps domain errors onto HTTP status codes: conflicts and validation
// failures are client errors, missing objects are 404, everything else is a
// server error.
func fail(c echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		code = http.StatusBadRequest
	}

	return c.JSON(code, Envelope{Status: "error", Message: err.Error()})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Envelope{Status: "error", Message: message})
}

// driverResponse is the JSON shape of a driver in API responses.
type driverResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Phone            string `json:"phone"`
	VehicleType      string `json:"vehicle_type"`
	Status           string `json:"status"`
	TotalDeliveries  int    `json:"total_deliveries"`
	ActiveDeliveries int    `json:"active_deliveries"`
}

func toDriverResponse(d queries.GetAllDriversQueryResponse) driverResponse {
	return driverResponse{
		ID:               d.ID.String(),
		Name:             d.Name,
		Phone:            d.Phone,
		VehicleType:      string(d.VehicleType),
		Status:           string(d.Status),
		TotalDeliveries:  d.TotalDeliveries,
		ActiveDeliveries: d.ActiveDeliveries,
	}
}

// packageResponse is the JSON shape of a package in API responses.
type packageResponse struct {
	ID               string  `json:"id"`
	SenderName       string  `json:"sender_name"`
	SenderAddress    string  `json:"sender_address"`
	RecipientName    string  `json:"recipient_name"`
	RecipientAddress string  `json:"recipient_address"`
	Weight           float64 `json:"weight"`
	Status           string  `json:"status"`
	AssignedDriver   *string `json:"assigned_driver"`
	CreatedAt        string  `json:"created_at"`
	DeliveredAt      *string `json:"delivered_at"`
}

func toPackageResponse(p queries.GetAllPackagesQueryResponse) packageResponse {
	var assignedDriver *string
	if p.AssignedDriver != nil {
		raw := p.AssignedDriver.String()
		assignedDriver = &raw
	}

	var deliveredAt *string
	if p.DeliveredAt != nil {
		raw := p.DeliveredAt.Format(time.RFC3339)
		deliveredAt = &raw
	}

	return packageResponse{
		ID:               p.ID.String(),
		SenderName:       p.SenderName,
		SenderAddress:    p.SenderAddress,
		RecipientName:    p.RecipientName,
		RecipientAddress: p.RecipientAddress,
		Weight:           p.Weight,
		Status:           string(p.Status),
		AssignedDriver:   assignedDriver,
		CreatedAt:        p.CreatedAt.Format(time.RFC3339),
		DeliveredAt:      deliveredAt,
	}
}

// performerResponse is one row of the driver leaderboard.
type performerResponse struct {
	DriverID        string `json:"driver_id"`
	Name            string `json:"name"`
	TotalDeliveries int    `json:"total_deliveries"`
	CurrentLoad     int    `json:"current_load"`
	Status          string `json:"status"`
}

func toPerformerResponse(p queries.GetDriverPerformanceQueryResponse) performerResponse {
	return performerResponse{
		DriverID:        p.DriverID.String(),
		Name:            p.Name,
		TotalDeliveries: p.TotalDeliveries,
		CurrentLoad:     p.CurrentLoad,
		Status:          string(p.Status),
	}
}

// packageSummaryResponse holds the aggregate package counts for the stats API.
type packageSummaryResponse struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Assigned  int `json:"assigned"`
	InTransit int `json:"in_transit"`
	Delivered int `json:"delivered"`
}

package tcp

import (
	"encoding/json"
	"time"

	"courier/internal/core/application/usecases/queries"
)

// Actions a driver client can request over the socket.
const (
	ActionLogin               = "login"
	ActionGetMyPackages       = "get_my_packages"
	ActionUpdatePackageStatus = "update_package_status"
	ActionCompleteDelivery    = "complete_delivery"
	ActionGetDriverInfo       = "get_driver_info"
	ActionGetPackageDetails   = "get_package_details"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Request is one newline-delimited JSON frame from a driver client.
// Data is decoded per-action.
type Request struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

// Response is the frame written back for every request.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type driverIDPayload struct {
	DriverID string `json:"driver_id"`
}

type packageIDPayload struct {
	PackageID string `json:"package_id"`
}

type updatePackageStatusPayload struct {
	PackageID string `json:"package_id"`
	Status    string `json:"status"`
}

type driverPayload struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Phone            string `json:"phone"`
	VehicleType      string `json:"vehicle_type"`
	Status           string `json:"status"`
	TotalDeliveries  int    `json:"total_deliveries"`
	ActiveDeliveries int    `json:"active_deliveries"`
}

func toDriverPayload(d queries.GetAllDriversQueryResponse) driverPayload {
	return driverPayload{
		ID:               d.ID.String(),
		Name:             d.Name,
		Phone:            d.Phone,
		VehicleType:      d.VehicleType.String(),
		Status:           d.Status.String(),
		TotalDeliveries:  d.TotalDeliveries,
		ActiveDeliveries: d.ActiveDeliveries,
	}
}

type packagePayload struct {
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

func toPackagePayload(p queries.GetAllPackagesQueryResponse) packagePayload {
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

	return packagePayload{
		ID:               p.ID.String(),
		SenderName:       p.SenderName,
		SenderAddress:    p.SenderAddress,
		RecipientName:    p.RecipientName,
		RecipientAddress: p.RecipientAddress,
		Weight:           p.Weight,
		Status:           p.Status.String(),
		AssignedDriver:   assignedDriver,
		CreatedAt:        p.CreatedAt.Format(time.RFC3339),
		DeliveredAt:      deliveredAt,
	}
}

package http

import (
	"time"

	"github.com/shopspring/decimal"
)

type errorResponse struct {
	Code    int    `json:"code"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

type createdResponse struct {
	ID int64 `json:"id"`
}

type assignmentCreatedResponse struct {
	AssignmentID string `json:"assignment_id"`
}

type registerCustomerRequest struct {
	CustomerID int64  `json:"customer_id" validate:"required,gt=0"`
	Name       string `json:"name" validate:"required,max=100"`
	Contact    string `json:"contact" validate:"max=50"`
}

type registerLocationRequest struct {
	LocationID       int64  `json:"location_id" validate:"required,gt=0"`
	Name             string `json:"name" validate:"required,max=100"`
	ParentLocationID *int64 `json:"parent_location_id" validate:"omitempty,gt=0"`
	PostalCode       string `json:"postal_code" validate:"max=20"`
}

type registerAgentRequest struct {
	AgentID  int64  `json:"agent_id" validate:"required,gt=0"`
	Name     string `json:"name" validate:"required,max=100"`
	Contacts string `json:"contacts" validate:"max=100"`
}

type registerDriverRequest struct {
	DriverID      int64  `json:"driver_id" validate:"required,gt=0"`
	Name          string `json:"name" validate:"required,max=100"`
	LicenseNumber string `json:"license_number" validate:"required,max=50"`
	Contact       string `json:"contact" validate:"max=50"`
	CapacityLimit int    `json:"capacity_limit" validate:"gte=0,lte=1000"`
}

type createShipmentRequest struct {
	ShipmentID            int64     `json:"shipment_id" validate:"required,gt=0"`
	SenderID              int64     `json:"sender_id" validate:"required,gt=0"`
	RecipientID           int64     `json:"recipient_id" validate:"required,gt=0"`
	OriginID              int64     `json:"origin_id" validate:"required,gt=0"`
	DestinationID         int64     `json:"destination_id" validate:"required,gt=0"`
	EstimatedDeliveryTime time.Time `json:"estimated_delivery_time" validate:"required"`
}

// Weight accepts a JSON number or string; the command checks its range.
type addPackageRequest struct {
	PackageID   int64           `json:"package_id" validate:"required,gt=0"`
	Weight      decimal.Decimal `json:"weight"`
	Description string          `json:"description" validate:"required,max=500"`
	AgentID     int64           `json:"agent_id" validate:"required,gt=0"`
}

type updateStatusRequest struct {
	Status     string `json:"status" validate:"required,oneof=pending in_transit delivered returned"`
	AgentID    int64  `json:"agent_id" validate:"required,gt=0"`
	Notes      string `json:"notes"`
	LocationID *int64 `json:"location_id" validate:"omitempty,gt=0"`
}

type assignShipmentRequest struct {
	ShipmentID            int64     `json:"shipment_id" validate:"required,gt=0"`
	StartLocationID       int64     `json:"start_location_id" validate:"required,gt=0"`
	EndLocationID         int64     `json:"end_location_id" validate:"required,gt=0"`
	EstimatedPickupTime   time.Time `json:"estimated_pickup_time" validate:"required"`
	EstimatedDeliveryTime time.Time `json:"estimated_delivery_time" validate:"required"`
}

type movePackageRequest struct {
	FromShipmentID int64  `json:"from_shipment_id" validate:"required,gt=0"`
	ToShipmentID   int64  `json:"to_shipment_id" validate:"required,gt=0,nefield=FromShipmentID"`
	AgentID        int64  `json:"agent_id" validate:"required,gt=0"`
	Reason         string `json:"reason" validate:"required,oneof=reassignment consolidation split_shipment damage customer_request other"`
	Notes          string `json:"notes"`
}

type statusLogEntry struct {
	ShipmentID            int64      `json:"shipment_id"`
	CurrentStatus         string     `json:"current_status"`
	EstimatedDeliveryTime time.Time  `json:"estimated_delivery_time"`
	ActualDelivery        *time.Time `json:"actual_delivery,omitempty"`
	LogStatus             string     `json:"log_status,omitempty"`
	Timestamp             *time.Time `json:"timestamp,omitempty"`
	LocationName          string     `json:"location_name,omitempty"`
	PostalCode            string     `json:"postal_code,omitempty"`
	AgentName             string     `json:"agent_name,omitempty"`
	Notes                 string     `json:"notes,omitempty"`
}

type pendingShipment struct {
	ShipmentID            int64     `json:"shipment_id"`
	Sender                string    `json:"sender"`
	Recipient             string    `json:"recipient"`
	Origin                string    `json:"origin"`
	Destination           string    `json:"destination"`
	EstimatedDeliveryTime time.Time `json:"estimated_delivery_time"`
	AssignedAt            time.Time `json:"assigned_at"`
	EstimatedPickupTime   time.Time `json:"estimated_pickup_time"`
}

type delayedShipment struct {
	ShipmentID            int64      `json:"shipment_id"`
	Sender                string     `json:"sender"`
	Recipient             string     `json:"recipient"`
	EstimatedDeliveryTime time.Time  `json:"estimated_delivery_time"`
	ActualDelivery        *time.Time `json:"actual_delivery,omitempty"`
	DelayHours            int64      `json:"delay_hours"`
	DriverName            string     `json:"driver_name,omitempty"`
	DriverContact         string     `json:"driver_contact,omitempty"`
}

type dailyVolume struct {
	Date             string          `json:"date"`
	OriginLocationID int64           `json:"origin_location_id"`
	OriginLocation   string          `json:"origin_location"`
	OriginPostalCode string          `json:"origin_postal_code"`
	TotalShipments   int64           `json:"total_shipments"`
	Delivered        int64           `json:"delivered"`
	InTransit        int64           `json:"in_transit"`
	Pending          int64           `json:"pending"`
	TotalWeight      decimal.Decimal `json:"total_weight"`
}

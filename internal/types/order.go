package types

import (
	"encoding/json"
	"time"
)

type Status string

const (
	PendingStatus    Status = "pending"
	ConfirmedStatus  Status = "confirmed"
	ProductionStatus Status = "production"
	ReadyStatus      Status = "ready"
	DeliveredStatus  Status = "delivered"
	CancelledStatus  Status = "cancelled"
)

// statusRank orders the forward lifecycle. Cancelled sits outside it.
var statusRank = map[Status]int{
	PendingStatus:    0,
	ConfirmedStatus:  1,
	ProductionStatus: 2,
	ReadyStatus:      3,
	DeliveredStatus:  4,
}

func (s Status) Valid() bool {
	if s == CancelledStatus {
		return true
	}
	_, ok := statusRank[s]
	return ok
}

func (s Status) Terminal() bool {
	return s == DeliveredStatus || s == CancelledStatus
}

// CanTransitionTo reports whether an order in status s may move to next.
// Steps may be skipped but never undone; cancelled is reachable from any
// non-terminal status.
func (s Status) CanTransitionTo(next Status) bool {
	if !s.Valid() || !next.Valid() || s.Terminal() {
		return false
	}
	if next == CancelledStatus {
		return true
	}
	return statusRank[next] > statusRank[s]
}

type PlateType string

const (
	Plate3D    PlateType = "3d"
	PlateVinyl PlateType = "vinyl"
)

type VehicleType string

const (
	VehicleCar        VehicleType = "car"
	VehicleMotorcycle VehicleType = "motorcycle"
)

type PlateShape string

const (
	ShapeStandard PlateShape = "standard"
	ShapeCompact  PlateShape = "compact"
)

type Mounting string

const (
	MountingHoles Mounting = "holes"
	MountingTape  Mounting = "tape"
)

type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// OrderDraft is the configurator payload submitted at checkout.
type OrderDraft struct {
	PlateType       PlateType       `json:"plateType"`
	VehicleType     VehicleType     `json:"vehicleType"`
	PlateShape      PlateShape      `json:"plateShape"`
	Dimensions      Dimensions      `json:"dimensions"`
	PlateNumber     string          `json:"plateNumber"`
	MountingOption  Mounting        `json:"mountingOption"`
	FullName        string          `json:"fullName"`
	Phone           string          `json:"phone"`
	Address         string          `json:"address"`
	AdditionalNotes string          `json:"additionalNotes,omitempty"`
	TotalPrice      int             `json:"totalPrice"`
	OrderData       json.RawMessage `json:"orderData,omitempty"`
}

type Order struct {
	ID              string          `json:"id" db:"id"`
	TenantID        string          `json:"tenant_id" db:"tenant_id"`
	ProjectID       string          `json:"project_id" db:"project_id"`
	OrderNumber     string          `json:"order_number" db:"order_number"`
	CustomerName    string          `json:"customer_name" db:"customer_name"`
	CustomerPhone   string          `json:"customer_phone" db:"customer_phone"`
	CustomerAddress string          `json:"customer_address" db:"customer_address"`
	PlateNumber     string          `json:"plate_number" db:"plate_number"`
	VehicleType     VehicleType     `json:"vehicle_type" db:"vehicle_type"`
	PlateType       PlateType       `json:"plate_type" db:"plate_type"`
	PlateShape      PlateShape      `json:"plate_shape" db:"plate_shape"`
	MountingOption  Mounting        `json:"mounting_option" db:"mounting_option"`
	Dimensions      Dimensions      `json:"dimensions" db:"dimensions"`
	TotalPrice      int             `json:"total_price" db:"total_price"`
	AdditionalNotes *string         `json:"additional_notes" db:"additional_notes"`
	OrderData       json.RawMessage `json:"order_data" db:"order_data"`
	Status          Status          `json:"status" db:"status"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at" db:"updated_at"`
}

// Scope identifies the tenant/project partition every row belongs to.
type Scope struct {
	TenantID  string `json:"tenantId"`
	ProjectID string `json:"projectId"`
}

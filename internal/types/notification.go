package types

import (
	"fmt"
	"time"
)

type NotificationSettings struct {
	ID              string     `json:"id,omitempty" db:"id"`
	EmailEnabled    bool       `json:"email_enabled" db:"email_enabled"`
	EmailAddress    *string    `json:"email_address" db:"email_address"`
	WhatsAppEnabled bool       `json:"whatsapp_enabled" db:"whatsapp_enabled"`
	WhatsAppNumber  *string    `json:"whatsapp_number" db:"whatsapp_number"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

// SettingsUpdate carries a partial settings change. Nil fields are left as
// they are; an empty address or number clears it.
type SettingsUpdate struct {
	EmailEnabled    *bool   `json:"email_enabled"`
	EmailAddress    *string `json:"email_address"`
	WhatsAppEnabled *bool   `json:"whatsapp_enabled"`
	WhatsAppNumber  *string `json:"whatsapp_number"`
}

// OrderSummary is the notification job produced for every placed order.
type OrderSummary struct {
	Scope         Scope       `json:"scope"`
	OrderID       string      `json:"orderId"`
	OrderNumber   string      `json:"orderNumber"`
	CustomerName  string      `json:"customerName"`
	CustomerPhone string      `json:"customerPhone"`
	PlateNumber   string      `json:"plateNumber"`
	VehicleType   VehicleType `json:"vehicleType"`
	PlateType     PlateType   `json:"plateType"`
	TotalPrice    int         `json:"totalPrice"`
}

func NewOrderSummary(o *Order) OrderSummary {
	return OrderSummary{
		Scope:         Scope{TenantID: o.TenantID, ProjectID: o.ProjectID},
		OrderID:       o.ID,
		OrderNumber:   o.OrderNumber,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		PlateNumber:   o.PlateNumber,
		VehicleType:   o.VehicleType,
		PlateType:     o.PlateType,
		TotalPrice:    o.TotalPrice,
	}
}

type Channel string

const (
	EmailChannel    Channel = "email"
	WhatsAppChannel Channel = "whatsapp"
)

type DeliveryStatus string

const (
	DeliverySent   DeliveryStatus = "sent"
	DeliveryFailed DeliveryStatus = "failed"
)

type Outcome struct {
	Channel Channel        `json:"type"`
	Status  DeliveryStatus `json:"status"`
	Error   string         `json:"error,omitempty"`
}

type DispatchResult struct {
	Success       bool      `json:"success"`
	Notifications []Outcome `json:"notifications"`
	Attempted     int       `json:"attempted"`
	Sent          int       `json:"sent"`
	Message       string    `json:"message"`
}

// NewDispatchResult tallies outcomes into the response envelope.
func NewDispatchResult(outcomes []Outcome) DispatchResult {
	if outcomes == nil {
		outcomes = []Outcome{}
	}
	res := DispatchResult{Success: true, Notifications: outcomes, Attempted: len(outcomes)}
	for _, o := range outcomes {
		if o.Status == DeliverySent {
			res.Sent++
		}
	}
	if res.Attempted == 0 {
		res.Message = "No notifications configured"
	} else {
		res.Message = fmt.Sprintf("Sent %d of %d notifications", res.Sent, res.Attempted)
	}
	return res
}

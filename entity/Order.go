package entity

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderFulfilled OrderStatus = "fulfilled"
	OrderCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderFulfilled, OrderCancelled:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentOnline  PaymentMethod = "online"
	PaymentOffline PaymentMethod = "offline"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentOnline || m == PaymentOffline
}

// OrderLine is the denormalized snapshot of one cart line taken at checkout.
// Orders embed copies, not references to live menu items.
type OrderLine struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Quantity    int    `json:"quantity"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

type Order struct {
	gorm.Model
	// OrderToken is the human-facing identifier (ORD-XXXXXX) shown to the
	// customer and staff. The row id stays internal.
	OrderToken    string          `gorm:"uniqueIndex;size:16" json:"orderId"`
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail,omitempty"`
	CustomerPhone string          `json:"customerPhone"`
	PickupTime    string          `json:"pickupTime"`
	Items         datatypes.JSON  `json:"items"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(10,2)" json:"totalAmount"`
	Status        OrderStatus     `gorm:"size:16;default:pending" json:"status"`
	PaymentMethod PaymentMethod   `gorm:"size:16" json:"paymentMethod"`
	// PaymentSessionRef holds the processor's checkout session id for online
	// orders; empty for pay-at-pickup.
	PaymentSessionRef string `json:"paymentSessionRef,omitempty"`
}

// ValidateOrderStatus is shared by every handler that accepts an order status.
// Transition legality is intentionally not checked: any status may follow any
// other, matching current back-office behavior.
func ValidateOrderStatus(raw string) (OrderStatus, error) {
	s := OrderStatus(strings.ToLower(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", errors.New("status must be one of pending, fulfilled, cancelled")
	}
	return s, nil
}

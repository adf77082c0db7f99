package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	// The user's open cart. At most one order per user holds this status.
	OrderStatusInProgress OrderStatus = "In Progress"
	OrderStatusConfirmed  OrderStatus = "Confirmed"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCanceled   OrderStatus = "Canceled"
)

// ShippingFee is the flat fee added to every non-empty cart (40 LE).
var ShippingFee = decimal.NewFromInt(40)

var validNext = map[OrderStatus]map[OrderStatus]bool{
	OrderStatusConfirmed:  {OrderStatusInProgress: true, OrderStatusDelivered: true, OrderStatusCanceled: true},
	OrderStatusInProgress: {OrderStatusDelivered: true, OrderStatusCanceled: true},
	OrderStatusDelivered:  {},
	OrderStatusCanceled:   {},
}

func CanTransition(from, to OrderStatus) bool {
	return validNext[from][to]
}

// ParseOrderStatus maps a request string to a known status.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case OrderStatusInProgress, OrderStatusConfirmed, OrderStatusDelivered, OrderStatusCanceled:
		return OrderStatus(s), true
	}
	return "", false
}

type Order struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	UserID          string          `gorm:"not null;index" json:"user_id"`
	User            User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Status          OrderStatus     `gorm:"type:VARCHAR(20);default:'In Progress'" json:"status"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_amount"`
	ShippingFee     decimal.Decimal `gorm:"type:decimal(10,2)" json:"shipping_fee"`
	CustomerName    string          `json:"customer_name"`
	CustomerPhone   string          `json:"customer_phone"`
	CustomerAddress string          `json:"customer_address"`
	CustomerEmail   string          `json:"customer_email"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type OrderItem struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	OrderID       uint            `gorm:"index;uniqueIndex:idx_order_bag_color" json:"order_id"`
	BagID         uint            `gorm:"uniqueIndex:idx_order_bag_color" json:"bag_id"`
	Bag           Bag             `gorm:"foreignKey:BagID" json:"bag,omitempty"`
	Quantity      int             `gorm:"not null" json:"quantity"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"` // unit price at add time
	SelectedColor string          `gorm:"uniqueIndex:idx_order_bag_color" json:"selected_color"`
}

package model

import (
	"strings"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusDone      OrderStatus = "done"
	OrderStatusCanceled  OrderStatus = "canceled"
)

// OrderStatuses は adminが設定できる値。エラーメッセージにもこの順で出す。
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusDone,
	OrderStatusCanceled,
}

func IsValidOrderStatus(s OrderStatus) bool {
	for _, v := range OrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func OrderStatusList() string {
	names := make([]string, 0, len(OrderStatuses))
	for _, v := range OrderStatuses {
		names = append(names, string(v))
	}
	return strings.Join(names, ", ")
}

type DeliveryMode string

const (
	DeliveryModePickup   DeliveryMode = "pickup"
	DeliveryModeDelivery DeliveryMode = "delivery"
)

type Order struct {
	ID     string      `gorm:"type:uuid;primaryKey" json:"id"`
	Code   string      `gorm:"type:varchar(20);not null;uniqueIndex" json:"code"`
	Status OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`

	TotalCents    int64  `gorm:"not null" json:"total_cents"`
	PaymentMethod string `gorm:"type:varchar(20)" json:"payment_method"`
	PaymentPaid   bool   `gorm:"not null;default:false" json:"payment_paid"`

	CustomerName  string `gorm:"type:varchar(255)" json:"customer_name"`
	CustomerPhone string `gorm:"type:varchar(50)" json:"customer_phone"`
	Note          string `gorm:"type:text" json:"note"`

	DeliveryMode      DeliveryMode `gorm:"type:varchar(10);not null;default:'pickup'" json:"delivery_mode"`
	AddressStreet     string       `gorm:"type:varchar(255)" json:"address_street"`
	AddressPostalCode string       `gorm:"type:varchar(20)" json:"address_postal_code"`
	AddressCity       string       `gorm:"type:varchar(100)" json:"address_city"`
	DeliveryFeeCents  int64        `gorm:"not null;default:0" json:"delivery_fee_cents"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

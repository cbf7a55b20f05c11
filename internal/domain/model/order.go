package model

import (
	"errors"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending       OrderStatus = "pending"
	OrderStatusPaid          OrderStatus = "paid"
	OrderStatusPaymentFailed OrderStatus = "payment_failed"
	OrderStatusProcessing    OrderStatus = "processing"
	OrderStatusShipped       OrderStatus = "shipped"
	OrderStatusDelivered     OrderStatus = "delivered"
	OrderStatusCancelled     OrderStatus = "cancelled"
)

var validOrderStatuses = map[OrderStatus]struct{}{
	OrderStatusPending:       {},
	OrderStatusPaid:          {},
	OrderStatusPaymentFailed: {},
	OrderStatusProcessing:    {},
	OrderStatusShipped:       {},
	OrderStatusDelivered:     {},
	OrderStatusCancelled:     {},
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if _, ok := validOrderStatuses[status]; ok {
		return status, nil
	}
	return "", errors.New("invalid order status")
}

type Order struct {
	ID              int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	ArtworkID       int64       `gorm:"not null;index" json:"artwork_id"`
	CustomerName    string      `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerEmail   string      `gorm:"type:varchar(255);not null" json:"customer_email"`
	CustomerPhone   string      `gorm:"type:varchar(50);not null" json:"customer_phone"`
	DeliveryAddress string      `gorm:"type:text;not null" json:"delivery_address"`
	TotalMinor      int64       `gorm:"not null" json:"total_minor"`
	Currency        string      `gorm:"type:varchar(3);not null;default:'RUB'" json:"currency"`
	Status          OrderStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	PaymentID       *string     `gorm:"type:varchar(255)" json:"payment_id"`
	CreatedAt       time.Time   `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time   `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

package model

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCanceled  OrderStatus = "Canceled"
)

type Order struct {
	ID          int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      int64       `gorm:"not null;index" json:"userId"`
	Status      OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	TotalAmount int64       `gorm:"not null" json:"totalAmount"`
	CreatedAt   time.Time   `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time   `gorm:"not null;autoUpdateTime" json:"-"`
}

package model

import "time"

// 注文時点のカートのコピー。
// 注文後にカートや商品が変わってもこの行は変わらない。
type OrderProduct struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"-"`
	OrderID   int64     `gorm:"not null;index" json:"-"`
	ProductID int64     `gorm:"not null;index" json:"productId"`
	Quantity  int64     `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"-"`
}

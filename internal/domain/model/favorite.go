package model

import "time"

// お気に入り（操作APIは別系統。ここではスキーマのみ）
type Favorite struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"not null;index" json:"userId"`
	ProductID int64     `gorm:"not null;index" json:"productId"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"-"`
}

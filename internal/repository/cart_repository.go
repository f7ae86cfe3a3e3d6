package repository

import (
	"context"

	"paridhan/internal/domain/model"
)

type CartRepository interface {
	// カートの中身を追加順で返す
	ListByUserID(ctx context.Context, userID int64) ([]model.CartItem, error)
	// カートを空にする（注文確定後）
	ClearByUserID(ctx context.Context, userID int64) error
	// 同一商品は数量加算
	Upsert(ctx context.Context, userID int64, productID int64, addQty int64) error
}

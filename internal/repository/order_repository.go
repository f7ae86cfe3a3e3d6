package repository

import (
	"context"

	"paridhan/internal/domain/model"
)

type OrderRepository interface {
	// 注文とスナップショット明細をまとめて作成する
	Create(ctx context.Context, order model.Order, products []model.OrderProduct) (int64, error)
	// 自分の注文一覧（作成順）
	ListByUserID(ctx context.Context, userID int64) ([]model.Order, error)
	// 明細を注文IDで取得
	ListProductsByOrderID(ctx context.Context, orderID int64) ([]model.OrderProduct, error)
	// idと所有者の両方で1件検索。他人の注文は「存在しない扱い」。
	FindByIDAndUserID(ctx context.Context, orderID int64, userID int64) (model.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
}

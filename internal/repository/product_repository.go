package repository

import (
	"context"
	"errors"

	"paridhan/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 商品の永続化（取得のみ）を約束。
// このワークフローから商品は書き換えない。
type ProductRepository interface {
	ListAll(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
	FindByIDs(ctx context.Context, ids []int64) (map[int64]model.Product, error)
}

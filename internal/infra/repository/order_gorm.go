package repository

import (
	"context"
	"errors"

	"paridhan/internal/domain/model"
	repo "paridhan/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

// 注文と明細をまとめて作成
func (r *OrderGormRepository) Create(ctx context.Context, order model.Order, products []model.OrderProduct) (int64, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for i := range products {
			products[i].OrderID = order.ID
		}
		if len(products) > 0 {
			if err := tx.Create(&products).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return order.ID, nil
}

// 自分の注文一覧（作成順）
func (r *OrderGormRepository) ListByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	var items []model.Order

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return []model.Order{}, err
	}

	return items, nil
}

func (r *OrderGormRepository) ListProductsByOrderID(ctx context.Context, orderID int64) ([]model.OrderProduct, error) {
	var items []model.OrderProduct

	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return []model.OrderProduct{}, err
	}

	return items, nil
}

// idと所有者の両方で検索。どちらか外れたら ErrNotFound。
// 取消の読み→更新の間に他のトランザクションが挟まらないよう行ロックを取る。
func (r *OrderGormRepository) FindByIDAndUserID(ctx context.Context, orderID int64, userID int64) (model.Order, error) {
	var o model.Order

	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&o).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (r *OrderGormRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", orderID).
		Update("status", status)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

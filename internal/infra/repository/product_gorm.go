package repository

import (
	"context"
	"errors"

	"paridhan/internal/domain/model"
	repo "paridhan/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// 全商品を返す（絞り込みなし）
func (r *ProductGormRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	var items []model.Product

	if err := r.db.WithContext(ctx).
		Order("id asc").
		Find(&items).Error; err != nil {
		return []model.Product{}, err
	}

	return items, nil
}

func (r *ProductGormRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 複数IDをまとめて引く。見つかった分だけmapに入る。
func (r *ProductGormRepository) FindByIDs(ctx context.Context, ids []int64) (map[int64]model.Product, error) {
	out := make(map[int64]model.Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var items []model.Product
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&items).Error; err != nil {
		return nil, err
	}

	for _, p := range items {
		out[p.ID] = p
	}
	return out, nil
}

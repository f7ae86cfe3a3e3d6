package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"paridhan/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

// Test: 全商品がそのまま返る
func TestListProducts(t *testing.T) {
	productRepo := new(MockProductRepository)
	uc := NewProductUsecase(productRepo)

	ctx := context.Background()
	productRepo.On("ListAll", ctx).Return([]model.Product{
		{ID: 1, Name: "Kurta", Price: 1800, Image: "https://img.example.com/kurta.jpg"},
		{ID: 2, Name: "Saree", Price: 5200, Image: "https://img.example.com/saree.jpg"},
	}, nil)

	items, err := uc.ListProducts(ctx)

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "Kurta", items[0].Name)
}

// Test: DB障害は500
func TestListProducts_DBError(t *testing.T) {
	productRepo := new(MockProductRepository)
	uc := NewProductUsecase(productRepo)

	ctx := context.Background()
	productRepo.On("ListAll", ctx).Return([]model.Product(nil), errors.New("boom"))

	_, err := uc.ListProducts(ctx)

	he := mustHTTPError(t, err)
	assert.Equal(t, http.StatusInternalServerError, he.Status)
	assert.Equal(t, "Internal Server Error", he.Message)
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"paridhan/internal/domain/model"
	"paridhan/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newProductTestServer(productRepo *MockProductRepoForHandler) *echo.Echo {
	uc := usecase.NewProductUsecase(productRepo)
	h := NewProductHandler(uc)

	e := echo.New()
	h.RegisterRoutes(e)
	return e
}

// Test: 認証無しで全商品が返る
func TestListProductsHandler_OK(t *testing.T) {
	productRepo := new(MockProductRepoForHandler)
	e := newProductTestServer(productRepo)

	productRepo.On("ListAll", mock.Anything).Return([]model.Product{
		{ID: 1, Name: "Kurta", Price: 1800, Image: "https://img.example.com/kurta.jpg"},
		{ID: 2, Name: "Saree", Price: 5200, Image: "https://img.example.com/saree.jpg"},
	}, nil)

	rec := doRequest(t, e, http.MethodGet, "/products", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	var items []model.Product
	if err := json.NewDecoder(rec.Body).Decode(&items); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	assert.Len(t, items, 2)
	assert.Equal(t, "Saree", items[1].Name)
}

// Test: DB障害は500 Internal Server Error
func TestListProductsHandler_DBError(t *testing.T) {
	productRepo := new(MockProductRepoForHandler)
	e := newProductTestServer(productRepo)

	productRepo.On("ListAll", mock.Anything).Return([]model.Product(nil), errors.New("boom"))

	rec := doRequest(t, e, http.MethodGet, "/products", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal Server Error", decodeError(t, rec).Error)
}

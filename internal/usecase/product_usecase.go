package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"paridhan/internal/domain/model"
	repo "paridhan/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

type ProductUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo}
}

// 全商品を返す。絞り込み・ページングなし。
func (u *ProductUsecase) ListProducts(ctx context.Context) ([]model.Product, error) {
	items, err := u.productRepo.ListAll(ctx)
	if err != nil {
		return []model.Product{}, NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
	}
	return items, nil
}

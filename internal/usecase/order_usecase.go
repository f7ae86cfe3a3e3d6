package usecase

import (
	"context"
	"net/http"
	"time"

	"paridhan/internal/config"
	"paridhan/internal/domain/model"
	repo "paridhan/internal/repository"
)

type OrderUsecase struct {
	tx repo.TransactionManager

	// 合計計算時に商品が消えていたときの扱い（config.MissingProductSkip/Fail）
	missingProductPolicy string
}

func NewOrderUsecase(tx repo.TransactionManager, missingProductPolicy string) *OrderUsecase {
	if missingProductPolicy == "" {
		missingProductPolicy = config.MissingProductSkip
	}
	return &OrderUsecase{tx: tx, missingProductPolicy: missingProductPolicy}
}

type OrderLineOutput struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`

	// 一覧用。消えた商品はnull。
	Product *model.Product `json:"product,omitempty"`
}

type OrderOutput struct {
	ID          int64             `json:"id"`
	UserID      int64             `json:"userId"`
	Products    []OrderLineOutput `json:"products"`
	TotalAmount int64             `json:"totalAmount"`
	Status      string            `json:"status"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// PlaceOrder はカートを注文に変換する。
// 注文作成とカートのクリアは同一トランザクション。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, userID int64) (OrderOutput, error) {
	if userID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "Access denied")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//本人確認。消えたユーザーはクラッシュではなく404。
		if _, err := r.Users().FindByID(ctx, userID); err != nil {
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusNotFound, "User not found")
			}
			return NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
		}

		//カート取得
		cart, err := r.Carts().ListByUserID(ctx, userID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
		}
		if len(cart) == 0 {
			return NewHTTPError(http.StatusBadRequest, "Cart is empty")
		}

		//商品をまとめて引く
		ids := make([]int64, 0, len(cart))
		for _, line := range cart {
			ids = append(ids, line.ProductID)
		}
		products, err := r.Products().FindByIDs(ctx, ids)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
		}

		//合計。消えた商品はポリシー次第（skip=0円扱い / fail=拒否）。
		var total int64 = 0
		for _, line := range cart {
			p, ok := products[line.ProductID]
			if !ok {
				if u.missingProductPolicy == config.MissingProductFail {
					return NewHTTPError(http.StatusBadRequest, "Cart contains an unavailable product")
				}
				continue
			}
			total += p.Price * line.Quantity
		}

		//スナップショット。消えた商品の行もカートのまま写す。
		snapshot := make([]model.OrderProduct, 0, len(cart))
		for _, line := range cart {
			snapshot = append(snapshot, model.OrderProduct{
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
			})
		}

		// 注文作成
		now := time.Now()
		order := model.Order{
			UserID:      userID,
			Status:      model.OrderStatusPending,
			TotalAmount: total,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		orderID, err := r.Orders().Create(ctx, order, snapshot)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
		}

		//注文できたらカートを空にする
		if err := r.Carts().ClearByUserID(ctx, userID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
		}

		lines := make([]OrderLineOutput, 0, len(snapshot))
		for _, s := range snapshot {
			lines = append(lines, OrderLineOutput{ProductID: s.ProductID, Quantity: s.Quantity})
		}

		out = OrderOutput{
			ID:          orderID,
			UserID:      userID,
			Products:    lines,
			TotalAmount: total,
			Status:      string(model.OrderStatusPending),
			CreatedAt:   now,
		}
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// ListMyOrders は自分の注文一覧。明細の商品を解決して返す。
func (u *OrderUsecase) ListMyOrders(ctx context.Context, userID int64) ([]OrderOutput, error) {
	if userID <= 0 {
		return []OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "Access denied")
	}

	var outs []OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().ListByUserID(ctx, userID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
		}

		outs = make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			lines, err := r.Orders().ListProductsByOrderID(ctx, o.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
			}

			ids := make([]int64, 0, len(lines))
			for _, line := range lines {
				ids = append(ids, line.ProductID)
			}
			products, err := r.Products().FindByIDs(ctx, ids)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
			}

			outLines := make([]OrderLineOutput, 0, len(lines))
			for _, line := range lines {
				ol := OrderLineOutput{ProductID: line.ProductID, Quantity: line.Quantity}
				if p, ok := products[line.ProductID]; ok {
					pp := p
					ol.Product = &pp
				}
				outLines = append(outLines, ol)
			}

			outs = append(outs, OrderOutput{
				ID:          o.ID,
				UserID:      o.UserID,
				Products:    outLines,
				TotalAmount: o.TotalAmount,
				Status:      string(o.Status),
				CreatedAt:   o.CreatedAt,
			})
		}
		return nil
	})

	if err != nil {
		return []OrderOutput{}, err
	}
	return outs, nil
}

// CancelOrder はPendingの注文だけをCanceledにする。
func (u *OrderUsecase) CancelOrder(ctx context.Context, userID int64, orderID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "Access denied")
	}
	if orderID <= 0 {
		return NewHTTPError(http.StatusNotFound, "Order not found")
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//idと所有者の両方で検索。他人の注文は「存在しない扱い」。
		o, err := r.Orders().FindByIDAndUserID(ctx, orderID, userID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "Order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
		}

		if o.Status != model.OrderStatusPending {
			return NewHTTPError(http.StatusBadRequest, "Only pending orders can be canceled")
		}

		if err := r.Orders().UpdateStatus(ctx, orderID, model.OrderStatusCanceled); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
		}
		return nil
	})
}

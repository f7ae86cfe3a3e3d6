package handler

import (
	"net/http"
	"strconv"

	"paridhan/internal/config"
	"paridhan/internal/middleware"
	"paridhan/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type MessageResponse struct {
	Message string `json:"message"`
}

type PlaceOrderResponse struct {
	Message string              `json:"message"`
	Order   usecase.OrderOutput `json:"order"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/orders")
	//AuthJWTが先。RateLimitはcontextのuser idで数える。
	g.Use(middleware.AuthJWT(cfg), middleware.RateLimit())

	g.POST("", h.create)
	g.GET("", h.list)
	g.DELETE("/:orderId", h.cancel)
}

func (h *OrderHandler) create(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Access denied"})
	}

	//bodyは使わない。注文内容は保存済みカート。
	out, err := h.uc.PlaceOrder(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, PlaceOrderResponse{
		Message: "Order placed successfully",
		Order:   out,
	})
}

func (h *OrderHandler) list(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Access denied"})
	}

	out, err := h.uc.ListMyOrders(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) cancel(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Access denied"})
	}

	id, err := strconv.ParseInt(c.Param("orderId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Order not found"})
	}

	if err := h.uc.CancelOrder(c.Request().Context(), userID, id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Order canceled successfully"})
}

func getUserIDFromContext(c echo.Context) (int64, bool) {
	v, ok := c.Get(middleware.CtxUserIDKey).(int64)
	if !ok || v <= 0 {
		return 0, false
	}
	return v, true
}

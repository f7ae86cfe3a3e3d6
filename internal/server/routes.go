package server

import (
	"paridhan/internal/config"
	"paridhan/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, cfg config.Config, productH *handler.ProductHandler, orderH *handler.OrderHandler) {
	productH.RegisterRoutes(e)
	orderH.RegisterRoutes(e, cfg)
}

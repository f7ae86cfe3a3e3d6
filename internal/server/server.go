package server

import (
	"paridhan/internal/config"
	"paridhan/internal/handler"
	mw "paridhan/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// New はミドルウェアとルートを組んだechoを返す。
func New(cfg config.Config, productH *handler.ProductHandler, orderH *handler.OrderHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Recover())
	e.Use(mw.RequestLogging())

	//許可するオリジンは設定の1つだけ
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{cfg.FEURL},
		AllowCredentials: true,
	}))

	RegisterRoutes(e, cfg, productH, orderH)

	return e
}

func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}

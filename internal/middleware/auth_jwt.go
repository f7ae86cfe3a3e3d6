package middleware

import (
	"errors"
	"net/http"

	"paridhan/internal/auth"
	"paridhan/internal/config"

	"github.com/labstack/echo/v4"
)

const (
	CtxUserIDKey = "user_id" // int64
)

// bearerAuth用のJWT検証ミドルウェア。
// 検証本体は auth.VerifyBearer（純関数）に任せる。
func AuthJWT(cfg config.Config) echo.MiddlewareFunc {
	secret := []byte(cfg.JWTSecret)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ident, err := auth.VerifyBearer(c.Request().Header.Get("Authorization"), secret)

			//ヘッダ無しは401、壊れたトークンは400
			if errors.Is(err, auth.ErrMissingCredential) {
				return c.JSON(http.StatusUnauthorized, errorJSON("Access denied"))
			}
			if err != nil {
				return c.JSON(http.StatusBadRequest, errorJSON("Invalid token"))
			}

			//contextへ保存
			c.Set(CtxUserIDKey, ident.UserID)

			return next(c)
		}
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}

package middleware

import (
	"time"

	"paridhan/internal/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RequestLogging logs every HTTP request in structured JSON
func RequestLogging() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			reqID := uuid.NewString()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			var userID int64
			if v, ok := c.Get(CtxUserIDKey).(int64); ok {
				userID = v
			}

			logger.L().Info("HTTP Request",
				zap.String("request_id", reqID),
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", c.Response().Status),
				zap.String("duration", time.Since(start).String()),
				zap.String("remote_ip", c.RealIP()),
				zap.Int64("user_id", userID),
			)
			return nil
		}
	}
}

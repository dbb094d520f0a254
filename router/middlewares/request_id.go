package middlewares

import (
	"github.com/labstack/echo/v4"

	"github.com/neatar/neatar/router/extension"
)

// RequestID リクエストIDをレスポンスヘッダーに付与するミドルウェア
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderXRequestID, extension.GetRequestID(c))
			return next(c)
		}
	}
}

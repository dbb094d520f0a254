package middlewares

import (
	"github.com/labstack/echo/v4"

	"github.com/neatar/neatar/router/consts"
)

// ServerVersion X-NEATAR-VERSIONレスポンスヘッダーを追加するミドルウェア
func ServerVersion(version, revision string) echo.MiddlewareFunc {
	v := version
	if len(revision) > 0 {
		v += "." + revision
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(consts.HeaderVersion, v)
			return next(c)
		}
	}
}

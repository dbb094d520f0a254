package middlewares

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequestBodyLengthLimit リクエストボディの長さに制限をかけるミドルウェア
//
// Content-Lengthが無いリクエストも、読み込み時に制限を超えた時点でエラーになります。
func RequestBodyLengthLimit(limit int64) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.ContentLength > limit {
				return echo.NewHTTPError(http.StatusRequestEntityTooLarge, fmt.Sprintf("the request must be smaller than %d bytes", limit))
			}
			req.Body = http.MaxBytesReader(c.Response(), req.Body, limit)
			return next(c)
		}
	}
}

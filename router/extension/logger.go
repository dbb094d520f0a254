package extension

import (
	"github.com/gofrs/uuid"
	"github.com/labstack/echo/v4"
)

// GetRequestID リクエストIDを返します
//
// リクエストにIDが無い場合はUUIDv4を生成してリクエストヘッダーに記録します。
func GetRequestID(c echo.Context) string {
	h := c.Request().Header
	rid := h.Get(echo.HeaderXRequestID)
	if len(rid) == 0 {
		rid = uuid.Must(uuid.NewV4()).String()
		h.Set(echo.HeaderXRequestID, rid)
	}
	return rid
}

package middlewares

import (
	"net/http"

	"github.com/NYTimes/gziphandler"
	"github.com/labstack/echo/v4"

	"github.com/neatar/neatar/router/consts"
)

// デフォルトの大きさのsvgが圧縮対象になるように小さめにしている
const gzipMinSize = 512

// Gzip Gzipミドルウェア
//
// svgとJSONのみ圧縮します。PNGは圧縮済みなので対象外です。
func Gzip(level int) (echo.MiddlewareFunc, error) {
	gzh, err := gziphandler.GzipHandlerWithOpts(
		gziphandler.ContentTypes([]string{
			echo.MIMEApplicationJSON,
			consts.MIMEImageSVG,
			echo.MIMETextPlain,
		}),
		gziphandler.CompressionLevel(level),
		gziphandler.MinSize(gzipMinSize),
	)
	if err != nil {
		return nil, err
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			gzh(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				c.SetRequest(r)
				c.Response().Writer = w
				if err := next(c); err != nil {
					c.Error(err)
				}
			})).ServeHTTP(c.Response().Writer, c.Request())
			return nil
		}
	}, nil
}

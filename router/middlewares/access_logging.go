package middlewares

import (
	"strconv"
	"time"

	"github.com/blendle/zapdriver"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/neatar/neatar/router/extension"
)

// AccessLogging アクセスログミドルウェア
//
// devがtrueの場合は1行の簡易ログになります。
func AccessLogging(logger *zap.Logger, dev bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}
			latency := time.Since(start)

			req := c.Request()
			res := c.Response()
			if dev {
				logger.Sugar().Infof("%3d | %s | %s %s %d", res.Status, latency, req.Method, req.URL, res.Size)
				return nil
			}
			logger.Info("", zap.String("requestId", extension.GetRequestID(c)), zapdriver.HTTP(&zapdriver.HTTPPayload{
				RequestMethod: req.Method,
				Status:        res.Status,
				UserAgent:     req.UserAgent(),
				RemoteIP:      c.RealIP(),
				Referer:       req.Referer(),
				Protocol:      req.Proto,
				RequestURL:    req.URL.String(),
				RequestSize:   strconv.FormatInt(req.ContentLength, 10),
				ResponseSize:  strconv.FormatInt(res.Size, 10),
				Latency:       strconv.FormatFloat(latency.Seconds(), 'f', 9, 64) + "s",
			}))
			return nil
		}
	}
}

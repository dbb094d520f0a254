package middlewares

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/neatar/neatar/router/extension/herror"
)

// RateLimiter IPアドレスごとのレート制限ミドルウェア
//
// 制限を超えたリクエストには429を返します。
func RateLimiter(r rate.Limit, burst int, logger *zap.Logger) echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      r,
		Burst:     burst,
		ExpiresIn: 3 * time.Minute,
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			ok, err := store.Allow(ip)
			if err != nil {
				return herror.InternalServerError(err)
			}
			if !ok {
				logger.Warn("Exceeded rate limit.", zap.String("path", c.Path()), zap.String("ip", ip))
				return herror.TooManyRequests("rate limit exceeded")
			}
			return next(c)
		}
	}
}

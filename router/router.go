package router

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/neatar/neatar/router/consts"
	"github.com/neatar/neatar/router/extension"
	"github.com/neatar/neatar/router/middlewares"
	v1 "github.com/neatar/neatar/router/v1"
	"github.com/neatar/neatar/service/avatar"
)

type Router struct {
	e  *echo.Echo
	v1 *v1.Handlers
}

// Setup APIサーバーハンドラを構築します
func Setup(am avatar.Manager, logger *zap.Logger, config *Config) (*echo.Echo, error) {
	r, err := newRouter(am, logger.Named("router"), config)
	if err != nil {
		return nil, err
	}

	api := r.e.Group("/api")
	api.GET("/metrics", echoprometheus.NewHandler())
	api.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, http.StatusText(http.StatusOK)) })
	r.v1.Setup(api)

	return r.e, nil
}

func newEcho(logger *zap.Logger, config *Config) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = extension.ErrorHandler(logger)

	// ミドルウェア設定
	e.Use(middlewares.ServerVersion(config.Version, config.Revision))
	e.Use(middlewares.RequestID())
	if config.AccessLogging {
		e.Use(middlewares.AccessLogging(logger.Named("access_log"), config.Development))
	}
	if config.Gzipped {
		gz, err := middlewares.Gzip(config.GzipLevel)
		if err != nil {
			return nil, err
		}
		e.Use(gz)
	}
	e.Use(middlewares.Recovery(logger))
	e.Use(extension.Wrap())
	e.Use(middlewares.RequestCounter())
	if config.RateLimit > 0 {
		e.Use(middlewares.RateLimiter(config.RateLimit, config.RateBurst, logger.Named("rate_limiter")))
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		ExposeHeaders: []string{consts.HeaderVersion, consts.HeaderETag, consts.HeaderTokenID, echo.HeaderXRequestID},
		AllowHeaders:  []string{echo.HeaderContentType, consts.HeaderIfNoneMatch, consts.HeaderIfMatch},
		MaxAge:        3600,
	}))

	return e, nil
}

func provideV1Handlers(am avatar.Manager, logger *zap.Logger, config *Config) *v1.Handlers {
	return &v1.Handlers{
		Avatar:        am,
		Logger:        logger.Named("api_handler"),
		Version:       config.Version,
		Revision:      config.Revision,
		MaxHalfSize:   config.MaxHalfSize,
		SeedBodyLimit: config.SeedBodyLimit,
	}
}

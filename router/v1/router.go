package v1

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/neatar/neatar/router/consts"
	"github.com/neatar/neatar/router/middlewares"
	"github.com/neatar/neatar/service/avatar"
)

// Handlers v1 APIハンドラ
type Handlers struct {
	Avatar avatar.Manager
	Logger *zap.Logger

	Version  string
	Revision string

	// MaxHalfSize クエリで指定可能な大円の半径の最大値
	MaxHalfSize int
	// SeedBodyLimit POSTで受け付けるシードの最大バイト数
	SeedBodyLimit int64
}

// Setup APIルーティングを行います
func (h *Handlers) Setup(e *echo.Group) {
	api := e.Group("/v1")
	{
		api.GET("/version", h.GetVersion)
		apiIdenticons := api.Group("/identicons")
		{
			apiIdenticons.POST("", h.PostIdenticon, middlewares.RequestBodyLengthLimit(h.SeedBodyLimit))
			apiIdenticonsSeed := apiIdenticons.Group("/:" + consts.ParamSeed)
			{
				apiIdenticonsSeed.GET("", h.GetIdenticon)
				apiIdenticonsSeed.GET("/media", h.GetIdenticonMedia)
			}
		}
	}
}

//go:build wireinject

package router

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/neatar/neatar/service/avatar"
)

func newRouter(am avatar.Manager, logger *zap.Logger, config *Config) (*Router, error) {
	wire.Build(
		newEcho,
		provideV1Handlers,
		wire.Struct(new(Router), "*"),
	)
	return nil, nil
}

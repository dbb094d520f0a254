//go:build wireinject

package cmd

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/neatar/neatar/router"
	"github.com/neatar/neatar/service/avatar"
)

func newServer(logger *zap.Logger, c *Config) (*Server, error) {
	wire.Build(
		avatar.NewManager,
		router.Setup,
		provideAvatarConfig,
		provideRouterConfig,
		wire.Struct(new(Server), "*"),
	)
	return nil, nil
}

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/neatar/neatar/service/avatar"
)

// serveCommand サーバー起動コマンド
func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve neatar API",
		Run: func(cmd *cobra.Command, args []string) {
			// Logger
			logger := getLogger()
			defer logger.Sync()

			logger.Info(fmt.Sprintf("neatar %s (revision %s)", Version, Revision))

			if err := c.Validate(); err != nil {
				logger.Fatal("invalid config", zap.Error(err))
			}

			// Stackdriver Profiler
			if c.GCP.Stackdriver.Profiler.Enabled {
				if err := initStackdriverProfiler(&c); err != nil {
					logger.Fatal("failed to setup Stackdriver Profiler", zap.Error(err))
				}
				logger.Info("stackdriver profiler started")
			}

			// サーバー作成
			server, err := newServer(logger, &c)
			if err != nil {
				logger.Fatal("failed to create server", zap.Error(err))
			}

			go func() {
				if err := server.Start(fmt.Sprintf(":%d", c.Port)); err != nil {
					logger.Info("shutting down the server")
				}
			}()

			logger.Info("neatar started", zap.Int("port", c.Port))
			waitSIGINT()
			logger.Info("neatar shutting down...")

			ctx, cancel := context.WithTimeout(context.Background(), time.Duration(c.ShutdownTimeout)*time.Second)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				logger.Warn("abnormal shutdown", zap.Error(err))
			}
			logger.Info("neatar shutdown")
		},
	}
}

type Server struct {
	L      *zap.Logger
	Avatar avatar.Manager
	Router *echo.Echo
}

func (s *Server) Start(address string) error {
	return s.Router.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		err := s.Router.Shutdown(ctx)
		s.L.Info("Router shutdown")
		return err
	})
	return eg.Wait()
}

func waitSIGINT() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	signal.Stop(quit)
}

package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"applauncher/cmd/root"
	"applauncher/controllers"
	"applauncher/internal/config"
	"applauncher/internal/env"
	"applauncher/internal/logger"
	"applauncher/internal/manifest"
	"applauncher/internal/middleware"
	"applauncher/services"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var listenAddr string

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP API for update runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return startServer(ctx)
	},
}

func newRouter(srv *services.Server) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.MetricsMiddleware(srv.HTTP))
	controllers.NewAPIController(srv).RegisterRoutes(router)
	controllers.NewUpdateController(srv).RegisterRoutes(router)
	return router
}

func startServer(ctx context.Context) error {
	cfg := &config.Config
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	addr := cfg.Server.Address
	if listenAddr != "" {
		addr = listenAddr
	}

	srv := services.NewServer(cfg, manifest.NewStore(env.ManifestPath()))
	listeners, err := CreateListeners([]ListenAddr{ParseListenAddr(addr)})
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	httpServer := &http.Server{Handler: newRouter(srv)}

	errCh := make(chan error, len(listeners))
	for _, l := range listeners {
		l := l
		logger.Infof("listening on %s", l.Addr())
		go func() {
			errCh <- httpServer.Serve(l)
		}()
	}

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

func init() {
	root.RootCmd.AddCommand(serverCmd)
	serverCmd.Flags().StringVarP(&listenAddr, "listen", "l", "", "listen address, overrides server.address")
}

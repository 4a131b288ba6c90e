package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides HTTP server dependencies.
var Module = fx.Module("server",
	fx.Provide(NewServer),
	fx.Invoke(registerServerLifecycle),
)

// ServerLifecycleParams holds dependencies for server lifecycle management.
type ServerLifecycleParams struct {
	fx.In
	LC     fx.Lifecycle
	Server *Server
	Logger *zap.Logger
}

// registerServerLifecycle hooks the HTTP server's start and shutdown
// into the Fx application lifecycle. The listener is opened
// synchronously so bind failures abort startup.
func registerServerLifecycle(params ServerLifecycleParams) {
	srv := params.Server
	logger := params.Logger.Named("http_server")

	params.LC.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.httpSrv.Addr)
			if err != nil {
				return fmt.Errorf("failed to listen on %s: %w", srv.httpSrv.Addr, err)
			}

			logger.Info("HTTP server listening", zap.String("addr", ln.Addr().String()))

			go func() {
				if err := srv.httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("HTTP server terminated unexpectedly", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Shutting down HTTP server")

			shutdownCtx, cancel := context.WithTimeout(ctx, srv.shutdownTimeout)
			defer cancel()

			if err := srv.httpSrv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("failed to shut down HTTP server: %w", err)
			}

			logger.Info("HTTP server shut down successfully")

			return nil
		},
	})
}

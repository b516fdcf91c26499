package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"matjip/config"
	"matjip/internal/delivery"
	"matjip/internal/delivery/middleware"
	"matjip/internal/delivery/worker/handler"
	"matjip/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

type workerServer struct {
	addr   string
	logger *slog.Logger
	echo   *echo.Echo
}

// NewServer builds the push endpoint Pub/Sub delivers listing events to.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(params.Logger).Process,
		middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle,
	)

	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.POST("/push", params.PushHandler.HandlePush)

	srv := &workerServer{
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(params.Cfg.HTTP.Port)),
		logger: params.Logger,
		echo:   e,
	}
	params.Lc.Append(fx.StopHook(srv.shutdown))

	return srv, nil
}

// Serve blocks until the server is shut down.
func (s *workerServer) Serve(context.Context) error {
	s.logger.Info("listing event worker listening", slog.String("addr", s.addr))

	err := s.echo.Start(s.addr)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return errors.WithStack(err)
}

func (s *workerServer) shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("listing event worker stopping")

	return errors.WithStack(s.echo.Shutdown(ctx))
}

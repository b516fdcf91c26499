package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"matjip/config"
	"matjip/internal/delivery"
	apimiddleware "matjip/internal/delivery/api/middleware"
	"matjip/internal/delivery/api/router"
	"matjip/internal/delivery/api/validator"
	"matjip/internal/delivery/middleware"
	"matjip/internal/domain/lifecycle"
	"matjip/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type ServerParams struct {
	fx.In

	Lc              fx.Lifecycle
	Cfg             *config.Config
	Logger          *slog.Logger
	ErrorMiddleware *apimiddleware.ErrorMiddleware
	RouterParams    router.RouterParams
}

type apiServer struct {
	addr   string
	h2     *http2.Server
	logger *slog.Logger
	server *echo.Echo
}

// NewServer builds the listing API and stops it with the app.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	httpCfg := params.Cfg.HTTP

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = httpCfg.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = httpCfg.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = httpCfg.Timeouts.WriteTimeout
	e.Server.IdleTimeout = httpCfg.Timeouts.IdleTimeout
	e.HTTPErrorHandler = params.ErrorMiddleware.HandleHTTPError
	e.Validator = validator.New()

	// Request ids must exist before the logger runs.
	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(params.Logger).Process,
		middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle,
		echomiddleware.CORS(),
		echomiddleware.BodyLimit(httpCfg.MaxRequestBodySize),
	)

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	srv := &apiServer{
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(httpCfg.Port)),
		h2:     &http2.Server{IdleTimeout: httpCfg.Timeouts.IdleTimeout},
		logger: params.Logger,
		server: e,
	}
	params.Lc.Append(fx.StopHook(srv.shutdown))

	return srv, nil
}

// Serve accepts HTTP/1.1 and cleartext HTTP/2 until shutdown.
func (s *apiServer) Serve(context.Context) error {
	s.logger.Info("listing API listening", slog.String("addr", s.addr))

	err := s.server.StartH2CServer(s.addr, s.h2)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return errors.WithStack(err)
}

func (s *apiServer) shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("listing API stopping")

	return errors.WithStack(s.server.Shutdown(ctx))
}

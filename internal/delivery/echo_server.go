package delivery

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"comanda/internal/domain/lifecycle"
	"comanda/internal/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StartFunc binds e to addr and blocks. The API server swaps in h2c.
type StartFunc func(e *echo.Echo, addr string) error

// EchoServer runs one echo instance as a Delivery and drains it on fx stop.
type EchoServer struct {
	name   string
	addr   string
	echo   *echo.Echo
	start  StartFunc
	logger *slog.Logger
}

// NewEchoServer listens on every interface at port. A nil start uses e.Start.
func NewEchoServer(lc fx.Lifecycle, name string, port int, e *echo.Echo, logger *slog.Logger, start StartFunc) *EchoServer {
	if start == nil {
		start = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	}

	srv := &EchoServer{
		name:   name,
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(port)),
		echo:   e,
		start:  start,
		logger: logger.With(slog.String("server", name)),
	}
	lc.Append(fx.Hook{OnStop: srv.shutdown})

	return srv
}

// Serve returns nil after a graceful shutdown.
func (s *EchoServer) Serve(_ context.Context) error {
	s.logger.Info("HTTP server listening", slog.String("host_port", s.addr))

	if err := s.start(s.echo, s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrapf(err, "%s server stopped", s.name)
	}

	return nil
}

func (s *EchoServer) shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("HTTP server draining")

	return errors.Wrapf(s.echo.Shutdown(ctx), "%s server shutdown", s.name)
}

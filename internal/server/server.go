package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/mwiersma/grippsync/internal/config"
	handlerhttp "github.com/mwiersma/grippsync/internal/handler/http"
	"github.com/mwiersma/grippsync/internal/logger"
)

type server struct {
	httpServer *httpServer
	onShutdown []func()
	logger     *logger.Logger
}

// NewServer wires the HTTP transport around the handler. The onShutdown
// hooks run after the transport has stopped accepting requests; they are
// used to stop the scheduler, drain the request queue, and close the
// database connection.
func NewServer(handler *handlerhttp.Handler, cfg config.Server, logger *logger.Logger, onShutdown ...func()) (Server, error) {
	logger.Info().Msg("creating new server...")
	srv := new(server)

	if cfg.HTTPAddress != "" {
		srv.httpServer = newHTTPServer(handler.Init(), cfg, logger)
	}

	if srv.httpServer == nil {
		return nil, errNoServersAreCreated
	}

	srv.onShutdown = onShutdown
	srv.logger = logger

	return srv, nil
}

func (s *server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}

	for _, hook := range s.onShutdown {
		hook()
	}
}

func (s *server) run() error {
	if s.httpServer == nil {
		return errNoServersAreCreated
	}

	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()

		s.Shutdown()

		close(idleConnectionsClosed)
	}()

	s.logger.Info().Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}

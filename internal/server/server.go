package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"
)

const readHeaderTimeout = 10 * time.Second

type Server struct {
	httpServer *http.Server
	log        *slog.Logger
}

func New(addr string, handler http.Handler, log *slog.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		log: log,
	}
}

// Addr retorna la dirección configurada (host:port) en la que se espera escuchar.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Serve atiende conexiones sobre ln hasta que se llame a Shutdown. Un cierre vía Shutdown no es un error.
func (s *Server) Serve(ln net.Listener) error {
	s.log.Info("server listening", "addr", ln.Addr().String())
	if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

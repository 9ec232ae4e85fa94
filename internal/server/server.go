package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/mealmajor/accountd/internal/interfaces"
)

var (
	ReadTimeout  = 10 * time.Second
	WriteTimeout = 10 * time.Second
	IdleTimeout  = 30 * time.Second
)

type Server struct {
	Port   string
	Host   string
	server *http.Server
	mux    *http.ServeMux
	Logger interfaces.Logger
}

// NewServer creates a new Server instance with the specified host and port.
func NewServer(host, port string, logger interfaces.Logger) interfaces.Server {
	mux := http.NewServeMux()
	server := &http.Server{
		Addr:         host + ":" + port,
		Handler:      mux,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
		IdleTimeout:  IdleTimeout,
	}

	return &Server{
		Host:   host,
		Port:   port,
		server: server,
		mux:    mux,
		Logger: logger,
	}
}

// AddRoute registers a handler function for the given route pattern.
func (s *Server) AddRoute(route string, handler func(w http.ResponseWriter, r *http.Request)) error {
	s.mux.HandleFunc(route, handler)
	s.Logger.Info("Route added", "route", route)
	return nil
}

// ListenAndServe starts the HTTP server and listens for incoming requests.
func (s *Server) ListenAndServe() error {
	s.Logger.Info("Starting server", "host", s.Host, "port", s.Port)
	err := s.server.ListenAndServe()
	if err != nil {
		s.Logger.Error("Failed to start server", "error", err)
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

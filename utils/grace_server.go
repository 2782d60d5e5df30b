package utils

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const (
	defaultReadTimeout     = 60 * time.Second
	defaultWriteTimeout    = defaultReadTimeout
	defaultShutdownTimeout = 30 * time.Second
)

// Server wraps http.Server with signal-driven graceful shutdown so in-flight
// requests finish before the process exits.
type Server struct {
	*http.Server

	signalChan   chan os.Signal
	shutdownChan chan struct{}
}

// NewServer creates a Server with sane timeouts and the given handler.
func NewServer(addr string, handler http.Handler) *Server {
	return &Server{
		Server: &http.Server{
			Addr:         addr,
			Handler:      handler,
			ReadTimeout:  defaultReadTimeout,
			WriteTimeout: defaultWriteTimeout,
		},
		signalChan:   make(chan os.Signal, 1),
		shutdownChan: make(chan struct{}),
	}
}

// ListenAndServe serves until SIGINT or SIGTERM, then drains connections.
func (srv *Server) ListenAndServe() error {
	go srv.handleSignals()
	err := srv.Server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		// Wait until Shutdown finished draining.
		<-srv.shutdownChan
		return nil
	}
	return err
}

func (srv *Server) handleSignals() {
	signal.Notify(srv.signalChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-srv.signalChan
	Sugar.Infof("received %s, graceful shutting down HTTP server", sig)

	ctx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		Sugar.Errorf("HTTP server shutdown error: %v", err)
	} else {
		Sugar.Info("HTTP server shutdown success")
	}
	close(srv.shutdownChan)
}

// GraceServer starts an HTTP server with graceful shutdown.
func GraceServer(addr string, handler http.Handler) error {
	return NewServer(addr, handler).ListenAndServe()
}

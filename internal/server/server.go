// Package server binds the listening socket and serves HTTP on it.
package server

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"sync"

	"github.com/libp2p/go-reuseport"
	"github.com/sirupsen/logrus"
)

// Server owns the socket and the http.Server wrapped around a handler.
type Server struct {
	handler http.Handler
	logger  *logrus.Entry

	mu       sync.Mutex
	listener net.Listener
	srv      *http.Server
}

// New creates a Server that will dispatch every request to h.
func New(h http.Handler, logger *logrus.Logger) *Server {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Server{
		handler: h,
		logger:  logger.WithField("component", "server"),
		srv:     &http.Server{Handler: h},
	}
}

// Listen binds addr with SO_REUSEPORT so several processes can share the
// port, and announces the bound port. It returns the resolved address.
func (s *Server) Listen(addr string) (net.Addr, error) {
	ln, err := reuseport.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to create reusable port listener on %s: %w", addr, err)
	}

	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()

	bound := ln.Addr()
	port := 0
	if tcp, ok := bound.(*net.TCPAddr); ok {
		port = tcp.Port
	}
	s.logger.WithFields(logrus.Fields{
		"port": port,
		"pid":  os.Getpid(),
	}).Infof("listening on :%d", port)

	return bound, nil
}

// Serve blocks answering requests on the socket bound by Listen.
// It returns nil once Close has been called.
func (s *Server) Serve() error {
	s.mu.Lock()
	ln := s.listener
	s.mu.Unlock()
	if ln == nil {
		return errors.New("server: Serve called before Listen")
	}

	if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// ListenAndServe binds addr and serves until the process exits or Close is called.
func (s *Server) ListenAndServe(addr string) error {
	if _, err := s.Listen(addr); err != nil {
		return err
	}
	return s.Serve()
}

// Close stops accepting connections and drops in-flight ones.
func (s *Server) Close() error {
	s.mu.Lock()
	ln := s.listener
	s.mu.Unlock()

	err := s.srv.Close()
	if ln != nil {
		// Serve may not have started yet, in which case srv.Close does not own ln.
		if cerr := ln.Close(); cerr != nil && err == nil && !errors.Is(cerr, net.ErrClosed) {
			err = cerr
		}
	}
	return err
}

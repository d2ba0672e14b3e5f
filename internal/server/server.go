// Package server exposes the conversion library over a WebSocket endpoint,
// so an interactive front end can push slider and field values and read back
// every representation of the resulting color.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	// defaultReadTimeout is the default per-message read deadline.
	defaultReadTimeout = 5 * time.Minute
	// shutdownGrace is how long Serve waits for connections to drain.
	shutdownGrace = 2 * time.Second
)

// Server upgrades HTTP requests to WebSocket connections and answers
// conversion requests on them. Each message is handled independently; the
// conversions are pure, so connections share no state.
type Server struct {
	log         zerolog.Logger
	upgrader    websocket.Upgrader
	readTimeout time.Duration
}

// New creates and returns a new Server. If no options are provided, package
// defaults are used.
func New(opts ...Option) *Server {
	cfg := options{
		readTimeout: defaultReadTimeout,
		logger:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Server{
		log: cfg.logger.With().Str("pkg", "server").Logger(),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		readTimeout: cfg.readTimeout,
	}
}

// ServeHTTP upgrades the request and runs the conversion loop until the peer
// disconnects or a read fails.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Debug().Err(err).Msg("Failed to upgrade connection")
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	s.log.Debug().Str("remote", conn.RemoteAddr().String()).Msg("Connection established")

	for {
		if s.readTimeout > 0 {
			if err := conn.SetReadDeadline(time.Now().Add(s.readTimeout)); err != nil {
				s.log.Debug().Err(err).Msg("Failed to set read deadline")
			}
		}

		messageType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(
				err,
				websocket.CloseGoingAway,
				websocket.CloseNormalClosure,
			) {
				s.log.Debug().Err(err).Msg("Unexpected close")
			}
			return
		}

		if messageType != websocket.TextMessage {
			continue
		}

		resp := handleRequest(data)
		if resp.Error != nil {
			s.log.Debug().
				Str("code", resp.Error.Code).
				Str("message", resp.Error.Message).
				Msg("Request failed")
		}

		if err := conn.WriteJSON(resp); err != nil {
			s.log.Debug().Err(err).Msg("Failed to write response")
			return
		}
	}
}

// Serve listens on addr until the context is canceled, then shuts the HTTP
// server down gracefully.
func (s *Server) Serve(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Msg("Conversion service listening")
		errChan <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// Option configures a Server instance.
type Option func(*options)

// options stores the configuration for a Server instance.
type options struct {
	readTimeout time.Duration
	logger      zerolog.Logger
}

// WithLogger sets the logger for the Server instance.
func WithLogger(logger zerolog.Logger) Option { return func(o *options) { o.logger = logger } }

// WithReadTimeout sets the per-message read deadline; 0 disables it.
func WithReadTimeout(d time.Duration) Option { return func(o *options) { o.readTimeout = d } }

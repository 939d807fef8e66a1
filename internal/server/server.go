// Package server exposes the bisca engine over a websocket: one match per
// connection, request/reply messages, full state snapshots after every
// mutation.
package server

import (
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
)

// Server is the websocket front end.
type Server struct {
	config   *Config
	logger   *log.Logger
	clock    quartz.Clock
	upgrader websocket.Upgrader
}

// New creates a server. A nil clock means the real clock.
func New(config *Config, logger *log.Logger, clock quartz.Clock) *Server {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Server{
		config: config,
		logger: logger.WithPrefix("server"),
		clock:  clock,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Single-player demo surface; no cross-origin policy to enforce.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Handler returns the HTTP handler serving /ws and /health.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})
	return mux
}

// ListenAndServe blocks serving websocket clients on the configured address.
func (s *Server) ListenAndServe() error {
	addr := s.config.ListenAddr()
	s.logger.Info("listening", "addr", addr)
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	sess := NewSession(*s.config.Match, r.URL.Query().Get("seed"), s.logger, s.clock)
	s.logger.Info("client connected", "id", sess.ID, "remote", conn.RemoteAddr())

	if err := conn.WriteJSON(sess.Handle(ClientMessage{Type: MsgState})); err != nil {
		s.logger.Error("failed to write initial state", "id", sess.ID, "error", err)
		return
	}

	for {
		var msg ClientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Error("read failed", "id", sess.ID, "error", err)
			} else {
				s.logger.Info("client disconnected", "id", sess.ID)
			}
			return
		}
		if err := conn.WriteJSON(sess.Handle(msg)); err != nil {
			s.logger.Error("write failed", "id", sess.ID, "error", err)
			return
		}
	}
}

// Package bridge connects browser thin clients to the navigation core.
//
// The client forwards link clicks, programmatic navigations and
// popstate over a WebSocket; the bridge feeds them into the navigator
// and pushes a route event back out to every connected client whenever
// CurrentRoute changes. The browser side stays dumb: it applies the
// content it receives and keeps its address bar in sync.
package bridge

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/navio-dev/navio/pkg/middleware"
	"github.com/navio-dev/navio/pkg/router"
)

// Message is a client-to-server navigation command.
type Message struct {
	// Op is one of "navigate", "back", "forward", "refresh", "click".
	Op string `json:"op"`

	// Path is the navigation target for "navigate".
	Path string `json:"path,omitempty"`

	// Replace replaces the current history entry instead of pushing.
	Replace bool `json:"replace,omitempty"`

	// State is the opaque history state for "navigate".
	State map[string]any `json:"state,omitempty"`

	// Click carries the anchor click details for "click".
	Click *router.Click `json:"click,omitempty"`
}

// RouteEvent is a server-to-client notification that the current route
// changed.
type RouteEvent struct {
	Type    string            `json:"type"`
	Path    string            `json:"path"`
	Pattern string            `json:"pattern"`
	Params  map[string]string `json:"params"`
	Content string            `json:"content,omitempty"`
}

// Config configures the bridge endpoint.
type Config struct {
	// Logger is the structured logger. If nil, slog.Default() is used.
	Logger *slog.Logger

	// CheckOrigin validates the WebSocket origin. If nil, same-origin
	// only (the gorilla default).
	CheckOrigin func(r *http.Request) bool

	// ReadLimit caps inbound message size in bytes. Default 4096;
	// navigation commands are tiny.
	ReadLimit int64

	// WriteTimeout bounds each outbound write. Default 10s.
	WriteTimeout time.Duration

	// SendBuffer is the per-client outbound queue length. A client that
	// cannot keep up has events dropped, not the dispatcher blocked.
	// Default 16.
	SendBuffer int

	// Content supplies the rendered content included in route events,
	// typically the container's Content method. If nil, events carry no
	// content.
	Content func() string
}

func (c Config) withDefaults() Config {
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.ReadLimit == 0 {
		c.ReadLimit = 4096
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = 10 * time.Second
	}
	if c.SendBuffer == 0 {
		c.SendBuffer = 16
	}
	return c
}

// Handler is the WebSocket endpoint. It implements http.Handler; mount
// it wherever the thin client connects.
type Handler struct {
	nav      *router.Navigator
	cfg      Config
	logger   *slog.Logger
	upgrader websocket.Upgrader

	mu       sync.Mutex
	sessions map[string]*session
	unlisten func()
}

type session struct {
	id   string
	conn *websocket.Conn
	send chan []byte

	// closed is guarded by Handler.mu; once set, send is closed and no
	// enqueue may touch it.
	closed bool
}

// New creates a bridge over a navigator and subscribes to route
// changes. Call Close to unsubscribe and drop all clients.
func New(nav *router.Navigator, cfg Config) *Handler {
	cfg = cfg.withDefaults()
	h := &Handler{
		nav:    nav,
		cfg:    cfg,
		logger: cfg.Logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     cfg.CheckOrigin,
		},
		sessions: make(map[string]*session),
	}
	h.unlisten = nav.Dispatcher().OnChange(h.broadcast)
	return h
}

// ServeHTTP upgrades the connection and runs the client's read loop.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("bridge upgrade failed", "error", err)
		return
	}
	conn.SetReadLimit(h.cfg.ReadLimit)

	s := &session{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, h.cfg.SendBuffer),
	}

	h.mu.Lock()
	h.sessions[s.id] = s
	h.mu.Unlock()
	middleware.RecordClientConnect()
	h.logger.Info("bridge client connected", "session_id", s.id)

	go h.writeLoop(s)

	// Late joiners get the current route immediately.
	if cr := h.nav.CurrentRoute(); cr != nil {
		h.enqueue(s, h.routeEvent(cr))
	}

	h.readLoop(s)

	h.mu.Lock()
	delete(h.sessions, s.id)
	s.closed = true
	close(s.send)
	h.mu.Unlock()
	conn.Close()
	middleware.RecordClientDisconnect()
	h.logger.Info("bridge client disconnected", "session_id", s.id)
}

// readLoop decodes navigation commands until the connection drops.
func (h *Handler) readLoop(s *session) {
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Warn("bridge read failed", "session_id", s.id, "error", err)
			}
			return
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			h.logger.Warn("bridge message malformed", "session_id", s.id, "error", err)
			continue
		}
		h.handle(s, msg)
	}
}

// handle applies one navigation command.
func (h *Handler) handle(s *session, msg Message) {
	switch msg.Op {
	case "navigate":
		opts := []router.NavigateOption{}
		if msg.Replace {
			opts = append(opts, router.WithReplace())
		}
		if msg.State != nil {
			opts = append(opts, router.WithState(msg.State))
		}
		if err := h.nav.Navigate(msg.Path, opts...); err != nil {
			h.logger.Warn("bridge navigate rejected",
				"session_id", s.id, "path", msg.Path, "error", err)
		}
	case "back":
		h.nav.Back()
	case "forward":
		h.nav.Forward()
	case "refresh":
		h.nav.Refresh()
	case "click":
		if msg.Click != nil {
			h.nav.InterceptClick(*msg.Click)
		}
	default:
		h.logger.Warn("bridge op unknown", "session_id", s.id, "op", msg.Op)
	}
}

// writeLoop drains the session's outbound queue.
func (h *Handler) writeLoop(s *session) {
	for data := range s.send {
		s.conn.SetWriteDeadline(time.Now().Add(h.cfg.WriteTimeout))
		if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.logger.Warn("bridge write failed", "session_id", s.id, "error", err)
			return
		}
	}
}

// broadcast pushes a route event to every connected client.
func (h *Handler) broadcast(cr *router.CurrentRoute) {
	data := h.routeEvent(cr)

	h.mu.Lock()
	sessions := make([]*session, 0, len(h.sessions))
	for _, s := range h.sessions {
		sessions = append(sessions, s)
	}
	h.mu.Unlock()

	for _, s := range sessions {
		h.enqueue(s, data)
	}
}

// enqueue queues an event, dropping it when the client is too slow or
// already gone. The closed check and the channel close both happen
// under h.mu, so a broadcast racing a disconnect cannot send on a
// closed channel.
func (h *Handler) enqueue(s *session, data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.send <- data:
	default:
		h.logger.Debug("bridge client lagging, event dropped", "session_id", s.id)
	}
}

// routeEvent marshals the current route into a wire event.
func (h *Handler) routeEvent(cr *router.CurrentRoute) []byte {
	ev := RouteEvent{
		Type: "route",
		Path: cr.Path(),
	}
	if cr.Context != nil {
		ev.Params = cr.Context.Params
	}
	if cr.Route != nil {
		ev.Pattern = cr.Route.Pattern
	}
	if h.cfg.Content != nil {
		ev.Content = h.cfg.Content()
	}
	data, err := json.Marshal(ev)
	if err != nil {
		h.logger.Error("bridge event marshal failed", "error", err)
		return []byte(`{"type":"route"}`)
	}
	return data
}

// Sessions reports the number of connected clients.
func (h *Handler) Sessions() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions)
}

// Close unsubscribes from route changes and closes every client
// connection.
func (h *Handler) Close() {
	if h.unlisten != nil {
		h.unlisten()
		h.unlisten = nil
	}
	h.mu.Lock()
	sessions := make([]*session, 0, len(h.sessions))
	for _, s := range h.sessions {
		sessions = append(sessions, s)
	}
	h.mu.Unlock()
	for _, s := range sessions {
		s.conn.Close()
	}
}

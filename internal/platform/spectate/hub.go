// Package spectate streams live board snapshots to websocket spectators.
//
// The hub is fed from the game loop through OnFrame and fans each frame
// out to every connected client. It also serves the latest frame over
// plain HTTP for scripts that only want to poll.
package spectate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"nhooyr.io/websocket"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

const (
	pingInterval = 15 * time.Second
	writeTimeout = 5 * time.Second
	clientBuffer = 16
)

// Message is the envelope written to spectators.
type Message struct {
	T string          `json:"t"`
	M tetris.Snapshot `json:"m"`
}

// Hub tracks spectators and broadcasts frames to them.
type Hub struct {
	mu      sync.RWMutex
	clients map[*client]struct{}
	last    []byte
	nextID  atomic.Uint64
	logger  *log.Logger
}

// NewHub creates an empty hub. A nil logger discards output.
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Hub{
		clients: map[*client]struct{}{},
		logger:  logger,
	}
}

// OnFrame publishes a snapshot to every spectator. It never blocks.
func (h *Hub) OnFrame(s tetris.Snapshot) {
	data, err := json.Marshal(Message{T: "frame", M: s})
	if err != nil {
		h.logger.Warn("encode frame", "error", err)
		return
	}

	h.mu.Lock()
	h.last = data
	h.mu.Unlock()

	h.mu.RLock()
	for c := range h.clients {
		c.enqueue(data)
	}
	h.mu.RUnlock()
}

// Clients returns the number of connected spectators.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Last returns the most recent encoded frame, or nil before the first one.
func (h *Hub) Last() []byte {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.last
}

// Handler returns the spectator HTTP routes.
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.serveWS)
	mux.HandleFunc("/snapshot", h.serveSnapshot)
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

func (h *Hub) serveSnapshot(w http.ResponseWriter, _ *http.Request) {
	last := h.Last()
	if last == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(last)
}

func (h *Hub) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		h.logger.Debug("accept spectator", "error", err)
		return
	}

	c := newClient(h.nextID.Add(1), clientBuffer)
	h.add(c)
	defer h.remove(c)

	h.logger.Info("spectator connected", "id", c.id, "remote", r.RemoteAddr)
	if last := h.Last(); last != nil {
		c.enqueue(last)
	}

	// Spectators are read-only; CloseRead handles control frames and
	// cancels ctx when the peer goes away.
	ctx := conn.CloseRead(r.Context())

	ping := time.NewTicker(pingInterval)
	defer ping.Stop()

	for {
		select {
		case msg := <-c.send:
			if err := write(ctx, conn, msg); err != nil {
				h.logger.Debug("spectator write", "id", c.id, "error", err)
				return
			}
		case <-ping.C:
			if err := conn.Ping(ctx); err != nil {
				return
			}
		case <-c.done:
			_ = conn.Close(websocket.StatusGoingAway, "server shutting down")
			return
		case <-ctx.Done():
			h.logger.Info("spectator disconnected", "id", c.id)
			return
		}
	}
}

func write(ctx context.Context, conn *websocket.Conn, msg []byte) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return conn.Write(ctx, websocket.MessageText, msg)
}

func (h *Hub) add(c *client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	c.close()
}

// Close disconnects every spectator.
func (h *Hub) Close() {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		c.close()
	}
}

// Serve listens on addr until ctx is cancelled.
func (h *Hub) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		h.logger.Info("spectator server listening", "address", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("spectate: %w", err)
	case <-ctx.Done():
	}

	h.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("spectate: shutdown: %w", err)
	}
	return nil
}

package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"ai-process-scheduler/backend/internal/engine"
)

// client wraps one subscriber connection. gorilla conns support a single
// concurrent writer, so every write goes through the client's mutex.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) write(update Update) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(update)
}

// Hub fans scheduling cycle results out to websocket subscribers; it is the
// web replacement for the original live console refresh.
type Hub struct {
	subscribers map[*client]bool
	latest      *engine.Result
	mu          sync.RWMutex
	upgrader    websocket.Upgrader
}

type Update struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
	Time time.Time   `json:"timestamp"`
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[*client]bool),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	cl := &client{conn: conn}

	h.mu.Lock()
	h.subscribers[cl] = true
	latest := h.latest
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.subscribers, cl)
		h.mu.Unlock()
	}()

	if latest != nil {
		h.send(cl, Update{Type: "initial", Data: latest, Time: time.Now()})
	}

	// Keep the connection alive until the client goes away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// Broadcast pushes one cycle result to every subscriber. Wired as the
// engine's OnResult callback. A slow client stalls only its own goroutine;
// the per-client mutex keeps an overlapping cycle from writing the same
// connection concurrently.
func (h *Hub) Broadcast(res engine.Result) {
	update := Update{Type: "cycle", Data: res, Time: time.Now()}

	h.mu.Lock()
	h.latest = &res
	clients := make([]*client, 0, len(h.subscribers))
	for cl := range h.subscribers {
		clients = append(clients, cl)
	}
	h.mu.Unlock()

	for _, cl := range clients {
		go h.send(cl, update)
	}
}

func (h *Hub) send(cl *client, update Update) {
	if err := cl.write(update); err != nil {
		h.mu.Lock()
		delete(h.subscribers, cl)
		h.mu.Unlock()
		cl.conn.Close()
	}
}

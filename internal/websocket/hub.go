package websocket

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync/atomic"

	"go-admin-panel/internal/event"
)

// Hub fans bus events out to websocket clients. All client bookkeeping
// happens on the Run goroutine.
type Hub struct {
	// Registered clients.
	clients map[*Client]bool

	register   chan *Client
	unregister chan *Client

	bus     event.Bus
	origins []string
	count   atomic.Int64
	onCount func(int)
	done    chan struct{}
}

func NewHub(bus event.Bus, origins []string) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		bus:        bus,
		origins:    origins,
		done:       make(chan struct{}),
	}
}

// OnClientCount must be called before Run.
func (h *Hub) OnClientCount(fn func(int)) {
	h.onCount = fn
}

func (h *Hub) Clients() int {
	return int(h.count.Load())
}

// Run blocks until ctx ends, then disconnects every client.
func (h *Hub) Run(ctx context.Context) {
	events, unsubscribe := h.bus.Subscribe()
	defer unsubscribe()
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				h.drop(client)
			}
			return
		case client := <-h.register:
			h.clients[client] = true
			h.changed()
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				h.drop(client)
			}
		case e, ok := <-events:
			if !ok {
				return
			}
			message, err := json.Marshal(e)
			if err != nil {
				slog.Error("failed to marshal event", "type", e.Type, "error", err)
				continue
			}
			for client := range h.clients {
				if !client.wants(e.Topic) {
					continue
				}
				select {
				case client.send <- message:
				default:
					slog.Warn("dropping slow websocket client", "client_id", client.id)
					h.drop(client)
				}
			}
		}
	}
}

func (h *Hub) drop(client *Client) {
	delete(h.clients, client)
	close(client.send)
	h.changed()
}

func (h *Hub) changed() {
	h.count.Store(int64(len(h.clients)))
	if h.onCount != nil {
		h.onCount(len(h.clients))
	}
}

func (h *Hub) join(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) leave(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

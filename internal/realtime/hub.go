package realtime

import (
	"encoding/json"
	"sync"

	"github.com/sirupsen/logrus"
)

// Event names accepted from clients. Anything else is dropped.
const (
	EventTaskCreated = "task-created"
	EventTaskUpdated = "task-updated"
)

// Frame is the wire envelope exchanged over the websocket channel. Data is
// relayed verbatim; the hub never inspects it.
type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type message struct {
	senderID string
	payload  []byte
}

// Hub relays task mutation events between connected clients. It holds no
// state beyond the live connection set: no persistence, no ordering, no
// delivery guarantee. The source of truth stays in the database.
type Hub struct {
	logger *logrus.Logger

	register   chan *Client
	unregister chan *Client
	broadcast  chan message
	done       chan struct{}

	mu      sync.Mutex
	clients map[*Client]struct{}
}

func NewHub(logger *logrus.Logger) *Hub {
	return &Hub{
		logger:     logger,
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan message, 64),
		done:       make(chan struct{}),
		clients:    make(map[*Client]struct{}),
	}
}

// Run processes register/unregister/broadcast events until Shutdown.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = struct{}{}
			count := len(h.clients)
			h.mu.Unlock()
			h.logger.Infof("client connected: %s (%d online)", client.id, count)
		case client := <-h.unregister:
			h.drop(client)
		case msg := <-h.broadcast:
			h.relay(msg)
		case <-h.done:
			h.mu.Lock()
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			h.mu.Unlock()
			return
		}
	}
}

// Shutdown stops the run loop and disconnects every client.
func (h *Hub) Shutdown() {
	close(h.done)
}

// relay copies the payload to every client except the sender. A client whose
// send buffer is full is dropped rather than blocking the hub.
func (h *Hub) relay(msg message) {
	h.mu.Lock()
	targets := make([]*Client, 0, len(h.clients))
	for client := range h.clients {
		if client.id == msg.senderID {
			continue
		}
		targets = append(targets, client)
	}
	h.mu.Unlock()

	for _, client := range targets {
		select {
		case client.send <- msg.payload:
		default:
			h.logger.Warnf("client %s too slow, dropping", client.id)
			h.drop(client)
		}
	}
}

func (h *Hub) drop(client *Client) {
	h.mu.Lock()
	_, ok := h.clients[client]
	if ok {
		delete(h.clients, client)
		close(client.send)
	}
	count := len(h.clients)
	h.mu.Unlock()
	if ok {
		h.logger.Infof("client disconnected: %s (%d online)", client.id, count)
	}
}

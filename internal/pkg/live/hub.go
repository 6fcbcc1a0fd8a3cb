// Package live fans newly created attendance records out to dashboard
// clients watching a session over WebSocket.
package live

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"github.com/classtap/classtap/internal/app/services"
)

// Hub maintains the set of active clients grouped by session key and
// broadcasts scan events to them.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*Client]bool // session key -> clients

	register   chan *Client
	unregister chan *Client
	events     chan services.ScanEvent

	logger zerolog.Logger
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		events:     make(chan services.ScanEvent, 16),
		logger:     logger,
	}
}

// Run processes registrations and broadcasts. Call it in its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		case event := <-h.events:
			h.broadcast(event)
		}
	}
}

// PublishScan implements services.ScanPublisher. It never blocks the scan
// path: when the hub is saturated the event is dropped and the dashboard
// catches up on its next poll.
func (h *Hub) PublishScan(event services.ScanEvent) {
	select {
	case h.events <- event:
	default:
		h.logger.Warn().Str("sessionId", event.SessionID).Msg("Live feed saturated, dropping scan event")
	}
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.clients[client.sessionID] == nil {
		h.clients[client.sessionID] = make(map[*Client]bool)
	}
	h.clients[client.sessionID][client] = true
	h.logger.Debug().Str("sessionId", client.sessionID).Msg("Live feed client connected")
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if peers, ok := h.clients[client.sessionID]; ok {
		if _, ok := peers[client]; ok {
			delete(peers, client)
			close(client.send)
			if len(peers) == 0 {
				delete(h.clients, client.sessionID)
			}
		}
	}
}

func (h *Hub) broadcast(event services.ScanEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to encode scan event")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients[event.SessionID] {
		select {
		case client.send <- payload:
		default:
			// Slow consumer: skip rather than stall the broadcast.
			h.logger.Warn().Str("sessionId", event.SessionID).Msg("Skipping slow live feed client")
		}
	}
}

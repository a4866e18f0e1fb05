package sse

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// EventType defines the SSE event name.
type EventType string

const (
	EventPriceDrop   EventType = "alert.price_drop"
	EventTargetPrice EventType = "alert.target_reached"
)

// AlertEvent is the payload pushed to a user's connected clients when a
// price alert fires.
type AlertEvent struct {
	Event        EventType `json:"event"`
	UserID       string    `json:"userId"`
	ProductID    string    `json:"productId"`
	ProductName  string    `json:"productName"`
	BestPrice    int       `json:"bestPrice"`
	BestPlatform string    `json:"bestPlatform"`
	TargetPrice  *int      `json:"targetPrice,omitempty"`
	Savings      int       `json:"savings"`
	Timestamp    time.Time `json:"timestamp"`
}

// Client represents one connected SSE stream.
type Client struct {
	ID     string
	UserID string
	Events chan []byte
}

// Hub manages SSE client connections and per-user delivery. A user may hold
// several streams (phone and web) at once.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
}

// NewHub creates a new SSE hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*Client),
	}
}

// Register adds a new client stream for a user and returns it for streaming.
func (h *Hub) Register(clientID, userID string) *Client {
	h.mu.Lock()
	defer h.mu.Unlock()

	c := &Client{
		ID:     clientID,
		UserID: userID,
		Events: make(chan []byte, 64),
	}
	h.clients[clientID] = c
	log.Info().Str("client_id", clientID).Str("user_id", userID).Int("total_clients", len(h.clients)).Msg("SSE client connected")
	return c
}

// Unregister removes a client and closes its channel.
func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if c, ok := h.clients[clientID]; ok {
		close(c.Events)
		delete(h.clients, clientID)
		log.Info().Str("client_id", clientID).Int("total_clients", len(h.clients)).Msg("SSE client disconnected")
	}
}

// Send delivers an event to every stream belonging to the event's user.
// Non-blocking: drops the message if a client buffer is full.
func (h *Hub) Send(event *AlertEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal SSE event")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, c := range h.clients {
		if c.UserID != event.UserID {
			continue
		}
		select {
		case c.Events <- data:
		default:
			log.Warn().Str("client_id", c.ID).Msg("SSE client buffer full, dropping event")
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

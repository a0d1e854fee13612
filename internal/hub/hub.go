package hub

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"
)

// Session event types.
const (
	EventSignedIn       = "SIGNED_IN"
	EventSignedOut      = "SIGNED_OUT"
	EventTokenRefreshed = "TOKEN_REFRESHED"
	EventUserUpdated    = "USER_UPDATED"
)

// Event is a session change pushed to a user's open streams.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// Client is a single listener. The SSE handler reads from it until it is closed.
type Client chan []byte

// Hub fans session events out to every listener of a user.
type Hub struct {
	users map[string]map[Client]bool
	mu    sync.RWMutex
	log   zerolog.Logger
}

// NewHub creates a new Hub.
func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		users: make(map[string]map[Client]bool),
		log:   log,
	}
}

// Subscribe registers a client for a user's events.
func (h *Hub) Subscribe(userID string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.users[userID]; !ok {
		h.users[userID] = make(map[Client]bool)
	}
	h.users[userID][client] = true
}

// Unsubscribe removes the client and closes its channel.
// Unknown clients are ignored.
func (h *Hub) Unsubscribe(userID string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.users[userID]; ok {
		if _, ok := clients[client]; ok {
			delete(clients, client)
			close(client)
			if len(clients) == 0 {
				delete(h.users, userID)
			}
		}
	}
}

// Listeners returns the number of clients subscribed for a user.
func (h *Hub) Listeners(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.users[userID])
}

// Broadcast sends an event to all clients of a user.
func (h *Hub) Broadcast(userID string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	clients, ok := h.users[userID]
	if !ok {
		return
	}
	messageBytes, err := json.Marshal(event)
	if err != nil {
		h.log.Error().Err(err).Str("event", event.Type).Msg("hub: marshal event")
		return
	}

	for client := range clients {
		// Non-blocking: a full client drops the event.
		select {
		case client <- messageBytes:
		default:
			h.log.Warn().Str("user_id", userID).Str("event", event.Type).Msg("hub: client buffer full, event dropped")
		}
	}
}

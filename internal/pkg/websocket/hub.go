package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Event is pushed to connected users as one JSON text frame
type Event struct {
	// Type names the event, e.g. "message.created"
	Type string `json:"type"`

	// Data is the event payload
	Data any `json:"data"`

	// Timestamp when the event was published
	Timestamp time.Time `json:"timestamp"`
}

// delivery is an event addressed to a set of users
type delivery struct {
	userIDs []string
	event   Event
}

// Hub maintains the set of active clients per user and fans events out to them
type Hub struct {
	// Registered clients organized by user ID
	clients map[string]map[*Client]bool

	publish    chan delivery
	register   chan *Client
	unregister chan *Client

	// Closed once Run returns
	done chan struct{}

	// Guards clients for readers outside the run loop
	mu sync.RWMutex

	listenersMu sync.RWMutex
	listeners   []chan Event

	logger zerolog.Logger
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		publish:    make(chan delivery, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		clients:    make(map[string]map[*Client]bool),
		logger:     logger,
	}
}

// Run handles registrations and deliveries until ctx is cancelled, then closes every client
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case d := <-h.publish:
			h.deliver(d)
		}
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.userID]; !ok {
		h.clients[client.userID] = make(map[*Client]bool)
	}
	h.clients[client.userID][client] = true

	h.logger.Info().
		Str("userID", client.userID).
		Str("addr", client.remoteAddr()).
		Msg("Client registered")
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(client)
}

// removeLocked drops client and closes its send channel; h.mu must be held
func (h *Hub) removeLocked(client *Client) {
	set, ok := h.clients[client.userID]
	if !ok || !set[client] {
		return
	}

	delete(set, client)
	close(client.send)
	if len(set) == 0 {
		delete(h.clients, client.userID)
	}

	h.logger.Info().
		Str("userID", client.userID).
		Str("addr", client.remoteAddr()).
		Msg("Client unregistered")
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, set := range h.clients {
		for client := range set {
			h.removeLocked(client)
		}
	}
}

// deliver writes the event to every client of every addressed user
func (h *Hub) deliver(d delivery) {
	h.notifyListeners(d.event)

	data, err := json.Marshal(d.event)
	if err != nil {
		h.logger.Error().Err(err).Str("type", d.event.Type).Msg("Failed to marshal event")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	sent := 0
	seen := make(map[string]bool, len(d.userIDs))
	for _, userID := range d.userIDs {
		if seen[userID] {
			continue
		}
		seen[userID] = true

		for client := range h.clients[userID] {
			select {
			case client.send <- data:
				sent++
			default:
				// Slow consumer; drop it rather than block every other user
				h.removeLocked(client)
			}
		}
	}

	h.logger.Debug().
		Str("type", d.event.Type).
		Strs("userIDs", d.userIDs).
		Int("deliveries", sent).
		Msg("Event published")
}

func (h *Hub) notifyListeners(event Event) {
	h.listenersMu.RLock()
	defer h.listenersMu.RUnlock()

	for _, listener := range h.listeners {
		select {
		case listener <- event:
		default:
			h.logger.Warn().Str("type", event.Type).Msg("Skipped slow event listener")
		}
	}
}

// Publish queues an event for the given users. It never blocks on slow clients
// and drops the event once the hub has stopped.
func (h *Hub) Publish(userIDs []string, eventType string, data any) {
	d := delivery{
		userIDs: userIDs,
		event:   Event{Type: eventType, Data: data, Timestamp: time.Now().UTC()},
	}
	select {
	case h.publish <- d:
	case <-h.done:
	}
}

// Register adds a client; it reports false when the hub has stopped
func (h *Hub) Register(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// Unregister removes a client; it is a no-op once the hub has stopped
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// ClientCount returns the number of connections a user has open
func (h *Hub) ClientCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

// AddListener registers a channel that receives every published event
func (h *Hub) AddListener(listener chan Event) {
	h.listenersMu.Lock()
	defer h.listenersMu.Unlock()
	h.listeners = append(h.listeners, listener)
}

// RemoveListener unregisters a listener added with AddListener
func (h *Hub) RemoveListener(listener chan Event) {
	h.listenersMu.Lock()
	defer h.listenersMu.Unlock()

	for i, l := range h.listeners {
		if l == listener {
			h.listeners[i] = h.listeners[len(h.listeners)-1]
			h.listeners = h.listeners[:len(h.listeners)-1]
			return
		}
	}
}

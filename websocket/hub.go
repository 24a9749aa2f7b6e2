package websocket

import (
	"encoding/json"
	"log"
	"sync"
)

// Hub maintains the set of connected clients and pushes notifications to
// the connections belonging to a given user. A user may be connected from
// several devices at once; all of them receive the notification.
type Hub struct {
	// Registered clients
	clients map[*Client]bool

	// Users mapping (userID -> clients)
	users map[uint]map[*Client]bool

	// Mutex for users map
	usersMux sync.RWMutex

	// Register requests from the clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client
}

// NewHub creates a new hub instance
func NewHub() *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		users:      make(map[uint]map[*Client]bool),
	}
}

// Run starts the hub
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true

			h.usersMux.Lock()
			if _, ok := h.users[client.userID]; !ok {
				h.users[client.userID] = make(map[*Client]bool)
			}
			h.users[client.userID][client] = true
			h.usersMux.Unlock()
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)

				h.usersMux.Lock()
				if clients, ok := h.users[client.userID]; ok {
					delete(clients, client)
					// Clean up entries for fully disconnected users
					if len(clients) == 0 {
						delete(h.users, client.userID)
					}
				}
				h.usersMux.Unlock()
			}
		}
	}
}

// NotifyUser sends a typed notification to all connections of a user.
// Users without an open connection are skipped silently.
func (h *Hub) NotifyUser(userID uint, msgType string, payload interface{}) {
	msg := Message{
		Type:    msgType,
		Payload: payload,
	}

	msgBytes, err := json.Marshal(msg)
	if err != nil {
		log.Printf("error marshaling notification: %v", err)
		return
	}

	var stale []*Client
	h.usersMux.RLock()
	for client := range h.users[userID] {
		select {
		case client.send <- msgBytes:
		default:
			stale = append(stale, client)
		}
	}
	h.usersMux.RUnlock()

	// Slow clients are dropped through the unregister path: only the Run
	// goroutine mutates the maps and closes send, so concurrent notifiers
	// never race on them. If Run is busy the client stays connected until
	// its own read pump unregisters it.
	for _, client := range stale {
		select {
		case h.unregister <- client:
		default:
		}
	}
}

package ws

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/dvconsultores/rhino-bot/entity"
)

// Event represents a WebSocket event sent to dashboard clients.
type Event struct {
	Type string      `json:"type"` // "attendance_logged", "payment_recorded"
	Data interface{} `json:"data"`
}

// Hub maintains the set of active WebSocket clients and broadcasts events.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan *Event
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
	log        *slog.Logger
}

// NewHub creates a new Hub instance.
func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan *Event, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		log:        log,
	}
}

// Run starts the hub's event loop. Should be called in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			data, err := json.Marshal(event)
			if err != nil {
				continue
			}
			h.mu.RLock()
			var stalled []*Client
			for client := range h.clients {
				select {
				case client.send <- data:
				default:
					stalled = append(stalled, client)
				}
			}
			h.mu.RUnlock()

			// Evict clients whose send buffer is full under the write lock.
			if len(stalled) > 0 {
				h.mu.Lock()
				for _, client := range stalled {
					if _, ok := h.clients[client]; ok {
						delete(h.clients, client)
						close(client.send)
					}
				}
				h.mu.Unlock()
			}
		}
	}
}

// BroadcastAttendance sends an attendance_logged event to all connected clients.
func (h *Hub) BroadcastAttendance(att entity.Attendance) {
	h.broadcast <- &Event{
		Type: "attendance_logged",
		Data: att,
	}
}

// BroadcastPayment sends a payment_recorded event to all connected clients.
func (h *Hub) BroadcastPayment(payment entity.Payment) {
	h.broadcast <- &Event{
		Type: "payment_recorded",
		Data: payment,
	}
}

package websocket

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// RequestUpdate is a real-time asset-request event pushed to the
// dashboards of the admin the request is addressed to.
type RequestUpdate struct {
	Type      string      `json:"type"` // REQUEST_CREATED, REQUEST_STATUS_CHANGE
	RequestID string      `json:"requestId,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Email     string      `json:"email,omitempty"`
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans request updates out to connected clients, grouped by the
// admin email they subscribed with.
type Hub struct {
	mutex   sync.Mutex
	clients map[string]map[*client]bool
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]map[*client]bool),
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ServeWS upgrades the connection and registers it under the adminEmail
// query parameter.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	adminEmail := r.URL.Query().Get("adminEmail")
	if adminEmail == "" {
		http.Error(w, "adminEmail query parameter required", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	c := &client{conn: conn, send: make(chan []byte, 16)}

	h.mutex.Lock()
	if h.clients[adminEmail] == nil {
		h.clients[adminEmail] = make(map[*client]bool)
	}
	h.clients[adminEmail][c] = true
	h.mutex.Unlock()

	log.Printf("websocket client connected for admin %s", adminEmail)

	go c.writePump()
	go h.readPump(adminEmail, c)
}

func (c *client) writePump() {
	defer c.conn.Close()
	for data := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
}

// readPump discards inbound frames; it exists to notice disconnects.
func (h *Hub) readPump(adminEmail string, c *client) {
	defer func() {
		h.mutex.Lock()
		if clients, ok := h.clients[adminEmail]; ok {
			if clients[c] {
				delete(clients, c)
				close(c.send)
			}
			if len(clients) == 0 {
				delete(h.clients, adminEmail)
			}
		}
		h.mutex.Unlock()
		c.conn.Close()
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Broadcast sends the update to every client subscribed to adminEmail.
func (h *Hub) Broadcast(adminEmail string, update RequestUpdate) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	clients, ok := h.clients[adminEmail]
	if !ok {
		return
	}

	data, err := json.Marshal(update)
	if err != nil {
		log.Printf("Failed to marshal request update: %v", err)
		return
	}

	for c := range clients {
		select {
		case c.send <- data:
		default:
			close(c.send)
			delete(clients, c)
		}
	}
}

// SendRequestCreated broadcasts a newly filed asset request.
func (h *Hub) SendRequestCreated(adminEmail string, request interface{}, email string) {
	h.Broadcast(adminEmail, RequestUpdate{
		Type:      "REQUEST_CREATED",
		Data:      request,
		Timestamp: time.Now(),
		Email:     email,
	})
}

// SendRequestStatusChange broadcasts an approval/rejection decision.
func (h *Hub) SendRequestStatusChange(adminEmail, requestID, oldStatus, newStatus string) {
	h.Broadcast(adminEmail, RequestUpdate{
		Type:      "REQUEST_STATUS_CHANGE",
		RequestID: requestID,
		Data: map[string]interface{}{
			"oldStatus": oldStatus,
			"newStatus": newStatus,
		},
		Timestamp: time.Now(),
	})
}

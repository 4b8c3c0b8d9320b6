package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// CatalogHub pushes publication lifecycle events to connected admin
// clients so open tabs see publishes and staleness without polling.
type CatalogHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan Event
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

// Event is the wire format pushed to clients.
type Event struct {
	Event   string      `json:"event"`
	MenuID  uint        `json:"menuId"`
	Payload interface{} `json:"payload,omitempty"`
}

func NewCatalogHub() *CatalogHub {
	return &CatalogHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan Event, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

func (h *CatalogHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if h.clients[conn] {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(ev); err != nil {
					log.Println("ws write failed:", err)
					delete(h.clients, conn)
					conn.Close()
				}
			}
			h.mu.Unlock()
		}
	}
}

// Notify implements services.Notifier. Non-blocking: a full buffer drops
// the event rather than stalling a publish.
func (h *CatalogHub) Notify(event string, menuID uint, payload interface{}) {
	select {
	case h.broadcast <- Event{Event: event, MenuID: menuID, Payload: payload}:
	default:
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWS upgrades the connection and keeps it registered until the
// client goes away. Clients only listen; inbound frames are discarded.
func (h *CatalogHub) HandleWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("ws upgrade failed:", err)
		return
	}
	h.register <- conn

	go func() {
		defer func() { h.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

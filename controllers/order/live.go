package orderControllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/savi279/clothing-api/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Feed pushes newly placed orders to connected dashboard clients.
type Feed struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]bool
}

func NewFeed() *Feed {
	return &Feed{conns: make(map[*websocket.Conn]bool)}
}

// liveFeed backs the admin dashboard's order stream.
var liveFeed = NewFeed()

// GET /api/orders/live (admin)
func StreamOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		liveFeed.Serve(c.Writer, c.Request)
	}
}

// Serve upgrades the connection and keeps it registered until the client
// goes away. Incoming messages are discarded; the socket only pushes.
func (f *Feed) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	f.mu.Lock()
	f.conns[conn] = true
	f.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			f.mu.Lock()
			delete(f.conns, conn)
			f.mu.Unlock()
			break
		}
	}
}

// Publish sends the order to every connected client; clients that fail the
// write are dropped.
func (f *Feed) Publish(order models.Order) {
	data, err := json.Marshal(order)
	if err != nil {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for conn := range f.conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			conn.Close()
			delete(f.conns, conn)
		}
	}
}

func (f *Feed) subscribers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.conns)
}

// server/internal/socket/hub.go
package socket

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Các loại event phát cho dashboard client.
const (
	EventZoneCreated    = "zone_created"
	EventActivityAdded  = "activity_added"
	EventSensorsUpdated = "sensors_updated"
)

// Event là tin nhắn JSON gửi xuống các client đang kết nối.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Hub quản lý tất cả các client WebSocket.
type Hub struct {
	// clients lưu các kết nối đang mở, key là ID sinh ra lúc kết nối.
	clients map[string]*websocket.Conn
	// mu bảo vệ map clients khi truy cập từ nhiều goroutine.
	mu sync.Mutex
}

// NewHub tạo một Hub mới.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*websocket.Conn),
	}
}

// Register thêm một client mới vào Hub.
func (h *Hub) Register(clientID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[clientID] = conn
	log.Printf("WebSocket client registered: %s", clientID)
}

// Unregister xóa một client khỏi Hub.
func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[clientID]; ok {
		delete(h.clients, clientID)
		log.Printf("WebSocket client unregistered: %s", clientID)
	}
}

// Broadcast gửi một event tới mọi client đang kết nối.
// Client ghi lỗi (thường là đã ngắt kết nối) bị loại khỏi Hub luôn.
func (h *Hub) Broadcast(event Event) {
	message, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal websocket event: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for clientID, conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("WebSocket write to %s failed, dropping client: %v", clientID, err)
			conn.Close()
			delete(h.clients, clientID)
		}
	}
}

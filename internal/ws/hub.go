// Package ws реализует WebSocket-канал живых уведомлений для
// админ-панели. Каждое новое прохождение формы рассылается всем
// подключенным клиентам.
package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/yourusername/formbuilder-api/internal/domain/entity"
)

// Message - стандартный конверт сообщений, отправляемых клиентам
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub управляет подключенными клиентами и рассылкой сообщений
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	mu         sync.RWMutex
}

// NewHub создает новый хаб
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
	}
}

// Run обрабатывает регистрацию, отключение и рассылку.
// Запускается в отдельной горутине при старте приложения.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			log.Printf("[Hub] Клиент подключен, всего: %d", h.ClientCount())

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			log.Printf("[Hub] Клиент отключен, всего: %d", h.ClientCount())

		case message := <-h.broadcast:
			h.mu.RLock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Канал клиента переполнен, отключаем его
					go func(c *Client) { h.unregister <- c }(client)
				}
			}
			h.mu.RUnlock()
		}
	}
}

// ClientCount возвращает число подключенных клиентов
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// BroadcastNotification отправляет уведомление о новом прохождении
// всем подключенным клиентам
func (h *Hub) BroadcastNotification(notification *entity.Notification) {
	h.broadcastMessage("new_response", notification)
}

func (h *Hub) broadcastMessage(messageType string, data interface{}) {
	msg := Message{
		Type: messageType,
		Data: data,
	}
	messageBytes, err := json.Marshal(msg)
	if err != nil {
		log.Printf("[Hub] Ошибка сериализации сообщения '%s': %v", messageType, err)
		return
	}

	select {
	case h.broadcast <- messageBytes:
	default:
		log.Printf("[Hub] Очередь рассылки переполнена, сообщение '%s' пропущено", messageType)
	}
}

package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/yourusername/formbuilder-api/internal/ws"
)

// WSHandler открывает WebSocket-канал живых уведомлений админ-панели
type WSHandler struct {
	hub *ws.Hub
}

// NewWSHandler создает новый обработчик WebSocket
func NewWSHandler(hub *ws.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

// HandleConnection апгрейдит соединение и подключает клиента к хабу
// GET /ws
func (h *WSHandler) HandleConnection(c *gin.Context) {
	h.hub.ServeWS(c.Writer, c.Request)
}

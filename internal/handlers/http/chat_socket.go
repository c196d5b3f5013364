package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/rafabene/inhouse-backend/internal/domain/ports"
	"github.com/rafabene/inhouse-backend/internal/handlers/dto"
	"github.com/rafabene/inhouse-backend/internal/infrastructure/realtime"
	"github.com/rafabene/inhouse-backend/internal/services"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// ChatStreamHandler entrega as mensagens novas de uma conversa via WebSocket
type ChatStreamHandler struct {
	chatService *services.ChatService
	hub         *realtime.Hub
	upgrader    websocket.Upgrader
	logger      ports.Logger
}

// NewChatStreamHandler cria um novo ChatStreamHandler
func NewChatStreamHandler(chatService *services.ChatService, hub *realtime.Hub, logger ports.Logger) *ChatStreamHandler {
	return &ChatStreamHandler{
		chatService: chatService,
		hub:         hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Mesma política do CORS: qualquer origem
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

// Stream mantém a conexão aberta e envia cada mensagem nova como JSON.
// O cliente só lê; mensagens recebidas dele são descartadas.
// @Summary Stream de mensagens
// @Tags chats
// @Param id path int true "ID da conversa"
// @Success 101 {object} dto.MessageResponse "Upgrade para WebSocket"
// @Failure 404 {object} dto.ErrorResponse
// @Router /chats/{id}/ws [get]
func (h *ChatStreamHandler) Stream(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if _, err := h.chatService.GetChat(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade já respondeu ao cliente
		h.logger.Warn("websocket upgrade failed", "chat_id", id, "error", err)
		return
	}
	defer conn.Close()

	sub := h.hub.Subscribe(id)
	defer h.hub.Unsubscribe(sub)

	h.logger.Debug("websocket subscriber connected", "chat_id", id)

	done := make(chan struct{})
	go h.readPump(conn, done)
	h.writePump(conn, sub, done)
}

// readPump consome o que o cliente enviar só para detectar o fechamento e os pongs
func (h *ChatStreamHandler) readPump(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *ChatStreamHandler) writePump(conn *websocket.Conn, sub *realtime.Subscriber, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case message, ok := <-sub.Messages():
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteJSON(dto.ToMessageResponse(message)); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

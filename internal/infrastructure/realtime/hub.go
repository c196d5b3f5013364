package realtime

import (
	"sync"

	"github.com/rafabene/inhouse-backend/internal/domain/entities"
	"github.com/rafabene/inhouse-backend/internal/domain/ports"
)

const subscriberBuffer = 16

// Subscriber recebe as mensagens de um chat enquanto estiver inscrito
type Subscriber struct {
	chatID   int64
	messages chan *entities.Message
}

// Messages é fechado quando a inscrição é cancelada
func (s *Subscriber) Messages() <-chan *entities.Message {
	return s.messages
}

// Hub distribui mensagens novas para as conexões WebSocket de cada chat
type Hub struct {
	mu     sync.RWMutex
	chats  map[int64]map[*Subscriber]struct{}
	logger ports.Logger
}

// NewHub cria um Hub vazio
func NewHub(logger ports.Logger) *Hub {
	return &Hub{
		chats:  make(map[int64]map[*Subscriber]struct{}),
		logger: logger,
	}
}

var _ ports.MessagePublisher = (*Hub)(nil)

// Subscribe inscreve um novo assinante no chat
func (h *Hub) Subscribe(chatID int64) *Subscriber {
	sub := &Subscriber{chatID: chatID, messages: make(chan *entities.Message, subscriberBuffer)}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.chats[chatID] == nil {
		h.chats[chatID] = make(map[*Subscriber]struct{})
	}
	h.chats[chatID][sub] = struct{}{}
	return sub
}

// Unsubscribe remove o assinante e fecha seu canal. Chamadas repetidas são ignoradas.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subs, ok := h.chats[sub.chatID]
	if !ok {
		return
	}
	if _, ok := subs[sub]; !ok {
		return
	}

	delete(subs, sub)
	close(sub.messages)
	if len(subs) == 0 {
		delete(h.chats, sub.chatID)
	}
}

// PublishMessage entrega a mensagem sem bloquear; assinantes com buffer cheio perdem a mensagem
func (h *Hub) PublishMessage(message *entities.Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.chats[message.ChatID] {
		select {
		case sub.messages <- message:
		default:
			h.logger.Warn("dropping message for slow subscriber", "chat_id", message.ChatID, "message_id", message.ID)
		}
	}
}

// Subscribers retorna quantos assinantes o chat tem
func (h *Hub) Subscribers(chatID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.chats[chatID])
}

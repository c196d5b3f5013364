package ports

import "github.com/rafabene/inhouse-backend/internal/domain/entities"

// MessagePublisher entrega mensagens novas aos assinantes em tempo real de um chat
type MessagePublisher interface {
	PublishMessage(message *entities.Message)
}

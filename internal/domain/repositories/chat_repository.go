package repositories

import (
	"context"

	"github.com/rafabene/inhouse-backend/internal/domain/entities"
)

// ChatRepository define a interface para persistência de chats e mensagens
type ChatRepository interface {
	Create(ctx context.Context, chat *entities.Chat) error
	FindByID(ctx context.Context, id int64) (*entities.Chat, error)
	// FindByParticipants procura o chat nas duas ordens do par
	FindByParticipants(ctx context.Context, emailA, emailB string) (*entities.Chat, error)
	ListByUser(ctx context.Context, userEmail string) ([]*entities.ChatSummary, error)
	CreateMessage(ctx context.Context, message *entities.Message) error
	ListMessages(ctx context.Context, chatID int64) ([]*entities.Message, error)
	TouchLastMessage(ctx context.Context, chatID int64) error
}

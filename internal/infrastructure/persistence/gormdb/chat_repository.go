package gormdb

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/inhouse-backend/internal/domain/entities"
	"github.com/rafabene/inhouse-backend/internal/domain/repositories"
)

// ChatRepository implementa repositories.ChatRepository
type ChatRepository struct {
	db *gorm.DB
}

// NewChatRepository cria um novo ChatRepository
func NewChatRepository(db *gorm.DB) repositories.ChatRepository {
	return &ChatRepository{db: db}
}

func (r *ChatRepository) Create(ctx context.Context, chat *entities.Chat) error {
	model := &ChatModel{User1Email: chat.User1Email, User2Email: chat.User2Email}
	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return err
	}
	*chat = *toChatEntity(model)
	return nil
}

func (r *ChatRepository) FindByID(ctx context.Context, id int64) (*entities.Chat, error) {
	var model ChatModel
	if err := conn(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toChatEntity(&model), nil
}

func (r *ChatRepository) FindByParticipants(ctx context.Context, emailA, emailB string) (*entities.Chat, error) {
	var model ChatModel
	err := conn(ctx, r.db).
		Where("(user1_email = ? AND user2_email = ?) OR (user1_email = ? AND user2_email = ?)",
			emailA, emailB, emailB, emailA).
		Order("id ASC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toChatEntity(&model), nil
}

// chatSummaryRow recebe o chat com a última mensagem
type chatSummaryRow struct {
	ChatModel       `gorm:"embedded"`
	OtherUserEmail  string
	LastMessage     *string
	LastMessageTime *time.Time
}

func (r *ChatRepository) ListByUser(ctx context.Context, userEmail string) ([]*entities.ChatSummary, error) {
	var rows []chatSummaryRow

	err := conn(ctx, r.db).Raw(`
		SELECT c.*,
			CASE WHEN c.user1_email = ? THEN c.user2_email ELSE c.user1_email END AS other_user_email,
			m.content AS last_message,
			m.created_at AS last_message_time
		FROM chats c
		LEFT JOIN messages m ON m.chat_id = c.id
			AND m.id = (
				SELECT id FROM messages
				WHERE chat_id = c.id
				ORDER BY created_at DESC, id DESC
				LIMIT 1
			)
		WHERE c.user1_email = ? OR c.user2_email = ?
		ORDER BY c.last_message_at DESC, c.id DESC
	`, userEmail, userEmail, userEmail).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]*entities.ChatSummary, 0, len(rows))
	for i := range rows {
		result = append(result, &entities.ChatSummary{
			Chat:            toChatEntity(&rows[i].ChatModel),
			OtherUserEmail:  rows[i].OtherUserEmail,
			LastMessage:     rows[i].LastMessage,
			LastMessageTime: rows[i].LastMessageTime,
		})
	}
	return result, nil
}

func (r *ChatRepository) CreateMessage(ctx context.Context, message *entities.Message) error {
	model := &MessageModel{
		ChatID:      message.ChatID,
		SenderEmail: message.SenderEmail,
		Content:     message.Content,
		MessageType: message.MessageType,
		RelatedID:   message.RelatedID,
	}
	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return err
	}
	*message = *toMessageEntity(model)
	return nil
}

// ListMessages retorna as mensagens em ordem de conversa (mais antigas primeiro)
func (r *ChatRepository) ListMessages(ctx context.Context, chatID int64) ([]*entities.Message, error) {
	var models []*MessageModel
	err := conn(ctx, r.db).Where("chat_id = ?", chatID).Order("created_at ASC, id ASC").Find(&models).Error
	if err != nil {
		return nil, err
	}

	messages := make([]*entities.Message, 0, len(models))
	for _, model := range models {
		messages = append(messages, toMessageEntity(model))
	}
	return messages, nil
}

func (r *ChatRepository) TouchLastMessage(ctx context.Context, chatID int64) error {
	db := conn(ctx, r.db)
	return db.Model(&ChatModel{}).Where("id = ?", chatID).Update("last_message_at", db.NowFunc()).Error
}

func toChatEntity(model *ChatModel) *entities.Chat {
	return &entities.Chat{
		ID:            model.ID,
		User1Email:    model.User1Email,
		User2Email:    model.User2Email,
		LastMessageAt: model.LastMessageAt,
	}
}

func toMessageEntity(model *MessageModel) *entities.Message {
	return &entities.Message{
		ID:          model.ID,
		ChatID:      model.ChatID,
		SenderEmail: model.SenderEmail,
		Content:     model.Content,
		MessageType: model.MessageType,
		RelatedID:   model.RelatedID,
		CreatedAt:   model.CreatedAt,
	}
}

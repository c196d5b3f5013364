package services

import (
	"context"

	"github.com/rafabene/inhouse-backend/internal/domain/entities"
	"github.com/rafabene/inhouse-backend/internal/domain/errors"
	"github.com/rafabene/inhouse-backend/internal/domain/ports"
	"github.com/rafabene/inhouse-backend/internal/domain/repositories"
	"github.com/rafabene/inhouse-backend/internal/domain/valueobjects"
)

// ChatService contém a lógica de conversas entre dois usuários
type ChatService struct {
	chatRepo  repositories.ChatRepository
	publisher ports.MessagePublisher
	uow       ports.UnitOfWork
	logger    ports.Logger
}

// NewChatService cria um novo ChatService
func NewChatService(
	chatRepo repositories.ChatRepository,
	publisher ports.MessagePublisher,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *ChatService {
	return &ChatService{
		chatRepo:  chatRepo,
		publisher: publisher,
		uow:       uow,
		logger:    logger,
	}
}

// ListChats retorna as conversas do usuário com a última mensagem de cada uma
func (s *ChatService) ListChats(ctx context.Context, userEmail string) ([]*entities.ChatSummary, error) {
	return s.chatRepo.ListByUser(ctx, valueobjects.NormalizeEmail(userEmail))
}

// GetChat busca uma conversa por ID
func (s *ChatService) GetChat(ctx context.Context, id int64) (*entities.Chat, error) {
	chat, err := s.chatRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if chat == nil {
		return nil, errors.ErrChatNotFound
	}
	return chat, nil
}

// CreateOrGetChat retorna a conversa do par em qualquer ordem ou cria uma nova.
// created indica se a conversa foi criada nesta chamada.
func (s *ChatService) CreateOrGetChat(ctx context.Context, user1Email, user2Email string) (chat *entities.Chat, created bool, err error) {
	user1Email = valueobjects.NormalizeEmail(user1Email)
	user2Email = valueobjects.NormalizeEmail(user2Email)

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.chatRepo.FindByParticipants(txCtx, user1Email, user2Email)
		if err != nil {
			return err
		}
		if existing != nil {
			chat = existing
			return nil
		}

		chat = &entities.Chat{User1Email: user1Email, User2Email: user2Email}
		created = true
		return s.chatRepo.Create(txCtx, chat)
	})
	if err != nil {
		return nil, false, err
	}

	if created {
		s.logger.Info("chat created", "chat_id", chat.ID)
	}
	return chat, created, nil
}

// ListMessages retorna as mensagens da conversa, mais antigas primeiro
func (s *ChatService) ListMessages(ctx context.Context, chatID int64) ([]*entities.Message, error) {
	return s.chatRepo.ListMessages(ctx, chatID)
}

// SendMessageInput representa uma nova mensagem
type SendMessageInput struct {
	ChatID      int64
	SenderEmail string
	Content     string
	MessageType string
	RelatedID   *int64
}

// SendMessage grava a mensagem e renova last_message_at da conversa atomicamente,
// depois entrega a mensagem aos assinantes em tempo real
func (s *ChatService) SendMessage(ctx context.Context, input SendMessageInput) (*entities.Message, error) {
	message := &entities.Message{
		ChatID:      input.ChatID,
		SenderEmail: valueobjects.NormalizeEmail(input.SenderEmail),
		Content:     input.Content,
		MessageType: input.MessageType,
		RelatedID:   input.RelatedID,
	}
	if message.MessageType == "" {
		message.MessageType = entities.DefaultMessageType
	}

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		chat, err := s.chatRepo.FindByID(txCtx, input.ChatID)
		if err != nil {
			return err
		}
		if chat == nil {
			return errors.ErrChatNotFound
		}

		if err := s.chatRepo.CreateMessage(txCtx, message); err != nil {
			return err
		}
		return s.chatRepo.TouchLastMessage(txCtx, input.ChatID)
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		s.publisher.PublishMessage(message)
	}

	s.logger.Debug("message sent", "chat_id", message.ChatID, "message_id", message.ID)
	return message, nil
}

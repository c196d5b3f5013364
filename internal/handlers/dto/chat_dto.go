package dto

import (
	"time"

	"github.com/rafabene/inhouse-backend/internal/domain/entities"
)

// CreateChatRequest identifica os dois participantes
type CreateChatRequest struct {
	User1Email string `json:"user1_email" binding:"required"`
	User2Email string `json:"user2_email" binding:"required"`
}

// SendMessageRequest representa uma nova mensagem
type SendMessageRequest struct {
	ChatID      int64  `json:"chat_id" binding:"required"`
	SenderEmail string `json:"sender_email" binding:"required"`
	Content     string `json:"content" binding:"required"`
	MessageType string `json:"message_type"`
	RelatedID   *int64 `json:"related_id"`
}

// ChatResponse representa uma conversa
type ChatResponse struct {
	ID            int64     `json:"id"`
	User1Email    string    `json:"user1_email"`
	User2Email    string    `json:"user2_email"`
	LastMessageAt time.Time `json:"last_message_at"`
}

// ChatSummaryResponse é a conversa na lista do usuário
type ChatSummaryResponse struct {
	ChatResponse
	OtherUserEmail  string     `json:"other_user_email"`
	LastMessage     *string    `json:"last_message"`
	LastMessageTime *time.Time `json:"last_message_time"`
}

// MessageResponse representa uma mensagem
type MessageResponse struct {
	ID          int64     `json:"id"`
	ChatID      int64     `json:"chat_id"`
	SenderEmail string    `json:"sender_email"`
	Content     string    `json:"content"`
	MessageType string    `json:"message_type"`
	RelatedID   *int64    `json:"related_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToChatResponse(chat *entities.Chat) ChatResponse {
	return ChatResponse{
		ID:            chat.ID,
		User1Email:    chat.User1Email,
		User2Email:    chat.User2Email,
		LastMessageAt: chat.LastMessageAt,
	}
}

func ToChatSummaryResponses(summaries []*entities.ChatSummary) []ChatSummaryResponse {
	responses := make([]ChatSummaryResponse, len(summaries))
	for i, summary := range summaries {
		responses[i] = ChatSummaryResponse{
			ChatResponse:    ToChatResponse(summary.Chat),
			OtherUserEmail:  summary.OtherUserEmail,
			LastMessage:     summary.LastMessage,
			LastMessageTime: summary.LastMessageTime,
		}
	}
	return responses
}

func ToMessageResponse(message *entities.Message) MessageResponse {
	return MessageResponse{
		ID:          message.ID,
		ChatID:      message.ChatID,
		SenderEmail: message.SenderEmail,
		Content:     message.Content,
		MessageType: message.MessageType,
		RelatedID:   message.RelatedID,
		CreatedAt:   message.CreatedAt,
	}
}

func ToMessageResponses(messages []*entities.Message) []MessageResponse {
	responses := make([]MessageResponse, len(messages))
	for i, message := range messages {
		responses[i] = ToMessageResponse(message)
	}
	return responses
}

package entities

import "time"

const DefaultMessageType = "text"

// Chat é uma conversa entre dois usuários, única para o par não ordenado
type Chat struct {
	ID            int64
	User1Email    string
	User2Email    string
	LastMessageAt time.Time
}

// HasParticipant verifica se o email participa da conversa
func (c *Chat) HasParticipant(email string) bool {
	return c.User1Email == email || c.User2Email == email
}

// OtherParticipant retorna o email do outro participante
func (c *Chat) OtherParticipant(email string) string {
	if c.User1Email == email {
		return c.User2Email
	}
	return c.User1Email
}

// ChatSummary é um chat na lista do usuário com a última mensagem
type ChatSummary struct {
	Chat            *Chat
	OtherUserEmail  string
	LastMessage     *string
	LastMessageTime *time.Time
}

// Message é uma mensagem de um chat
type Message struct {
	ID          int64
	ChatID      int64
	SenderEmail string
	Content     string
	MessageType string
	RelatedID   *int64
	CreatedAt   time.Time
}

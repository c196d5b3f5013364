package entities

import "time"

const NotificationTypeNewLead = "new_lead"

// Notification é um aviso para um usuário, criado como efeito de outras ações
type Notification struct {
	ID        int64
	UserEmail string
	Type      string
	Title     *string
	Message   *string
	RelatedID *int64
	Read      bool
	CreatedAt time.Time
}

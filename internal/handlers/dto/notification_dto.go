package dto

import (
	"time"

	"github.com/rafabene/inhouse-backend/internal/domain/entities"
)

// NotificationResponse representa uma notificação
type NotificationResponse struct {
	ID        int64     `json:"id"`
	UserEmail string    `json:"user_email"`
	Type      string    `json:"type"`
	Title     *string   `json:"title"`
	Message   *string   `json:"message"`
	RelatedID *int64    `json:"related_id"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

func ToNotificationResponse(notification *entities.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        notification.ID,
		UserEmail: notification.UserEmail,
		Type:      notification.Type,
		Title:     notification.Title,
		Message:   notification.Message,
		RelatedID: notification.RelatedID,
		Read:      notification.Read,
		CreatedAt: notification.CreatedAt,
	}
}

func ToNotificationResponses(notifications []*entities.Notification) []NotificationResponse {
	responses := make([]NotificationResponse, len(notifications))
	for i, notification := range notifications {
		responses[i] = ToNotificationResponse(notification)
	}
	return responses
}

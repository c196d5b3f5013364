package repositories

import (
	"context"

	"github.com/rafabene/inhouse-backend/internal/domain/entities"
)

// NotificationRepository define a interface para persistência de notificações
type NotificationRepository interface {
	Create(ctx context.Context, notification *entities.Notification) error
	FindByID(ctx context.Context, id int64) (*entities.Notification, error)
	ListByUser(ctx context.Context, userEmail string) ([]*entities.Notification, error)
	MarkRead(ctx context.Context, id int64) error
}

package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rafabene/inhouse-backend/internal/domain/entities"
	"github.com/rafabene/inhouse-backend/internal/domain/repositories"
)

// NotificationRepository implementa repositories.NotificationRepository
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository cria um novo NotificationRepository
func NewNotificationRepository(db *gorm.DB) repositories.NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, notification *entities.Notification) error {
	model := &NotificationModel{
		UserEmail: notification.UserEmail,
		Type:      notification.Type,
		Title:     notification.Title,
		Message:   notification.Message,
		RelatedID: notification.RelatedID,
	}
	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return err
	}
	*notification = *toNotificationEntity(model)
	return nil
}

func (r *NotificationRepository) FindByID(ctx context.Context, id int64) (*entities.Notification, error) {
	var model NotificationModel
	if err := conn(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toNotificationEntity(&model), nil
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userEmail string) ([]*entities.Notification, error) {
	var models []*NotificationModel
	err := conn(ctx, r.db).Where("user_email = ?", userEmail).Order("created_at DESC, id DESC").Find(&models).Error
	if err != nil {
		return nil, err
	}

	notifications := make([]*entities.Notification, 0, len(models))
	for _, model := range models {
		notifications = append(notifications, toNotificationEntity(model))
	}
	return notifications, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id int64) error {
	return conn(ctx, r.db).Model(&NotificationModel{}).Where("id = ?", id).Update("read", true).Error
}

func toNotificationEntity(model *NotificationModel) *entities.Notification {
	return &entities.Notification{
		ID:        model.ID,
		UserEmail: model.UserEmail,
		Type:      model.Type,
		Title:     model.Title,
		Message:   model.Message,
		RelatedID: model.RelatedID,
		Read:      model.Read,
		CreatedAt: model.CreatedAt,
	}
}

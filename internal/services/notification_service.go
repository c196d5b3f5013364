package services

import (
	"context"

	"github.com/rafabene/inhouse-backend/internal/domain/entities"
	"github.com/rafabene/inhouse-backend/internal/domain/errors"
	"github.com/rafabene/inhouse-backend/internal/domain/ports"
	"github.com/rafabene/inhouse-backend/internal/domain/repositories"
	"github.com/rafabene/inhouse-backend/internal/domain/valueobjects"
)

// NotificationService cuida das notificações dos usuários
type NotificationService struct {
	notificationRepo repositories.NotificationRepository
	logger           ports.Logger
}

// NewNotificationService cria um novo NotificationService
func NewNotificationService(notificationRepo repositories.NotificationRepository, logger ports.Logger) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// NotifyInput representa uma nova notificação
type NotifyInput struct {
	UserEmail string
	Type      string
	Title     string
	Message   string
	RelatedID *int64
}

// Notify cria uma notificação não lida. Participa da transação presente no contexto.
func (s *NotificationService) Notify(ctx context.Context, input NotifyInput) (*entities.Notification, error) {
	notification := &entities.Notification{
		UserEmail: valueobjects.NormalizeEmail(input.UserEmail),
		Type:      input.Type,
		Title:     &input.Title,
		Message:   &input.Message,
		RelatedID: input.RelatedID,
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, err
	}

	s.logger.Debug("notification created", "user_email", notification.UserEmail, "type", notification.Type)
	return notification, nil
}

// ListNotifications retorna as notificações do usuário, mais novas primeiro
func (s *NotificationService) ListNotifications(ctx context.Context, userEmail string) ([]*entities.Notification, error) {
	return s.notificationRepo.ListByUser(ctx, valueobjects.NormalizeEmail(userEmail))
}

// MarkRead marca a notificação como lida e retorna o registro atualizado
func (s *NotificationService) MarkRead(ctx context.Context, id int64) (*entities.Notification, error) {
	notification, err := s.notificationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if notification == nil {
		return nil, errors.ErrNotificationNotFound
	}

	if err := s.notificationRepo.MarkRead(ctx, id); err != nil {
		return nil, err
	}

	notification.Read = true
	return notification, nil
}

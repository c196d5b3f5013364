package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/inhouse-backend/internal/domain/ports"
	"github.com/rafabene/inhouse-backend/internal/handlers/dto"
	"github.com/rafabene/inhouse-backend/internal/services"
)

// NotificationHandler lida com as notificações do usuário
type NotificationHandler struct {
	notificationService *services.NotificationService
	logger              ports.Logger
}

// NewNotificationHandler cria um novo NotificationHandler
func NewNotificationHandler(notificationService *services.NotificationService, logger ports.Logger) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		logger:              logger,
	}
}

// ListNotifications lista as notificações, mais novas primeiro
// @Summary Listar notificações
// @Tags notifications
// @Produce json
// @Param user_email query string true "Email do usuário"
// @Success 200 {array} dto.NotificationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userEmail, ok := requiredQuery(c, "user_email", "validation.user_email_required")
	if !ok {
		return
	}

	notifications, err := h.notificationService.ListNotifications(c.Request.Context(), userEmail)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToNotificationResponses(notifications))
}

// MarkRead marca uma notificação como lida
// @Summary Marcar como lida
// @Tags notifications
// @Produce json
// @Param id path int true "ID da notificação"
// @Success 200 {object} dto.NotificationResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	notification, err := h.notificationService.MarkRead(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToNotificationResponse(notification))
}

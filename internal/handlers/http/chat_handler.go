package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/inhouse-backend/internal/domain/ports"
	"github.com/rafabene/inhouse-backend/internal/handlers/dto"
	"github.com/rafabene/inhouse-backend/internal/services"
)

// ChatHandler lida com conversas e mensagens
type ChatHandler struct {
	chatService *services.ChatService
	logger      ports.Logger
}

// NewChatHandler cria um novo ChatHandler
func NewChatHandler(chatService *services.ChatService, logger ports.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		logger:      logger,
	}
}

// ListChats lista as conversas do usuário, mais recentes primeiro
// @Summary Listar conversas
// @Tags chats
// @Produce json
// @Param user_email query string true "Email do usuário"
// @Success 200 {array} dto.ChatSummaryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /chats [get]
func (h *ChatHandler) ListChats(c *gin.Context) {
	userEmail, ok := requiredQuery(c, "user_email", "validation.user_email_required")
	if !ok {
		return
	}

	chats, err := h.chatService.ListChats(c.Request.Context(), userEmail)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToChatSummaryResponses(chats))
}

// CreateChat retorna a conversa existente do par (200) ou cria uma nova (201)
// @Summary Criar ou obter conversa
// @Tags chats
// @Accept json
// @Produce json
// @Param request body dto.CreateChatRequest true "Participantes"
// @Success 200 {object} dto.ChatResponse
// @Success 201 {object} dto.ChatResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /chats [post]
func (h *ChatHandler) CreateChat(c *gin.Context) {
	var req dto.CreateChatRequest
	if !bindJSON(c, &req, "validation.both_emails_required") {
		return
	}

	chat, created, err := h.chatService.CreateOrGetChat(c.Request.Context(), req.User1Email, req.User2Email)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, dto.ToChatResponse(chat))
}

// ListMessages lista as mensagens da conversa, mais antigas primeiro
// @Summary Mensagens da conversa
// @Tags chats
// @Produce json
// @Param id path int true "ID da conversa"
// @Success 200 {array} dto.MessageResponse
// @Router /chats/{id}/messages [get]
func (h *ChatHandler) ListMessages(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	messages, err := h.chatService.ListMessages(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMessageResponses(messages))
}

// SendMessage envia uma mensagem e atualiza a conversa
// @Summary Enviar mensagem
// @Tags chats
// @Accept json
// @Produce json
// @Param request body dto.SendMessageRequest true "Mensagem"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /messages [post]
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req dto.SendMessageRequest
	if !bindJSON(c, &req, "validation.required_fields_missing") {
		return
	}

	message, err := h.chatService.SendMessage(c.Request.Context(), services.SendMessageInput{
		ChatID:      req.ChatID,
		SenderEmail: req.SenderEmail,
		Content:     req.Content,
		MessageType: req.MessageType,
		RelatedID:   req.RelatedID,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMessageResponse(message))
}

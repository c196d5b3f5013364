package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/inhouse-backend/internal/domain/ports"
	"github.com/rafabene/inhouse-backend/internal/handlers/dto"
	"github.com/rafabene/inhouse-backend/internal/services"
)

// EngagementHandler lida com favoritos e interações
type EngagementHandler struct {
	engagementService *services.EngagementService
	logger            ports.Logger
}

// NewEngagementHandler cria um novo EngagementHandler
func NewEngagementHandler(engagementService *services.EngagementService, logger ports.Logger) *EngagementHandler {
	return &EngagementHandler{
		engagementService: engagementService,
		logger:            logger,
	}
}

// AddFavorite favorita um imóvel
// @Summary Adicionar favorito
// @Tags favorites
// @Accept json
// @Produce json
// @Param request body dto.FavoriteRequest true "Usuário e imóvel"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse "Campos ausentes ou já favoritado"
// @Failure 404 {object} dto.ErrorResponse
// @Router /favorites [post]
func (h *EngagementHandler) AddFavorite(c *gin.Context) {
	var req dto.FavoriteRequest
	if !bindJSON(c, &req, "validation.user_property_required") {
		return
	}

	if err := h.engagementService.AddFavorite(c.Request.Context(), req.UserEmail, req.PropertyID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SuccessResponse{Success: true})
}

// RemoveFavorite desfaz um favorito; aceita o imóvel na rota ou em ?property_id=
// @Summary Remover favorito
// @Tags favorites
// @Produce json
// @Param propertyId path int true "ID do imóvel"
// @Param user_email query string true "Email do usuário"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /favorites/{propertyId} [delete]
func (h *EngagementHandler) RemoveFavorite(c *gin.Context) {
	userEmail, ok := requiredQuery(c, "user_email", "validation.user_email_required")
	if !ok {
		return
	}

	var propertyID int64
	if c.Param("propertyId") != "" {
		if propertyID, ok = pathID(c, "propertyId"); !ok {
			return
		}
	} else {
		raw, ok := requiredQuery(c, "property_id", "validation.user_property_required")
		if !ok {
			return
		}
		var err error
		if propertyID, err = strconv.ParseInt(raw, 10, 64); err != nil {
			dto.AbortWithProblem(c, dto.BadRequestErrorResponseI18n(c, "validation.invalid_id"))
			return
		}
	}

	if err := h.engagementService.RemoveFavorite(c.Request.Context(), userEmail, propertyID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// ListFavorites lista os imóveis favoritados pelo usuário
// @Summary Listar favoritos
// @Tags favorites
// @Produce json
// @Param user_email query string true "Email do usuário"
// @Success 200 {array} dto.FavoritePropertyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /favorites [get]
func (h *EngagementHandler) ListFavorites(c *gin.Context) {
	userEmail, ok := requiredQuery(c, "user_email", "validation.user_email_required")
	if !ok {
		return
	}

	favorites, err := h.engagementService.ListFavorites(c.Request.Context(), userEmail)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFavoritePropertyResponses(favorites))
}

// RecordInteraction registra um evento de interação
// @Summary Registrar interação
// @Tags interactions
// @Accept json
// @Produce json
// @Param request body dto.InteractionRequest true "Interação"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /interactions [post]
func (h *EngagementHandler) RecordInteraction(c *gin.Context) {
	var req dto.InteractionRequest
	if !bindJSON(c, &req, "validation.all_fields_required") {
		return
	}

	_, err := h.engagementService.RecordInteraction(c.Request.Context(), services.RecordInteractionInput{
		UserEmail:       req.UserEmail,
		PropertyID:      req.PropertyID,
		InteractionType: req.InteractionType,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SuccessResponse{Success: true})
}

// GetStats agrega as interações de um imóvel
// @Summary Estatísticas de interação
// @Tags interactions
// @Produce json
// @Param propertyId path int true "ID do imóvel"
// @Success 200 {object} dto.InteractionStatsResponse
// @Router /interactions/stats/{propertyId} [get]
func (h *EngagementHandler) GetStats(c *gin.Context) {
	propertyID, ok := pathID(c, "propertyId")
	if !ok {
		return
	}

	stats, err := h.engagementService.GetStats(c.Request.Context(), propertyID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInteractionStatsResponse(stats))
}

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/inhouse-backend/internal/domain/ports"
	"github.com/rafabene/inhouse-backend/internal/handlers/dto"
	"github.com/rafabene/inhouse-backend/internal/services"
)

// OwnerHandler lida com o painel do proprietário e os leads
type OwnerHandler struct {
	ownerService *services.OwnerService
	logger       ports.Logger
}

// NewOwnerHandler cria um novo OwnerHandler
func NewOwnerHandler(ownerService *services.OwnerService, logger ports.Logger) *OwnerHandler {
	return &OwnerHandler{
		ownerService: ownerService,
		logger:       logger,
	}
}

// Dashboard agrega os números do proprietário
// @Summary Painel do proprietário
// @Tags owner
// @Produce json
// @Param owner_email query string true "Email do proprietário"
// @Success 200 {object} dto.DashboardResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /owner/dashboard [get]
func (h *OwnerHandler) Dashboard(c *gin.Context) {
	ownerEmail, ok := requiredQuery(c, "owner_email", "validation.owner_email_required")
	if !ok {
		return
	}

	dashboard, err := h.ownerService.GetDashboard(c.Request.Context(), ownerEmail)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(dashboard))
}

// ListProperties lista os imóveis do proprietário com métricas
// @Summary Imóveis do proprietário
// @Tags owner
// @Produce json
// @Param owner_email query string true "Email do proprietário"
// @Success 200 {array} dto.OwnerPropertyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /owner/properties [get]
func (h *OwnerHandler) ListProperties(c *gin.Context) {
	ownerEmail, ok := requiredQuery(c, "owner_email", "validation.owner_email_required")
	if !ok {
		return
	}

	properties, err := h.ownerService.ListProperties(c.Request.Context(), ownerEmail)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOwnerPropertyResponses(properties))
}

// ListLeads lista os leads dos imóveis do proprietário
// @Summary Leads do proprietário
// @Tags owner
// @Produce json
// @Param owner_email query string true "Email do proprietário"
// @Success 200 {array} dto.OwnerLeadResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /owner/leads [get]
func (h *OwnerHandler) ListLeads(c *gin.Context) {
	ownerEmail, ok := requiredQuery(c, "owner_email", "validation.owner_email_required")
	if !ok {
		return
	}

	leads, err := h.ownerService.ListLeads(c.Request.Context(), ownerEmail)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOwnerLeadResponses(leads))
}

// UpdateLeadStatus altera o status de um lead
// @Summary Atualizar status do lead
// @Tags owner
// @Accept json
// @Produce json
// @Param id path int true "ID do lead"
// @Param request body dto.UpdateLeadStatusRequest true "Status"
// @Success 200 {object} dto.LeadResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /owner/leads/{id} [put]
func (h *OwnerHandler) UpdateLeadStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateLeadStatusRequest
	if !bindJSON(c, &req, "validation.status_required") {
		return
	}

	lead, err := h.ownerService.UpdateLeadStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLeadResponse(lead))
}

// CreateLead registra interesse em um imóvel e notifica o proprietário
// @Summary Criar lead
// @Tags leads
// @Accept json
// @Produce json
// @Param request body dto.CreateLeadRequest true "Lead"
// @Success 201 {object} dto.LeadResponse
// @Failure 400 {object} dto.ErrorResponse "Campos ausentes ou lead duplicado"
// @Failure 404 {object} dto.ErrorResponse
// @Router /leads [post]
func (h *OwnerHandler) CreateLead(c *gin.Context) {
	var req dto.CreateLeadRequest
	if !bindJSON(c, &req, "validation.all_fields_required") {
		return
	}

	lead, err := h.ownerService.CreateLead(c.Request.Context(), services.CreateLeadInput{
		PropertyID: req.PropertyID,
		UserEmail:  req.UserEmail,
		UserName:   req.UserName,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToLeadResponse(lead))
}

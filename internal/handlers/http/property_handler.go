package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/inhouse-backend/internal/domain/ports"
	"github.com/rafabene/inhouse-backend/internal/domain/repositories"
	"github.com/rafabene/inhouse-backend/internal/handlers/dto"
	"github.com/rafabene/inhouse-backend/internal/services"
)

// PropertyHandler lida com o marketplace de imóveis
type PropertyHandler struct {
	propertyService *services.PropertyService
	logger          ports.Logger
}

// NewPropertyHandler cria um novo PropertyHandler
func NewPropertyHandler(propertyService *services.PropertyService, logger ports.Logger) *PropertyHandler {
	return &PropertyHandler{
		propertyService: propertyService,
		logger:          logger,
	}
}

// ListProperties busca imóveis disponíveis
// @Summary Buscar imóveis
// @Tags properties
// @Produce json
// @Param city query string false "Cidade (substring)"
// @Param neighborhood query string false "Bairro (substring)"
// @Param type query string false "Tipo exato"
// @Param maxPrice query number false "Preço máximo"
// @Success 200 {array} dto.PropertyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /properties [get]
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	filters := repositories.PropertyFilters{
		City:         c.Query("city"),
		Neighborhood: c.Query("neighborhood"),
		Type:         c.Query("type"),
	}

	if raw := c.Query("maxPrice"); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			dto.AbortWithProblem(c, dto.BadRequestErrorResponseI18n(c, "validation.invalid_max_price"))
			return
		}
		filters.MaxPrice = &maxPrice
	}

	properties, err := h.propertyService.ListProperties(c.Request.Context(), filters)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPropertyResponses(properties))
}

// GetProperty busca um imóvel por ID
// @Summary Detalhe do imóvel
// @Tags properties
// @Produce json
// @Param id path int true "ID do imóvel"
// @Success 200 {object} dto.PropertyResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /properties/{id} [get]
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	property, err := h.propertyService.GetProperty(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPropertyResponse(property))
}

// CreateProperty cadastra um anúncio
// @Summary Criar imóvel
// @Tags properties
// @Accept json
// @Produce json
// @Param request body dto.CreatePropertyRequest true "Imóvel"
// @Success 201 {object} dto.PropertyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /properties [post]
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	var req dto.CreatePropertyRequest
	if !bindJSON(c, &req, "validation.required_fields_missing") {
		return
	}

	property, err := h.propertyService.CreateProperty(c.Request.Context(), services.CreatePropertyInput{
		OwnerEmail:       req.OwnerEmail,
		Title:            req.Title,
		Address:          req.Address,
		Neighborhood:     req.Neighborhood,
		City:             req.City,
		State:            req.State,
		Country:          req.Country,
		Price:            req.Price,
		Type:             req.Type,
		ImageURL:         req.ImageURL,
		MediaType:        req.MediaType,
		Status:           req.Status,
		CondoFee:         req.CondoFee,
		IPTU:             req.IPTU,
		AcceptsPets:      req.AcceptsPets,
		IsFurnished:      req.IsFurnished,
		GuaranteeType:    req.GuaranteeType,
		AvailabilityDate: req.AvailabilityDate,
		Description:      req.Description,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPropertyResponse(property))
}

// UpdatePhotos substitui a galeria (máximo de 5 fotos)
// @Summary Atualizar fotos
// @Tags properties
// @Accept json
// @Produce json
// @Param id path int true "ID do imóvel"
// @Param request body dto.UpdatePhotosRequest true "Fotos"
// @Success 200 {object} dto.PropertyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /properties/{id}/photos [put]
func (h *PropertyHandler) UpdatePhotos(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdatePhotosRequest
	if !bindJSON(c, &req, "validation.photos_required") {
		return
	}

	property, err := h.propertyService.UpdatePhotos(c.Request.Context(), id, req.Photos)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPropertyResponse(property))
}

// RecordView registra uma visualização do anúncio
// @Summary Registrar visualização
// @Tags properties
// @Accept json
// @Produce json
// @Param id path int true "ID do imóvel"
// @Param request body dto.RecordViewRequest false "Visitante"
// @Success 201 {object} dto.PropertyViewResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /properties/{id}/views [post]
func (h *PropertyHandler) RecordView(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	// Corpo opcional: visitantes anônimos não enviam nada
	var req dto.RecordViewRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &req, "validation.invalid_body") {
		return
	}

	view, err := h.propertyService.RecordView(c.Request.Context(), id, req.UserEmail)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPropertyViewResponse(view))
}

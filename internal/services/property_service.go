package services

import (
	"context"

	"github.com/rafabene/inhouse-backend/internal/domain/entities"
	"github.com/rafabene/inhouse-backend/internal/domain/errors"
	"github.com/rafabene/inhouse-backend/internal/domain/ports"
	"github.com/rafabene/inhouse-backend/internal/domain/repositories"
	"github.com/rafabene/inhouse-backend/internal/domain/valueobjects"
)

// PropertyService contém a lógica do marketplace de imóveis
type PropertyService struct {
	propertyRepo repositories.PropertyRepository
	logger       ports.Logger
}

// NewPropertyService cria um novo PropertyService
func NewPropertyService(propertyRepo repositories.PropertyRepository, logger ports.Logger) *PropertyService {
	return &PropertyService{
		propertyRepo: propertyRepo,
		logger:       logger,
	}
}

// CreatePropertyInput representa os dados de um novo anúncio
type CreatePropertyInput struct {
	OwnerEmail       string
	Title            string
	Address          *string
	Neighborhood     *string
	City             string
	State            *string
	Country          string
	Price            float64
	Type             *string
	ImageURL         *string
	MediaType        *string
	Status           string
	CondoFee         float64
	IPTU             float64
	AcceptsPets      bool
	IsFurnished      bool
	GuaranteeType    string
	AvailabilityDate *string
	Description      *string
}

// ListProperties busca imóveis disponíveis com os filtros informados
func (s *PropertyService) ListProperties(ctx context.Context, filters repositories.PropertyFilters) ([]*entities.Property, error) {
	return s.propertyRepo.ListAvailable(ctx, filters)
}

// GetProperty busca um imóvel por ID, qualquer que seja o status
func (s *PropertyService) GetProperty(ctx context.Context, id int64) (*entities.Property, error) {
	property, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, errors.ErrPropertyNotFound
	}
	return property, nil
}

// CreateProperty cadastra um anúncio com lista de fotos vazia
func (s *PropertyService) CreateProperty(ctx context.Context, input CreatePropertyInput) (*entities.Property, error) {
	property := &entities.Property{
		OwnerEmail:       valueobjects.NormalizeEmail(input.OwnerEmail),
		Title:            input.Title,
		Address:          input.Address,
		Neighborhood:     input.Neighborhood,
		City:             input.City,
		State:            input.State,
		Country:          input.Country,
		Price:            input.Price,
		Type:             input.Type,
		ImageURL:         input.ImageURL,
		MediaType:        input.MediaType,
		Status:           entities.PropertyStatus(input.Status),
		CondoFee:         input.CondoFee,
		IPTU:             input.IPTU,
		AcceptsPets:      input.AcceptsPets,
		IsFurnished:      input.IsFurnished,
		GuaranteeType:    input.GuaranteeType,
		AvailabilityDate: input.AvailabilityDate,
		Description:      input.Description,
		Photos:           []string{},
	}
	property.ApplyDefaults()

	if err := s.propertyRepo.Create(ctx, property); err != nil {
		return nil, err
	}

	s.logger.Info("property created", "property_id", property.ID, "owner", property.OwnerEmail)
	return property, nil
}

// UpdatePhotos substitui a galeria; listas maiores que o limite são truncadas
func (s *PropertyService) UpdatePhotos(ctx context.Context, id int64, photos []string) (*entities.Property, error) {
	property, err := s.GetProperty(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(photos) > entities.MaxPhotos {
		s.logger.Debug("truncating photo list", "property_id", id, "received", len(photos))
	}
	property.SetPhotos(photos)

	if err := s.propertyRepo.UpdatePhotos(ctx, id, property.Photos); err != nil {
		return nil, err
	}

	return property, nil
}

// RecordView registra uma visualização, anônima quando userEmail é nil
func (s *PropertyService) RecordView(ctx context.Context, id int64, userEmail *string) (*entities.PropertyView, error) {
	if _, err := s.GetProperty(ctx, id); err != nil {
		return nil, err
	}

	view := &entities.PropertyView{PropertyID: id}
	if userEmail != nil && *userEmail != "" {
		normalized := valueobjects.NormalizeEmail(*userEmail)
		view.UserEmail = &normalized
	}

	if err := s.propertyRepo.RecordView(ctx, view); err != nil {
		return nil, err
	}
	return view, nil
}

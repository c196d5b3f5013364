package dto

import (
	"time"

	"github.com/rafabene/inhouse-backend/internal/domain/entities"
)

// CreatePropertyRequest representa um novo anúncio
type CreatePropertyRequest struct {
	OwnerEmail       string  `json:"owner_email" binding:"required"`
	Title            string  `json:"title" binding:"required"`
	City             string  `json:"city" binding:"required"`
	Price            float64 `json:"price" binding:"required"`
	Address          *string `json:"address"`
	Neighborhood     *string `json:"neighborhood"`
	State            *string `json:"state"`
	Country          string  `json:"country"`
	Type             *string `json:"type"`
	ImageURL         *string `json:"image_url"`
	MediaType        *string `json:"media_type"`
	Status           string  `json:"status"`
	CondoFee         float64 `json:"condo_fee"`
	IPTU             float64 `json:"iptu"`
	AcceptsPets      bool    `json:"accepts_pets"`
	IsFurnished      bool    `json:"is_furnished"`
	GuaranteeType    string  `json:"guarantee_type"`
	AvailabilityDate *string `json:"availability_date"`
	Description      *string `json:"description"`
}

// UpdatePhotosRequest substitui a galeria do imóvel
type UpdatePhotosRequest struct {
	Photos []string `json:"photos" binding:"required"`
}

// RecordViewRequest identifica quem visualizou; vazio para visitantes anônimos
type RecordViewRequest struct {
	UserEmail *string `json:"user_email"`
}

// PropertyResponse representa um imóvel com a galeria como lista JSON
type PropertyResponse struct {
	ID               int64    `json:"id"`
	OwnerEmail       string   `json:"owner_email"`
	Title            string   `json:"title"`
	Address          *string  `json:"address"`
	Neighborhood     *string  `json:"neighborhood"`
	City             string   `json:"city"`
	State            *string  `json:"state"`
	Country          string   `json:"country"`
	Price            float64  `json:"price"`
	Type             *string  `json:"type"`
	ImageURL         *string  `json:"image_url"`
	MediaType        *string  `json:"media_type"`
	Status           string   `json:"status"`
	CondoFee         float64  `json:"condo_fee"`
	IPTU             float64  `json:"iptu"`
	AcceptsPets      bool     `json:"accepts_pets"`
	IsFurnished      bool     `json:"is_furnished"`
	GuaranteeType    string   `json:"guarantee_type"`
	AvailabilityDate *string  `json:"availability_date"`
	Photos           []string `json:"photos"`
	VerifiedPhotos   bool     `json:"verified_photos"`
	Description      *string  `json:"description"`
}

// PropertyViewResponse confirma uma visualização registrada
type PropertyViewResponse struct {
	ID         int64     `json:"id"`
	PropertyID int64     `json:"property_id"`
	UserEmail  *string   `json:"user_email"`
	ViewedAt   time.Time `json:"viewed_at"`
}

func ToPropertyResponse(property *entities.Property) PropertyResponse {
	photos := property.Photos
	if photos == nil {
		photos = []string{}
	}

	return PropertyResponse{
		ID:               property.ID,
		OwnerEmail:       property.OwnerEmail,
		Title:            property.Title,
		Address:          property.Address,
		Neighborhood:     property.Neighborhood,
		City:             property.City,
		State:            property.State,
		Country:          property.Country,
		Price:            property.Price,
		Type:             property.Type,
		ImageURL:         property.ImageURL,
		MediaType:        property.MediaType,
		Status:           string(property.Status),
		CondoFee:         property.CondoFee,
		IPTU:             property.IPTU,
		AcceptsPets:      property.AcceptsPets,
		IsFurnished:      property.IsFurnished,
		GuaranteeType:    property.GuaranteeType,
		AvailabilityDate: property.AvailabilityDate,
		Photos:           photos,
		VerifiedPhotos:   property.VerifiedPhotos,
		Description:      property.Description,
	}
}

func ToPropertyResponses(properties []*entities.Property) []PropertyResponse {
	responses := make([]PropertyResponse, len(properties))
	for i, property := range properties {
		responses[i] = ToPropertyResponse(property)
	}
	return responses
}

func ToPropertyViewResponse(view *entities.PropertyView) PropertyViewResponse {
	return PropertyViewResponse{
		ID:         view.ID,
		PropertyID: view.PropertyID,
		UserEmail:  view.UserEmail,
		ViewedAt:   view.ViewedAt,
	}
}

package gormdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/rafabene/inhouse-backend/internal/domain/entities"
	"github.com/rafabene/inhouse-backend/internal/domain/repositories"
)

// PropertyRepository implementa repositories.PropertyRepository
type PropertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository cria um novo PropertyRepository
func NewPropertyRepository(db *gorm.DB) repositories.PropertyRepository {
	return &PropertyRepository{db: db}
}

func (r *PropertyRepository) Create(ctx context.Context, property *entities.Property) error {
	model, err := toPropertyModel(property)
	if err != nil {
		return err
	}

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return err
	}

	property.ID = model.ID
	return nil
}

func (r *PropertyRepository) FindByID(ctx context.Context, id int64) (*entities.Property, error) {
	var model PropertyModel
	if err := conn(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toPropertyEntity(&model)
}

func (r *PropertyRepository) ListAvailable(ctx context.Context, filters repositories.PropertyFilters) ([]*entities.Property, error) {
	var models []*PropertyModel

	query := conn(ctx, r.db).Model(&PropertyModel{}).
		Where("status = ?", string(entities.PropertyStatusAvailable))

	// Aplicar filtros
	// LOWER nos dois lados: LIKE do SQLite ignora caixa e o do PostgreSQL não
	if filters.City != "" {
		query = query.Where("LOWER(city) LIKE LOWER(?)", "%"+filters.City+"%")
	}
	if filters.Neighborhood != "" {
		query = query.Where("LOWER(neighborhood) LIKE LOWER(?)", "%"+filters.Neighborhood+"%")
	}
	if filters.Type != "" {
		query = query.Where("type = ?", filters.Type)
	}
	if filters.MaxPrice != nil {
		query = query.Where("price <= ?", *filters.MaxPrice)
	}

	if err := query.Order("id ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	return toPropertyEntities(models)
}

func (r *PropertyRepository) UpdatePhotos(ctx context.Context, id int64, photos []string) error {
	encoded, err := encodePhotos(photos)
	if err != nil {
		return err
	}
	return conn(ctx, r.db).Model(&PropertyModel{}).Where("id = ?", id).Update("photos", encoded).Error
}

// propertyMetricsRow recebe o resultado da consulta agregada do painel
type propertyMetricsRow struct {
	PropertyModel `gorm:"embedded"`
	Views         int64
	Favorites     int64
	Leads         int64
}

// ListByOwnerWithMetrics calcula views, favoritos e leads em uma única consulta agregada
func (r *PropertyRepository) ListByOwnerWithMetrics(ctx context.Context, ownerEmail string) ([]*entities.PropertyMetrics, error) {
	var rows []propertyMetricsRow

	err := conn(ctx, r.db).Raw(`
		SELECT p.*,
			COALESCE(v.total, 0) AS views,
			COALESCE(f.total, 0) AS favorites,
			COALESCE(l.total, 0) AS leads
		FROM properties p
		LEFT JOIN (SELECT property_id, COUNT(*) AS total FROM property_views GROUP BY property_id) v
			ON v.property_id = p.id
		LEFT JOIN (SELECT property_id, COUNT(*) AS total FROM favorites GROUP BY property_id) f
			ON f.property_id = p.id
		LEFT JOIN (SELECT property_id, COUNT(*) AS total FROM leads GROUP BY property_id) l
			ON l.property_id = p.id
		WHERE p.owner_email = ?
		ORDER BY p.id DESC
	`, ownerEmail).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]*entities.PropertyMetrics, 0, len(rows))
	for i := range rows {
		property, err := toPropertyEntity(&rows[i].PropertyModel)
		if err != nil {
			return nil, err
		}
		result = append(result, &entities.PropertyMetrics{
			Property:  property,
			Views:     rows[i].Views,
			Favorites: rows[i].Favorites,
			Leads:     rows[i].Leads,
		})
	}
	return result, nil
}

func (r *PropertyRepository) CountByOwner(ctx context.Context, ownerEmail string) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&PropertyModel{}).Where("owner_email = ?", ownerEmail).Count(&count).Error
	return count, err
}

func (r *PropertyRepository) CountByOwnerGroupedByStatus(ctx context.Context, ownerEmail string) (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}

	err := conn(ctx, r.db).Model(&PropertyModel{}).
		Select("status, COUNT(*) AS count").
		Where("owner_email = ?", ownerEmail).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	byStatus := make(map[string]int64, len(rows))
	for _, row := range rows {
		byStatus[row.Status] = row.Count
	}
	return byStatus, nil
}

func (r *PropertyRepository) RecordView(ctx context.Context, view *entities.PropertyView) error {
	model := &PropertyViewModel{
		PropertyID: view.PropertyID,
		UserEmail:  view.UserEmail,
	}
	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return err
	}
	view.ID = model.ID
	view.ViewedAt = model.ViewedAt
	return nil
}

func (r *PropertyRepository) CountViewsByOwner(ctx context.Context, ownerEmail string) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Table("property_views AS pv").
		Joins("JOIN properties p ON pv.property_id = p.id").
		Where("p.owner_email = ?", ownerEmail).
		Count(&count).Error
	return count, err
}

// Conversores
func encodePhotos(photos []string) (datatypes.JSON, error) {
	if photos == nil {
		photos = []string{}
	}
	encoded, err := json.Marshal(photos)
	if err != nil {
		return nil, fmt.Errorf("failed to encode photos: %w", err)
	}
	return datatypes.JSON(encoded), nil
}

func decodePhotos(raw datatypes.JSON) ([]string, error) {
	photos := []string{}
	if len(raw) == 0 || string(raw) == "null" {
		return photos, nil
	}
	if err := json.Unmarshal(raw, &photos); err != nil {
		return nil, fmt.Errorf("failed to decode photos: %w", err)
	}
	return photos, nil
}

func toPropertyModel(property *entities.Property) (*PropertyModel, error) {
	photos, err := encodePhotos(property.Photos)
	if err != nil {
		return nil, err
	}

	return &PropertyModel{
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
	}, nil
}

func toPropertyEntity(model *PropertyModel) (*entities.Property, error) {
	photos, err := decodePhotos(model.Photos)
	if err != nil {
		return nil, err
	}

	return &entities.Property{
		ID:               model.ID,
		OwnerEmail:       model.OwnerEmail,
		Title:            model.Title,
		Address:          model.Address,
		Neighborhood:     model.Neighborhood,
		City:             model.City,
		State:            model.State,
		Country:          model.Country,
		Price:            model.Price,
		Type:             model.Type,
		ImageURL:         model.ImageURL,
		MediaType:        model.MediaType,
		Status:           entities.PropertyStatus(model.Status),
		CondoFee:         model.CondoFee,
		IPTU:             model.IPTU,
		AcceptsPets:      model.AcceptsPets,
		IsFurnished:      model.IsFurnished,
		GuaranteeType:    model.GuaranteeType,
		AvailabilityDate: model.AvailabilityDate,
		Photos:           photos,
		VerifiedPhotos:   model.VerifiedPhotos,
		Description:      model.Description,
	}, nil
}

func toPropertyEntities(models []*PropertyModel) ([]*entities.Property, error) {
	properties := make([]*entities.Property, 0, len(models))
	for _, model := range models {
		property, err := toPropertyEntity(model)
		if err != nil {
			return nil, err
		}
		properties = append(properties, property)
	}
	return properties, nil
}

package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rafabene/inhouse-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/inhouse-backend/internal/domain/errors"
	"github.com/rafabene/inhouse-backend/internal/domain/repositories"
)

// LeadRepository implementa repositories.LeadRepository
type LeadRepository struct {
	db *gorm.DB
}

// NewLeadRepository cria um novo LeadRepository
func NewLeadRepository(db *gorm.DB) repositories.LeadRepository {
	return &LeadRepository{db: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *entities.Lead) error {
	model := &LeadModel{
		PropertyID: lead.PropertyID,
		UserEmail:  lead.UserEmail,
		UserName:   lead.UserName,
		Status:     string(lead.Status),
	}

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrLeadAlreadyExists
		}
		return err
	}

	*lead = *toLeadEntity(model)
	return nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id int64) (*entities.Lead, error) {
	var model LeadModel
	if err := conn(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toLeadEntity(&model), nil
}

// UpdateStatus grava o status sem validar o valor; updated_at é renovado pelo GORM
func (r *LeadRepository) UpdateStatus(ctx context.Context, id int64, status entities.LeadStatus) error {
	return conn(ctx, r.db).Model(&LeadModel{}).Where("id = ?", id).Update("status", string(status)).Error
}

// ownerLeadRow recebe o join lead + imóvel
type ownerLeadRow struct {
	LeadModel            `gorm:"embedded"`
	PropertyTitle        string
	PropertyPrice        float64
	PropertyNeighborhood *string
}

func (r *LeadRepository) ListByOwner(ctx context.Context, ownerEmail string) ([]*entities.OwnerLead, error) {
	var rows []ownerLeadRow

	err := conn(ctx, r.db).Raw(`
		SELECT l.*,
			p.title AS property_title,
			p.price AS property_price,
			p.neighborhood AS property_neighborhood
		FROM leads l
		JOIN properties p ON l.property_id = p.id
		WHERE p.owner_email = ?
		ORDER BY l.created_at DESC, l.id DESC
	`, ownerEmail).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]*entities.OwnerLead, 0, len(rows))
	for i := range rows {
		result = append(result, &entities.OwnerLead{
			Lead:                 toLeadEntity(&rows[i].LeadModel),
			PropertyTitle:        rows[i].PropertyTitle,
			PropertyPrice:        rows[i].PropertyPrice,
			PropertyNeighborhood: rows[i].PropertyNeighborhood,
		})
	}
	return result, nil
}

func (r *LeadRepository) CountByOwner(ctx context.Context, ownerEmail string) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Table("leads AS l").
		Joins("JOIN properties p ON l.property_id = p.id").
		Where("p.owner_email = ?", ownerEmail).
		Distinct("l.id").
		Count(&count).Error
	return count, err
}

func toLeadEntity(model *LeadModel) *entities.Lead {
	return &entities.Lead{
		ID:         model.ID,
		PropertyID: model.PropertyID,
		UserEmail:  model.UserEmail,
		UserName:   model.UserName,
		Status:     entities.LeadStatus(model.Status),
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}

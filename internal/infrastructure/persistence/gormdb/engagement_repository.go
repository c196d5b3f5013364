package gormdb

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/inhouse-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/inhouse-backend/internal/domain/errors"
	"github.com/rafabene/inhouse-backend/internal/domain/repositories"
)

// FavoriteRepository implementa repositories.FavoriteRepository
type FavoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository cria um novo FavoriteRepository
func NewFavoriteRepository(db *gorm.DB) repositories.FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) Add(ctx context.Context, favorite *entities.Favorite) error {
	model := &FavoriteModel{UserEmail: favorite.UserEmail, PropertyID: favorite.PropertyID}

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyFavorited
		}
		return err
	}

	favorite.ID = model.ID
	favorite.CreatedAt = model.CreatedAt
	return nil
}

func (r *FavoriteRepository) Remove(ctx context.Context, userEmail string, propertyID int64) error {
	return conn(ctx, r.db).
		Where("property_id = ? AND user_email = ?", propertyID, userEmail).
		Delete(&FavoriteModel{}).Error
}

// favoritePropertyRow recebe o join favorito + imóvel
type favoritePropertyRow struct {
	PropertyModel `gorm:"embedded"`
	FavoritedAt   time.Time
}

func (r *FavoriteRepository) ListByUser(ctx context.Context, userEmail string) ([]*entities.FavoriteProperty, error) {
	var rows []favoritePropertyRow

	err := conn(ctx, r.db).Raw(`
		SELECT p.*, f.created_at AS favorited_at
		FROM favorites f
		JOIN properties p ON f.property_id = p.id
		WHERE f.user_email = ?
		ORDER BY f.created_at DESC, f.id DESC
	`, userEmail).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]*entities.FavoriteProperty, 0, len(rows))
	for i := range rows {
		property, err := toPropertyEntity(&rows[i].PropertyModel)
		if err != nil {
			return nil, err
		}
		result = append(result, &entities.FavoriteProperty{
			Property:    property,
			FavoritedAt: rows[i].FavoritedAt,
		})
	}
	return result, nil
}

func (r *FavoriteRepository) CountByProperty(ctx context.Context, propertyID int64) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&FavoriteModel{}).Where("property_id = ?", propertyID).Count(&count).Error
	return count, err
}

// InteractionRepository implementa repositories.InteractionRepository
type InteractionRepository struct {
	db *gorm.DB
}

// NewInteractionRepository cria um novo InteractionRepository
func NewInteractionRepository(db *gorm.DB) repositories.InteractionRepository {
	return &InteractionRepository{db: db}
}

func (r *InteractionRepository) Create(ctx context.Context, interaction *entities.Interaction) error {
	model := &InteractionModel{
		UserEmail:       interaction.UserEmail,
		PropertyID:      interaction.PropertyID,
		InteractionType: interaction.InteractionType,
	}
	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return err
	}
	interaction.ID = model.ID
	interaction.CreatedAt = model.CreatedAt
	return nil
}

func (r *InteractionRepository) CountByType(ctx context.Context, propertyID int64) ([]entities.InteractionCount, error) {
	var rows []struct {
		InteractionType string
		Count           int64
	}

	err := conn(ctx, r.db).Model(&InteractionModel{}).
		Select("interaction_type, COUNT(*) AS count").
		Where("property_id = ?", propertyID).
		Group("interaction_type").
		Order("interaction_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make([]entities.InteractionCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, entities.InteractionCount{InteractionType: row.InteractionType, Count: row.Count})
	}
	return counts, nil
}

package services

import (
	"context"

	"github.com/rafabene/inhouse-backend/internal/domain/entities"
	"github.com/rafabene/inhouse-backend/internal/domain/errors"
	"github.com/rafabene/inhouse-backend/internal/domain/ports"
	"github.com/rafabene/inhouse-backend/internal/domain/repositories"
	"github.com/rafabene/inhouse-backend/internal/domain/valueobjects"
)

// EngagementService cuida de favoritos e do log de interações
type EngagementService struct {
	favoriteRepo    repositories.FavoriteRepository
	interactionRepo repositories.InteractionRepository
	propertyRepo    repositories.PropertyRepository
	logger          ports.Logger
}

// NewEngagementService cria um novo EngagementService
func NewEngagementService(
	favoriteRepo repositories.FavoriteRepository,
	interactionRepo repositories.InteractionRepository,
	propertyRepo repositories.PropertyRepository,
	logger ports.Logger,
) *EngagementService {
	return &EngagementService{
		favoriteRepo:    favoriteRepo,
		interactionRepo: interactionRepo,
		propertyRepo:    propertyRepo,
		logger:          logger,
	}
}

// AddFavorite marca o imóvel como favorito do usuário
func (s *EngagementService) AddFavorite(ctx context.Context, userEmail string, propertyID int64) error {
	if err := s.ensureProperty(ctx, propertyID); err != nil {
		return err
	}

	favorite := &entities.Favorite{
		UserEmail:  valueobjects.NormalizeEmail(userEmail),
		PropertyID: propertyID,
	}
	if err := s.favoriteRepo.Add(ctx, favorite); err != nil {
		return err
	}

	s.logger.Info("favorite added", "user_email", favorite.UserEmail, "property_id", propertyID)
	return nil
}

// RemoveFavorite desfaz o favorito; remover um par inexistente não é erro
func (s *EngagementService) RemoveFavorite(ctx context.Context, userEmail string, propertyID int64) error {
	return s.favoriteRepo.Remove(ctx, valueobjects.NormalizeEmail(userEmail), propertyID)
}

// ListFavorites retorna os imóveis favoritados, mais recentes primeiro
func (s *EngagementService) ListFavorites(ctx context.Context, userEmail string) ([]*entities.FavoriteProperty, error) {
	return s.favoriteRepo.ListByUser(ctx, valueobjects.NormalizeEmail(userEmail))
}

// RecordInteractionInput representa um evento de interação com um imóvel
type RecordInteractionInput struct {
	UserEmail       string
	PropertyID      int64
	InteractionType string
}

// RecordInteraction adiciona um evento ao log, sem deduplicação
func (s *EngagementService) RecordInteraction(ctx context.Context, input RecordInteractionInput) (*entities.Interaction, error) {
	if err := s.ensureProperty(ctx, input.PropertyID); err != nil {
		return nil, err
	}

	interaction := &entities.Interaction{
		UserEmail:       valueobjects.NormalizeEmail(input.UserEmail),
		PropertyID:      input.PropertyID,
		InteractionType: input.InteractionType,
	}
	if err := s.interactionRepo.Create(ctx, interaction); err != nil {
		return nil, err
	}
	return interaction, nil
}

// GetStats agrega as interações por tipo e conta os favoritos do imóvel
func (s *EngagementService) GetStats(ctx context.Context, propertyID int64) (*entities.InteractionStats, error) {
	counts, err := s.interactionRepo.CountByType(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	favorites, err := s.favoriteRepo.CountByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	if counts == nil {
		counts = []entities.InteractionCount{}
	}
	return &entities.InteractionStats{Interactions: counts, Favorites: favorites}, nil
}

func (s *EngagementService) ensureProperty(ctx context.Context, propertyID int64) error {
	property, err := s.propertyRepo.FindByID(ctx, propertyID)
	if err != nil {
		return err
	}
	if property == nil {
		return errors.ErrPropertyNotFound
	}
	return nil
}

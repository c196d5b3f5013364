package repositories

import (
	"context"

	"github.com/rafabene/inhouse-backend/internal/domain/entities"
)

// FavoriteRepository define a interface para persistência de favoritos
type FavoriteRepository interface {
	// Add retorna errors.ErrAlreadyFavorited quando o par já existe
	Add(ctx context.Context, favorite *entities.Favorite) error
	// Remove é idempotente
	Remove(ctx context.Context, userEmail string, propertyID int64) error
	ListByUser(ctx context.Context, userEmail string) ([]*entities.FavoriteProperty, error)
	CountByProperty(ctx context.Context, propertyID int64) (int64, error)
}

// InteractionRepository define a interface para o log de interações
type InteractionRepository interface {
	Create(ctx context.Context, interaction *entities.Interaction) error
	CountByType(ctx context.Context, propertyID int64) ([]entities.InteractionCount, error)
}

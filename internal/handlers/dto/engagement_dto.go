package dto

import (
	"time"

	"github.com/rafabene/inhouse-backend/internal/domain/entities"
)

// FavoriteRequest identifica o par usuário/imóvel
type FavoriteRequest struct {
	UserEmail  string `json:"user_email" binding:"required"`
	PropertyID int64  `json:"property_id" binding:"required"`
}

// InteractionRequest representa um evento de interação
type InteractionRequest struct {
	UserEmail       string `json:"user_email" binding:"required"`
	PropertyID      int64  `json:"property_id" binding:"required"`
	InteractionType string `json:"interaction_type" binding:"required"`
}

// FavoritePropertyResponse é o imóvel favoritado com a data do favorito
type FavoritePropertyResponse struct {
	PropertyResponse
	FavoritedAt time.Time `json:"favorited_at"`
}

// InteractionResponse representa um evento registrado
type InteractionResponse struct {
	ID              int64     `json:"id"`
	UserEmail       string    `json:"user_email"`
	PropertyID      int64     `json:"property_id"`
	InteractionType string    `json:"interaction_type"`
	CreatedAt       time.Time `json:"created_at"`
}

// InteractionCountResponse é a contagem de um tipo de interação
type InteractionCountResponse struct {
	InteractionType string `json:"interaction_type"`
	Count           int64  `json:"count"`
}

// InteractionStatsResponse agrega as interações e os favoritos de um imóvel
type InteractionStatsResponse struct {
	Interactions []InteractionCountResponse `json:"interactions"`
	Favorites    int64                      `json:"favorites"`
}

func ToFavoritePropertyResponses(favorites []*entities.FavoriteProperty) []FavoritePropertyResponse {
	responses := make([]FavoritePropertyResponse, len(favorites))
	for i, favorite := range favorites {
		responses[i] = FavoritePropertyResponse{
			PropertyResponse: ToPropertyResponse(favorite.Property),
			FavoritedAt:      favorite.FavoritedAt,
		}
	}
	return responses
}

func ToInteractionResponse(interaction *entities.Interaction) InteractionResponse {
	return InteractionResponse{
		ID:              interaction.ID,
		UserEmail:       interaction.UserEmail,
		PropertyID:      interaction.PropertyID,
		InteractionType: interaction.InteractionType,
		CreatedAt:       interaction.CreatedAt,
	}
}

func ToInteractionStatsResponse(stats *entities.InteractionStats) InteractionStatsResponse {
	counts := make([]InteractionCountResponse, len(stats.Interactions))
	for i, count := range stats.Interactions {
		counts[i] = InteractionCountResponse{InteractionType: count.InteractionType, Count: count.Count}
	}
	return InteractionStatsResponse{Interactions: counts, Favorites: stats.Favorites}
}

package entities

import "time"

// Favorite marca um imóvel como favorito de um usuário (único por par)
type Favorite struct {
	ID         int64
	UserEmail  string
	PropertyID int64
	CreatedAt  time.Time
}

// FavoriteProperty é um imóvel favoritado com a data em que foi marcado
type FavoriteProperty struct {
	Property    *Property
	FavoritedAt time.Time
}

// Interaction é um evento de uso sem deduplicação (ex.: "viewed", "clicked")
type Interaction struct {
	ID              int64
	UserEmail       string
	PropertyID      int64
	InteractionType string
	CreatedAt       time.Time
}

// InteractionCount é a contagem de interações de um tipo
type InteractionCount struct {
	InteractionType string
	Count           int64
}

// InteractionStats resume o engajamento de um imóvel
type InteractionStats struct {
	Interactions []InteractionCount
	Favorites    int64
}

// PropertyView registra uma visualização de imóvel
type PropertyView struct {
	ID         int64
	PropertyID int64
	UserEmail  *string
	ViewedAt   time.Time
}

// Lease é o vínculo de ocupação de um usuário com um imóvel
type Lease struct {
	ID         int64
	UserEmail  string
	PropertyID int64
	Status     string
}

package repositories

import (
	"context"

	"github.com/rafabene/inhouse-backend/internal/domain/entities"
)

// PropertyRepository define a interface para persistência de imóveis
type PropertyRepository interface {
	Create(ctx context.Context, property *entities.Property) error
	FindByID(ctx context.Context, id int64) (*entities.Property, error)
	// ListAvailable retorna apenas imóveis com status Available
	ListAvailable(ctx context.Context, filters PropertyFilters) ([]*entities.Property, error)
	UpdatePhotos(ctx context.Context, id int64, photos []string) error
	// ListByOwnerWithMetrics retorna os imóveis do proprietário com views, favoritos e leads
	ListByOwnerWithMetrics(ctx context.Context, ownerEmail string) ([]*entities.PropertyMetrics, error)
	CountByOwner(ctx context.Context, ownerEmail string) (int64, error)
	CountByOwnerGroupedByStatus(ctx context.Context, ownerEmail string) (map[string]int64, error)
	RecordView(ctx context.Context, view *entities.PropertyView) error
	CountViewsByOwner(ctx context.Context, ownerEmail string) (int64, error)
}

// PropertyFilters contém filtros para a busca do marketplace
type PropertyFilters struct {
	City         string   // substring
	Neighborhood string   // substring
	Type         string   // igualdade
	MaxPrice     *float64 // price <= MaxPrice
}

package repositories

import (
	"context"

	"github.com/rafabene/inhouse-backend/internal/domain/entities"
)

// LeadRepository define a interface para persistência de leads
type LeadRepository interface {
	// Create retorna errors.ErrLeadAlreadyExists quando o par já existe
	Create(ctx context.Context, lead *entities.Lead) error
	FindByID(ctx context.Context, id int64) (*entities.Lead, error)
	UpdateStatus(ctx context.Context, id int64, status entities.LeadStatus) error
	ListByOwner(ctx context.Context, ownerEmail string) ([]*entities.OwnerLead, error)
	CountByOwner(ctx context.Context, ownerEmail string) (int64, error)
}

package services

import (
	"context"
	"fmt"

	"github.com/rafabene/inhouse-backend/internal/domain/entities"
	"github.com/rafabene/inhouse-backend/internal/domain/errors"
	"github.com/rafabene/inhouse-backend/internal/domain/ports"
	"github.com/rafabene/inhouse-backend/internal/domain/repositories"
	"github.com/rafabene/inhouse-backend/internal/domain/valueobjects"
)

// OwnerService contém o painel do proprietário e o funil de leads
type OwnerService struct {
	propertyRepo  repositories.PropertyRepository
	leadRepo      repositories.LeadRepository
	notifications *NotificationService
	uow           ports.UnitOfWork
	logger        ports.Logger
}

// NewOwnerService cria um novo OwnerService
func NewOwnerService(
	propertyRepo repositories.PropertyRepository,
	leadRepo repositories.LeadRepository,
	notifications *NotificationService,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *OwnerService {
	return &OwnerService{
		propertyRepo:  propertyRepo,
		leadRepo:      leadRepo,
		notifications: notifications,
		uow:           uow,
		logger:        logger,
	}
}

// GetDashboard agrega totais de imóveis, leads e visualizações do proprietário
func (s *OwnerService) GetDashboard(ctx context.Context, ownerEmail string) (*entities.OwnerDashboard, error) {
	ownerEmail = valueobjects.NormalizeEmail(ownerEmail)

	totalProperties, err := s.propertyRepo.CountByOwner(ctx, ownerEmail)
	if err != nil {
		return nil, err
	}

	totalLeads, err := s.leadRepo.CountByOwner(ctx, ownerEmail)
	if err != nil {
		return nil, err
	}

	totalViews, err := s.propertyRepo.CountViewsByOwner(ctx, ownerEmail)
	if err != nil {
		return nil, err
	}

	byStatus, err := s.propertyRepo.CountByOwnerGroupedByStatus(ctx, ownerEmail)
	if err != nil {
		return nil, err
	}

	return &entities.OwnerDashboard{
		TotalProperties:    totalProperties,
		TotalLeads:         totalLeads,
		TotalViews:         totalViews,
		PropertiesByStatus: byStatus,
	}, nil
}

// ListProperties retorna os imóveis do proprietário com suas métricas
func (s *OwnerService) ListProperties(ctx context.Context, ownerEmail string) ([]*entities.PropertyMetrics, error) {
	return s.propertyRepo.ListByOwnerWithMetrics(ctx, valueobjects.NormalizeEmail(ownerEmail))
}

// ListLeads retorna os leads de todos os imóveis do proprietário
func (s *OwnerService) ListLeads(ctx context.Context, ownerEmail string) ([]*entities.OwnerLead, error) {
	return s.leadRepo.ListByOwner(ctx, valueobjects.NormalizeEmail(ownerEmail))
}

// UpdateLeadStatus grava o novo status; o valor não é restrito ao funil conhecido
func (s *OwnerService) UpdateLeadStatus(ctx context.Context, id int64, status string) (*entities.Lead, error) {
	lead, err := s.leadRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, errors.ErrLeadNotFound
	}

	if err := s.leadRepo.UpdateStatus(ctx, id, entities.LeadStatus(status)); err != nil {
		return nil, err
	}

	s.logger.Info("lead status updated", "lead_id", id, "from", lead.Status, "to", status)

	updated, err := s.leadRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, errors.ErrLeadNotFound
	}
	return updated, nil
}

// CreateLeadInput representa o interesse de um usuário em um imóvel
type CreateLeadInput struct {
	PropertyID int64
	UserEmail  string
	UserName   string
}

// CreateLead registra o lead e notifica o proprietário na mesma transação
func (s *OwnerService) CreateLead(ctx context.Context, input CreateLeadInput) (*entities.Lead, error) {
	lead := &entities.Lead{
		PropertyID: input.PropertyID,
		UserEmail:  valueobjects.NormalizeEmail(input.UserEmail),
		UserName:   input.UserName,
		Status:     entities.LeadStatusNew,
	}

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		property, err := s.propertyRepo.FindByID(txCtx, input.PropertyID)
		if err != nil {
			return err
		}
		if property == nil {
			return errors.ErrPropertyNotFound
		}

		if err := s.leadRepo.Create(txCtx, lead); err != nil {
			return err
		}

		_, err = s.notifications.Notify(txCtx, NotifyInput{
			UserEmail: property.OwnerEmail,
			Type:      entities.NotificationTypeNewLead,
			Title:     "New lead",
			Message:   fmt.Sprintf("%s is interested in %s", lead.UserName, property.Title),
			RelatedID: &lead.ID,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("lead created", "lead_id", lead.ID, "property_id", lead.PropertyID)
	return lead, nil
}

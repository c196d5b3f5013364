package dto

import (
	"time"

	"github.com/rafabene/inhouse-backend/internal/domain/entities"
)

// CreateLeadRequest registra o interesse de um usuário em um imóvel
type CreateLeadRequest struct {
	PropertyID int64  `json:"property_id" binding:"required"`
	UserEmail  string `json:"user_email" binding:"required"`
	UserName   string `json:"user_name" binding:"required"`
}

// UpdateLeadStatusRequest carrega o novo status do lead
type UpdateLeadStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// DashboardResponse agrega os números do proprietário
type DashboardResponse struct {
	TotalProperties    int64            `json:"total_properties"`
	TotalLeads         int64            `json:"total_leads"`
	TotalViews         int64            `json:"total_views"`
	PropertiesByStatus map[string]int64 `json:"properties_by_status"`
}

// OwnerPropertyResponse é o imóvel anotado com suas métricas
type OwnerPropertyResponse struct {
	PropertyResponse
	Views     int64 `json:"views"`
	Favorites int64 `json:"favorites"`
	Leads     int64 `json:"leads"`
}

// LeadResponse representa um lead
type LeadResponse struct {
	ID         int64     `json:"id"`
	PropertyID int64     `json:"property_id"`
	UserEmail  string    `json:"user_email"`
	UserName   string    `json:"user_name"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// OwnerLeadResponse é o lead com os dados do imóvel
type OwnerLeadResponse struct {
	LeadResponse
	PropertyTitle        string  `json:"property_title"`
	PropertyPrice        float64 `json:"property_price"`
	PropertyNeighborhood *string `json:"property_neighborhood"`
}

func ToDashboardResponse(dashboard *entities.OwnerDashboard) DashboardResponse {
	byStatus := dashboard.PropertiesByStatus
	if byStatus == nil {
		byStatus = map[string]int64{}
	}
	return DashboardResponse{
		TotalProperties:    dashboard.TotalProperties,
		TotalLeads:         dashboard.TotalLeads,
		TotalViews:         dashboard.TotalViews,
		PropertiesByStatus: byStatus,
	}
}

func ToOwnerPropertyResponses(metrics []*entities.PropertyMetrics) []OwnerPropertyResponse {
	responses := make([]OwnerPropertyResponse, len(metrics))
	for i, m := range metrics {
		responses[i] = OwnerPropertyResponse{
			PropertyResponse: ToPropertyResponse(m.Property),
			Views:            m.Views,
			Favorites:        m.Favorites,
			Leads:            m.Leads,
		}
	}
	return responses
}

func ToLeadResponse(lead *entities.Lead) LeadResponse {
	return LeadResponse{
		ID:         lead.ID,
		PropertyID: lead.PropertyID,
		UserEmail:  lead.UserEmail,
		UserName:   lead.UserName,
		Status:     string(lead.Status),
		CreatedAt:  lead.CreatedAt,
		UpdatedAt:  lead.UpdatedAt,
	}
}

func ToOwnerLeadResponses(leads []*entities.OwnerLead) []OwnerLeadResponse {
	responses := make([]OwnerLeadResponse, len(leads))
	for i, lead := range leads {
		responses[i] = OwnerLeadResponse{
			LeadResponse:         ToLeadResponse(lead.Lead),
			PropertyTitle:        lead.PropertyTitle,
			PropertyPrice:        lead.PropertyPrice,
			PropertyNeighborhood: lead.PropertyNeighborhood,
		}
	}
	return responses
}

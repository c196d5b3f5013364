package entities

import "time"

// LeadStatus é a etapa do funil de um lead.
// Atualizações aceitam qualquer texto; os valores abaixo são os usados pelo painel.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "Novo"
	LeadStatusContacted LeadStatus = "Contatado"
	LeadStatusVisited   LeadStatus = "Visitado"
	LeadStatusClosed    LeadStatus = "Fechado"
)

// Lead é o interesse registrado de um usuário em um imóvel (único por par)
type Lead struct {
	ID         int64
	PropertyID int64
	UserEmail  string
	UserName   string
	Status     LeadStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// OwnerLead é um lead acompanhado dos dados do imóvel de interesse
type OwnerLead struct {
	Lead                 *Lead
	PropertyTitle        string
	PropertyPrice        float64
	PropertyNeighborhood *string
}

// OwnerDashboard agrega os números do painel do proprietário
type OwnerDashboard struct {
	TotalProperties    int64
	TotalLeads         int64
	TotalViews         int64
	PropertiesByStatus map[string]int64
}

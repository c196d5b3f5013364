package entities

// PropertyStatus é o estado de disponibilidade de um imóvel
type PropertyStatus string

const (
	PropertyStatusAvailable PropertyStatus = "Available"
	PropertyStatusReserved  PropertyStatus = "Reserved"
	PropertyStatusRented    PropertyStatus = "Rented"
)

const (
	DefaultCountry       = "Brasil"
	DefaultGuaranteeType = "Fiador"
	// MaxPhotos é o limite de fotos guardadas por imóvel
	MaxPhotos = 5
)

// Property representa um imóvel anunciado
type Property struct {
	ID               int64
	OwnerEmail       string
	Title            string
	Address          *string
	Neighborhood     *string
	City             string
	State            *string
	Country          string
	Price            float64
	Type             *string
	ImageURL         *string
	MediaType        *string
	Status           PropertyStatus
	CondoFee         float64
	IPTU             float64
	AcceptsPets      bool
	IsFurnished      bool
	GuaranteeType    string
	AvailabilityDate *string
	Photos           []string
	VerifiedPhotos   bool
	Description      *string
}

// ApplyDefaults preenche os campos opcionais não informados
func (p *Property) ApplyDefaults() {
	if p.Country == "" {
		p.Country = DefaultCountry
	}
	if p.Status == "" {
		p.Status = PropertyStatusAvailable
	}
	if p.GuaranteeType == "" {
		p.GuaranteeType = DefaultGuaranteeType
	}
}

// SetPhotos substitui as fotos descartando o excedente de MaxPhotos
func (p *Property) SetPhotos(photos []string) {
	if len(photos) > MaxPhotos {
		photos = photos[:MaxPhotos]
	}
	p.Photos = append([]string{}, photos...)
}

// PropertyMetrics agrega o engajamento de um imóvel para o painel do proprietário
type PropertyMetrics struct {
	Property  *Property
	Views     int64
	Favorites int64
	Leads     int64
}

package gormdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/rafabene/inhouse-backend/internal/domain/entities"
	"github.com/rafabene/inhouse-backend/internal/domain/ports"
)

const (
	// DemoEmail é o usuário sentinela: se existir, o seed já rodou
	DemoEmail    = "admin@inhouse.com"
	demoPassword = "admin"
)

func strPtr(s string) *string { return &s }

// demoProperties são os quatro imóveis de demonstração do proprietário sentinela
var demoProperties = []PropertyModel{
	{
		Title: "Sunny Loft in Leblon", Address: strPtr("Av. Delfim Moreira, 100"), Neighborhood: strPtr("Leblon"),
		City: "Rio de Janeiro", State: strPtr("RJ"), Price: 6500, Type: strPtr("Apartment"),
		CondoFee: 800, IPTU: 200, AcceptsPets: true, IsFurnished: true, GuaranteeType: "Fiador ou Caução",
		AvailabilityDate: strPtr("2026-02-01"), Description: strPtr("Loft moderno em Leblon com vista para o mar"),
	},
	{
		Title: "Cozy Studio Lapa", Address: strPtr("Rua do Lavradio, 45"), Neighborhood: strPtr("Lapa"),
		City: "Rio de Janeiro", State: strPtr("RJ"), Price: 1800, Type: strPtr("Studio"),
		CondoFee: 0, IPTU: 80, AcceptsPets: false, IsFurnished: true, GuaranteeType: "Fiador",
		AvailabilityDate: strPtr("2026-01-15"), Description: strPtr("Studio charmoso no coração da Lapa"),
	},
	{
		Title: "Beach House Barra", Address: strPtr("Av. Lucio Costa, 3500"), Neighborhood: strPtr("Barra da Tijuca"),
		City: "Rio de Janeiro", State: strPtr("RJ"), Price: 12000, Type: strPtr("House"),
		CondoFee: 1200, IPTU: 400, AcceptsPets: true, IsFurnished: true, GuaranteeType: "Depósito Caução",
		AvailabilityDate: strPtr("2026-03-01"), Description: strPtr("Casa de praia luxuosa com piscina"),
	},
	{
		Title: "Paulista Avenue Flat", Address: strPtr("Av. Paulista, 1578"), Neighborhood: strPtr("Bela Vista"),
		City: "São Paulo", State: strPtr("SP"), Price: 3500, Type: strPtr("Kitnet"),
		CondoFee: 350, IPTU: 150, AcceptsPets: false, IsFurnished: false, GuaranteeType: "Fiador",
		AvailabilityDate: strPtr("2026-01-20"), Description: strPtr("Kitnet moderna na Paulista"),
	},
}

// Seed insere os dados de demonstração uma única vez.
// Retorna true quando os dados foram inseridos nesta chamada.
func Seed(ctx context.Context, db *gorm.DB, hasher ports.PasswordHasher, log ports.Logger) (bool, error) {
	var existing UserModel
	err := db.WithContext(ctx).Where("email = ?", DemoEmail).First(&existing).Error
	if err == nil {
		log.Debug("seed data already present", "email", DemoEmail)
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to check seed user: %w", err)
	}

	hash, err := hasher.Hash(demoPassword)
	if err != nil {
		return false, fmt.Errorf("failed to hash seed password: %w", err)
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owner := UserModel{
			Name:         "Justino Admin",
			Email:        DemoEmail,
			PasswordHash: hash,
			Points:       150,
			Stars:        4.8,
			UserType:     string(entities.UserTypeOwner),
			Verified:     true,
		}
		if err := tx.Create(&owner).Error; err != nil {
			return fmt.Errorf("failed to create seed user: %w", err)
		}

		emptyPhotos, _ := json.Marshal([]string{})
		var firstPropertyID int64
		for i := range demoProperties {
			property := demoProperties[i]
			property.OwnerEmail = DemoEmail
			property.Country = entities.DefaultCountry
			property.Status = string(entities.PropertyStatusAvailable)
			property.Photos = emptyPhotos

			if err := tx.Create(&property).Error; err != nil {
				return fmt.Errorf("failed to create seed property %q: %w", property.Title, err)
			}
			if i == 0 {
				firstPropertyID = property.ID
			}
		}

		lease := LeaseModel{UserEmail: DemoEmail, PropertyID: firstPropertyID, Status: "Active"}
		if err := tx.Create(&lease).Error; err != nil {
			return fmt.Errorf("failed to create seed lease: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	log.Info("database seeded", "email", DemoEmail, "properties", len(demoProperties))
	return true, nil
}

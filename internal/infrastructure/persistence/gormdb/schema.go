package gormdb

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/rafabene/inhouse-backend/internal/domain/ports"
)

// additiveColumn é uma coluna que bancos antigos podem não ter
type additiveColumn struct {
	model interface{}
	field string
}

// additiveColumns lista as colunas adicionadas depois da primeira versão do schema
var additiveColumns = []additiveColumn{
	{&UserModel{}, "UserType"},
	{&UserModel{}, "Phone"},
	{&UserModel{}, "Verified"},
	{&PostModel{}, "PostType"},
	{&PostModel{}, "PropertyID"},
	{&PropertyModel{}, "CondoFee"},
	{&PropertyModel{}, "IPTU"},
	{&PropertyModel{}, "AcceptsPets"},
	{&PropertyModel{}, "IsFurnished"},
	{&PropertyModel{}, "GuaranteeType"},
	{&PropertyModel{}, "AvailabilityDate"},
	{&PropertyModel{}, "Photos"},
	{&PropertyModel{}, "VerifiedPhotos"},
	{&PropertyModel{}, "Description"},
}

// Migrate declara todas as tabelas e aplica as migrações aditivas.
// Pode ser chamado a cada inicialização.
func Migrate(db *gorm.DB, log ports.Logger) error {
	if err := db.AutoMigrate(allModels()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	if err := ensureColumns(db, log, additiveColumns); err != nil {
		return err
	}

	log.Info("database schema ready")
	return nil
}

// ensureColumns adiciona apenas as colunas ausentes, inspecionando a tabela antes de alterar
func ensureColumns(db *gorm.DB, log ports.Logger, columns []additiveColumn) error {
	migrator := db.Migrator()

	for _, col := range columns {
		if !migrator.HasTable(col.model) || migrator.HasColumn(col.model, col.field) {
			continue
		}

		log.Info("running migration: adding column", "column", col.field)
		if err := migrator.AddColumn(col.model, col.field); err != nil {
			return fmt.Errorf("failed to add column %s: %w", col.field, err)
		}
	}

	return nil
}

package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("DB_PATH", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("esperava sucesso, obteve erro: %v", err)
	}

	if cfg.Database.Driver != DriverSQLite {
		t.Errorf("esperava driver sqlite, obteve '%s'", cfg.Database.Driver)
	}
	if cfg.Database.Path != developmentDBPath {
		t.Errorf("esperava caminho '%s', obteve '%s'", developmentDBPath, cfg.Database.Path)
	}
	if cfg.Server.Port != "3001" {
		t.Errorf("esperava porta 3001, obteve '%s'", cfg.Server.Port)
	}
	if cfg.JWT.AccessExpiry.Hours() != 24 {
		t.Errorf("esperava expiração de 24h, obteve %s", cfg.JWT.AccessExpiry)
	}
}

func TestLoad_ProductionPath(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("DB_PATH", "")
	t.Setenv("JWT_SECRET", "prod-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("esperava sucesso, obteve erro: %v", err)
	}

	if cfg.Database.Path != productionDBPath {
		t.Errorf("esperava caminho '%s', obteve '%s'", productionDBPath, cfg.Database.Path)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Run("driver desconhecido", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "mysql")
		if _, err := Load(); err == nil {
			t.Error("esperava erro para driver desconhecido")
		}
	})

	t.Run("segredo padrão em produção", func(t *testing.T) {
		t.Setenv("ENV", "production")
		t.Setenv("JWT_SECRET", "")
		if _, err := Load(); err == nil {
			t.Error("esperava erro sem JWT_SECRET em produção")
		}
	})

	t.Run("expiração inválida", func(t *testing.T) {
		t.Setenv("JWT_ACCESS_EXPIRY", "amanhã")
		if _, err := Load(); err == nil {
			t.Error("esperava erro para JWT_ACCESS_EXPIRY inválido")
		}
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "inhouse", SSLMode: "disable"}
	expected := "host=db port=5432 user=u password=p dbname=inhouse sslmode=disable"
	if cfg.DSN() != expected {
		t.Errorf("esperava '%s', obteve '%s'", expected, cfg.DSN())
	}
}

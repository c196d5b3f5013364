package i18n

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func loadLocales(t *testing.T) *Service {
	t.Helper()

	service, err := NewService("locales", "en")
	if err != nil {
		t.Fatalf("falha ao carregar locales: %v", err)
	}
	return service
}

func TestNewService(t *testing.T) {
	t.Run("carrega os três idiomas", func(t *testing.T) {
		service := loadLocales(t)

		langs := service.GetSupportedLanguages()
		expected := []string{"en", "es", "pt-BR"}
		if len(langs) != len(expected) {
			t.Fatalf("esperava %v, obteve %v", expected, langs)
		}
		for i := range expected {
			if langs[i] != expected[i] {
				t.Errorf("esperava %v, obteve %v", expected, langs)
			}
		}
	})

	t.Run("erro quando diretório não existe", func(t *testing.T) {
		if _, err := NewService("/diretorio/inexistente", "en"); err == nil {
			t.Error("esperava erro, obteve sucesso")
		}
	})

	t.Run("erro quando idioma padrão não existe", func(t *testing.T) {
		if _, err := NewService("locales", "fr"); err == nil {
			t.Error("esperava erro para idioma padrão inexistente")
		}
	})

	t.Run("erro para template inválido", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "en.json"), []byte(`{"x": "{{.Field"}`), 0644); err != nil { //nolint:gosec
			t.Fatalf("falha ao criar en.json: %v", err)
		}
		if _, err := NewService(dir, "en"); err == nil {
			t.Error("esperava erro para template inválido")
		}
	})
}

func TestLocales_SameKeys(t *testing.T) {
	service := loadLocales(t)
	reference := service.catalogs["en"].messages

	for _, lang := range service.GetSupportedLanguages() {
		messages := service.catalogs[lang].messages
		if len(messages) != len(reference) {
			t.Errorf("%s tem %d chaves, en tem %d", lang, len(messages), len(reference))
		}
		for key := range reference {
			if _, ok := messages[key]; !ok {
				t.Errorf("%s não traduz '%s'", lang, key)
			}
		}
	}
}

func TestService_T(t *testing.T) {
	service := loadLocales(t)

	tests := []struct {
		name     string
		lang     string
		key      string
		params   map[string]interface{}
		expected string
	}{
		{"mensagem de erro em inglês", "en", "error.email_already_exists", nil, "Email already exists"},
		{"mensagem de erro em português", "pt-BR", "error.invalid_credentials", nil, "Credenciais inválidas"},
		{"interpolação de recurso", "en", "error.not_found.detail", map[string]interface{}{"Resource": "Post"}, "Post not found"},
		{"interpolação em espanhol", "es", "validation.field.required", map[string]interface{}{"Field": "email"}, "email es obligatorio"},
		{"idioma desconhecido cai para o padrão", "fr", "error.already_favorited", nil, "Already favorited"},
		{"chave inexistente retorna a chave", "en", "chave.inexistente", nil, "chave.inexistente"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var result string
			if tt.params != nil {
				result = service.T(tt.lang, tt.key, tt.params)
			} else {
				result = service.T(tt.lang, tt.key)
			}
			if result != tt.expected {
				t.Errorf("esperava '%s', obteve '%s'", tt.expected, result)
			}
		})
	}
}

func TestService_Match(t *testing.T) {
	service := loadLocales(t)

	tests := []struct {
		tag      string
		expected string
	}{
		{"pt-BR", "pt-BR"},
		{"es-AR", "es"},
		{"pt", "pt-BR"},
		{" en ", "en"},
		{"fr", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			if result := service.Match(tt.tag); result != tt.expected {
				t.Errorf("para '%s', esperava '%s', obteve '%s'", tt.tag, tt.expected, result)
			}
		})
	}
}

func TestService_IsLanguageSupported(t *testing.T) {
	service := loadLocales(t)

	tests := []struct {
		lang     string
		expected bool
	}{
		{"en", true},
		{"pt-BR", true},
		{"es", true},
		{"fr", false},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			if service.IsLanguageSupported(tt.lang) != tt.expected {
				t.Errorf("para idioma '%s', esperava %v", tt.lang, tt.expected)
			}
		})
	}
}

func TestService_ConcurrentReads(t *testing.T) {
	service := loadLocales(t)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = service.T("en", "error.not_found.detail", map[string]interface{}{"Resource": "Chat"})
		}()
		go func() {
			defer wg.Done()
			_ = service.Match("pt")
		}()
	}
	wg.Wait()
}

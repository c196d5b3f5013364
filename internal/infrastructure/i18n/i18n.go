package i18n

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
)

// catalog guarda as mensagens de um idioma; as que têm parâmetros ficam pré-compiladas
type catalog struct {
	messages  map[string]string
	templates map[string]*template.Template
}

// Service traduz chaves de mensagem (erros de domínio, validação, títulos RFC 7807).
// Os catálogos são carregados uma vez e só lidos depois, então não há lock.
type Service struct {
	catalogs        map[string]*catalog
	defaultLanguage string
}

// NewService carrega todos os arquivos <idioma>.json de localesDir.
// defaultLang é usado quando uma chave não existe no idioma pedido.
func NewService(localesDir, defaultLang string) (*Service, error) {
	files, err := filepath.Glob(filepath.Join(localesDir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to find locale files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no locale files found in %s", localesDir)
	}

	s := &Service{
		catalogs:        make(map[string]*catalog, len(files)),
		defaultLanguage: defaultLang,
	}

	for _, file := range files {
		lang := strings.TrimSuffix(filepath.Base(file), ".json")

		cat, err := loadCatalog(file)
		if err != nil {
			return nil, err
		}
		s.catalogs[lang] = cat
	}

	if _, ok := s.catalogs[defaultLang]; !ok {
		return nil, fmt.Errorf("default language %s not found in locale files", defaultLang)
	}

	return s, nil
}

func loadCatalog(file string) (*catalog, error) {
	data, err := os.ReadFile(file) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("failed to read locale file %s: %w", file, err)
	}

	var messages map[string]string
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("failed to parse locale file %s: %w", file, err)
	}

	cat := &catalog{messages: messages, templates: make(map[string]*template.Template)}
	for key, message := range messages {
		if !strings.Contains(message, "{{") {
			continue
		}
		tmpl, err := template.New(key).Option("missingkey=zero").Parse(message)
		if err != nil {
			return nil, fmt.Errorf("invalid template for %s in %s: %w", key, file, err)
		}
		cat.templates[key] = tmpl
	}

	return cat, nil
}

// T traduz key para lang com interpolação opcional ({{.Resource}}, {{.Field}}).
// Cai para o idioma padrão e, sem tradução, devolve a própria chave.
func (s *Service) T(lang, key string, params ...map[string]interface{}) string {
	cat := s.catalogFor(lang, key)
	if cat == nil {
		return key
	}

	tmpl, ok := cat.templates[key]
	if !ok {
		return cat.messages[key]
	}

	var data map[string]interface{}
	if len(params) > 0 {
		data = params[0]
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return cat.messages[key]
	}
	return buf.String()
}

// Has indica se a chave existe no idioma padrão
func (s *Service) Has(key string) bool {
	_, ok := s.catalogs[s.defaultLanguage].messages[key]
	return ok
}

func (s *Service) catalogFor(lang, key string) *catalog {
	if cat, ok := s.catalogs[lang]; ok {
		if _, ok := cat.messages[key]; ok {
			return cat
		}
	}
	if cat := s.catalogs[s.defaultLanguage]; cat != nil {
		if _, ok := cat.messages[key]; ok {
			return cat
		}
	}
	return nil
}

// Match devolve o idioma suportado que melhor atende tag, ou "" se nenhum atender.
// Aceita a tag exata, o idioma base (es-AR -> es) e uma variante regional (pt -> pt-BR).
func (s *Service) Match(tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return ""
	}

	if _, ok := s.catalogs[tag]; ok {
		return tag
	}

	base := tag
	if idx := strings.Index(tag, "-"); idx != -1 {
		base = tag[:idx]
		if _, ok := s.catalogs[base]; ok {
			return base
		}
	}

	for _, lang := range s.GetSupportedLanguages() {
		if strings.HasPrefix(lang, base+"-") {
			return lang
		}
	}
	return ""
}

// GetDefaultLanguage retorna o idioma padrão configurado
func (s *Service) GetDefaultLanguage() string {
	return s.defaultLanguage
}

// GetSupportedLanguages retorna os idiomas carregados em ordem alfabética
func (s *Service) GetSupportedLanguages() []string {
	langs := make([]string, 0, len(s.catalogs))
	for lang := range s.catalogs {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// IsLanguageSupported verifica se um idioma é suportado
func (s *Service) IsLanguageSupported(lang string) bool {
	_, ok := s.catalogs[lang]
	return ok
}

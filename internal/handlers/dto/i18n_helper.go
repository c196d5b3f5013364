package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/inhouse-backend/internal/handlers/middleware"
	"github.com/rafabene/inhouse-backend/internal/infrastructure/i18n"
)

// T traduz uma chave no idioma da requisição.
// Uso: dto.T(c, "error.not_found.detail", map[string]interface{}{"Resource": "Post"})
func T(c *gin.Context, key string, params ...map[string]interface{}) string {
	// Buscar serviço i18n do contexto
	service, ok := c.Value(middleware.I18nServiceContextKey).(*i18n.Service)
	if !ok {
		// Sem o middleware de i18n a chave é devolvida como está
		return key
	}

	// Buscar idioma do contexto
	lang := GetLanguage(c)

	// Traduzir
	return service.T(lang, key, params...)
}

// GetLanguage retorna o idioma configurado no contexto da requisição
func GetLanguage(c *gin.Context) string {
	if lang := c.GetString(middleware.LanguageContextKey); lang != "" {
		return lang
	}
	return "en" // Fallback
}

package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções ficam em internal/infrastructure/i18n/locales/*.json
var (
	ErrUserNotFound         = errors.New("error.user_not_found")
	ErrEmailAlreadyExists   = errors.New("error.email_already_exists")
	ErrInvalidCredentials   = errors.New("error.invalid_credentials")
	ErrUnauthorized         = errors.New("error.unauthorized")
	ErrPostNotFound         = errors.New("error.post_not_found")
	ErrPropertyNotFound     = errors.New("error.property_not_found")
	ErrAlreadyFavorited     = errors.New("error.already_favorited")
	ErrLeadNotFound         = errors.New("error.lead_not_found")
	ErrLeadAlreadyExists    = errors.New("error.lead_already_exists")
	ErrChatNotFound         = errors.New("error.chat_not_found")
	ErrNotificationNotFound = errors.New("error.notification_not_found")
)

// Domain errors
var (
	ErrInvalidEmail    = errors.New("error.invalid_email")
	ErrInvalidUserType = errors.New("error.invalid_user_type")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base vem de configuração (API_BASE_URL)
//
//nolint:misspell
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
)

// NotFoundResource retorna o nome do recurso ausente para erros de "não encontrado"
func NotFoundResource(err error) (string, bool) {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return "User", true
	case errors.Is(err, ErrPostNotFound):
		return "Post", true
	case errors.Is(err, ErrPropertyNotFound):
		return "Property", true
	case errors.Is(err, ErrLeadNotFound):
		return "Lead", true
	case errors.Is(err, ErrChatNotFound):
		return "Chat", true
	case errors.Is(err, ErrNotificationNotFound):
		return "Notification", true
	}
	return "", false
}

// IsConflict indica violações de unicidade, respondidas como 400
func IsConflict(err error) bool {
	return errors.Is(err, ErrEmailAlreadyExists) ||
		errors.Is(err, ErrAlreadyFavorited) ||
		errors.Is(err, ErrLeadAlreadyExists)
}

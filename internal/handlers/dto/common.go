package dto

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	"github.com/rafabene/inhouse-backend/internal/domain/errors"
	"github.com/rafabene/inhouse-backend/internal/handlers/middleware"
)

const defaultBaseURL = "http://localhost:3001"

// ErrorResponse segue RFC 7807 (Problem Details for HTTP APIs).
// Error repete a mensagem traduzida no campo que o frontend lê.
type ErrorResponse struct {
	*problems.Problem
	Error  string            `json:"error"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
}

// SuccessResponse é o corpo das operações sem retorno
type SuccessResponse struct {
	Success bool `json:"success"`
}

// NewErrorResponseI18n cria uma resposta de erro usando i18n
func NewErrorResponseI18n(c *gin.Context, problemType, titleKey, detailKey string, status int, params ...map[string]interface{}) ErrorResponse {
	baseURL := c.GetString(middleware.BaseURLContextKey)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	detail := T(c, detailKey, params...)

	return ErrorResponse{
		Problem: &problems.Problem{
			Type:     baseURL + problemType,
			Title:    T(c, titleKey),
			Status:   status,
			Detail:   detail,
			Instance: c.Request.URL.Path,
		},
		Error: detail,
	}
}

// AbortWithProblem escreve a resposta com media type application/problem+json
func AbortWithProblem(c *gin.Context, response ErrorResponse) {
	c.Header("Content-Type", problems.ProblemMediaType)
	c.AbortWithStatusJSON(response.Status, response)
}

// ValidationErrorResponseI18n cria uma resposta 400 para campos ausentes ou inválidos
func ValidationErrorResponseI18n(c *gin.Context, detailKey string, validationErrors []ValidationError) ErrorResponse {
	response := NewErrorResponseI18n(
		c,
		errors.ProblemTypeValidation,
		"error.validation.title",
		detailKey,
		http.StatusBadRequest,
	)
	response.Errors = validationErrors
	return response
}

// BadRequestErrorResponseI18n cria uma resposta 400 para parâmetros malformados
func BadRequestErrorResponseI18n(c *gin.Context, detailKey string) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		errors.ProblemTypeBadRequest,
		"error.bad_request.title",
		detailKey,
		http.StatusBadRequest,
	)
}

// NotFoundErrorResponseI18n cria uma resposta de erro 404
func NotFoundErrorResponseI18n(c *gin.Context, resource string) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		errors.ProblemTypeNotFound,
		"error.not_found.title",
		"error.not_found.detail",
		http.StatusNotFound,
		map[string]interface{}{"Resource": resource},
	)
}

// ConflictErrorResponseI18n cria a resposta de violação de unicidade.
// O contrato da API responde 400, não 409.
func ConflictErrorResponseI18n(c *gin.Context, detailKey string) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		errors.ProblemTypeConflict,
		"error.conflict.title",
		detailKey,
		http.StatusBadRequest,
	)
}

// UnauthorizedErrorResponseI18n cria uma resposta de erro 401
func UnauthorizedErrorResponseI18n(c *gin.Context, detailKey string) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		errors.ProblemTypeUnauthorized,
		"error.unauthorized.title",
		detailKey,
		http.StatusUnauthorized,
	)
}

// InternalErrorResponseI18n cria uma resposta de erro 500 sem detalhes internos
func InternalErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		errors.ProblemTypeInternal,
		"error.internal.title",
		"error.internal.detail",
		http.StatusInternalServerError,
	)
}

package http

import (
	errs "errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/inhouse-backend/internal/domain/errors"
	"github.com/rafabene/inhouse-backend/internal/domain/ports"
	"github.com/rafabene/inhouse-backend/internal/handlers/dto"
	"github.com/rafabene/inhouse-backend/internal/handlers/middleware"
)

// respondError traduz erros de serviço para respostas RFC 7807.
// Erros não mapeados viram 500 genérico; o texto original só vai para o log.
func respondError(c *gin.Context, logger ports.Logger, err error) {
	if resource, ok := errors.NotFoundResource(err); ok {
		dto.AbortWithProblem(c, dto.NotFoundErrorResponseI18n(c, resource))
		return
	}

	if errors.IsConflict(err) {
		dto.AbortWithProblem(c, dto.ConflictErrorResponseI18n(c, err.Error()))
		return
	}

	switch {
	case errs.Is(err, errors.ErrInvalidCredentials), errs.Is(err, errors.ErrUnauthorized):
		dto.AbortWithProblem(c, dto.UnauthorizedErrorResponseI18n(c, err.Error()))
	case errs.Is(err, errors.ErrInvalidEmail), errs.Is(err, errors.ErrInvalidUserType):
		dto.AbortWithProblem(c, dto.ValidationErrorResponseI18n(c, err.Error(), nil))
	default:
		logger.Error("request failed",
			"path", c.FullPath(),
			"request_id", c.GetString(middleware.RequestIDContextKey),
			"error", err,
		)
		dto.AbortWithProblem(c, dto.InternalErrorResponseI18n(c))
	}
}

// bindJSON decodifica e valida o corpo; em falha responde 400 com detailKey
func bindJSON(c *gin.Context, req interface{}, detailKey string) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		dto.AbortWithProblem(c, dto.ValidationErrorResponseI18n(c, detailKey, dto.TranslateValidationErrors(c, err)))
		return false
	}
	return true
}

// pathID lê um parâmetro de rota numérico
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		dto.AbortWithProblem(c, dto.BadRequestErrorResponseI18n(c, "validation.invalid_id"))
		return 0, false
	}
	return id, true
}

// requiredQuery lê um parâmetro de query obrigatório
func requiredQuery(c *gin.Context, name, detailKey string) (string, bool) {
	value := c.Query(name)
	if value == "" {
		dto.AbortWithProblem(c, dto.ValidationErrorResponseI18n(c, detailKey, []dto.ValidationError{{
			Field:   name,
			Message: dto.T(c, "validation.field.required", map[string]interface{}{"Field": name}),
			Tag:     "required",
		}}))
		return "", false
	}
	return value, true
}

func unauthorized(c *gin.Context) {
	dto.AbortWithProblem(c, dto.UnauthorizedErrorResponseI18n(c, "error.unauthorized.detail"))
}

package dto

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidation faz o validator do Gin reportar os campos pelo nome JSON
func RegisterValidation() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return field.Name
			}
			return name
		})
	})
}

// TranslateValidationErrors converte erros do validator em erros de campo traduzidos.
// Erros de decodificação (JSON malformado, tipo errado) viram uma lista vazia.
func TranslateValidationErrors(c *gin.Context, err error) []ValidationError {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	result := make([]ValidationError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		params := map[string]interface{}{"Field": fe.Field(), "Param": fe.Param()}

		key := "validation.field." + fe.Tag()
		message := T(c, key, params)
		if message == key {
			message = T(c, "validation.field.invalid", params)
		}

		result = append(result, ValidationError{
			Field:   fe.Field(),
			Message: message,
			Tag:     fe.Tag(),
		})
	}
	return result
}

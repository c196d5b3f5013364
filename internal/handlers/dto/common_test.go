package dto

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	"github.com/rafabene/inhouse-backend/internal/handlers/middleware"
)

func TestAbortWithProblem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name         string
		baseURL      string
		build        func(c *gin.Context) ErrorResponse
		expectedCode int
		expectedType string
	}{
		{
			name:         "não encontrado",
			baseURL:      "https://api.inhouse.test",
			build:        func(c *gin.Context) ErrorResponse { return NotFoundErrorResponseI18n(c, "Property") },
			expectedCode: http.StatusNotFound,
			expectedType: "https://api.inhouse.test/problems/not-found",
		},
		{
			name:         "conflito responde 400",
			build:        func(c *gin.Context) ErrorResponse { return ConflictErrorResponseI18n(c, "error.already_favorited") },
			expectedCode: http.StatusBadRequest,
			expectedType: defaultBaseURL + "/problems/conflict",
		},
		{
			name:         "erro interno",
			build:        InternalErrorResponseI18n,
			expectedCode: http.StatusInternalServerError,
			expectedType: defaultBaseURL + "/problems/internal-error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/properties/7", nil)
			if tt.baseURL != "" {
				c.Set(middleware.BaseURLContextKey, tt.baseURL)
			}

			AbortWithProblem(c, tt.build(c))

			if w.Code != tt.expectedCode {
				t.Errorf("esperava status %d, obteve %d", tt.expectedCode, w.Code)
			}
			if ct := w.Header().Get("Content-Type"); ct != problems.ProblemMediaType {
				t.Errorf("esperava Content-Type '%s', obteve '%s'", problems.ProblemMediaType, ct)
			}

			var body map[string]interface{}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("corpo inválido: %v", err)
			}
			if body["type"] != tt.expectedType {
				t.Errorf("esperava type '%s', obteve '%v'", tt.expectedType, body["type"])
			}
			if body["status"] != float64(tt.expectedCode) {
				t.Errorf("esperava status %d no corpo, obteve %v", tt.expectedCode, body["status"])
			}
			if body["instance"] != "/api/properties/7" {
				t.Errorf("esperava instance da rota, obteve %v", body["instance"])
			}
			// Sem o middleware de i18n a chave volta como texto
			if body["error"] != body["detail"] || body["error"] == "" {
				t.Errorf("esperava error igual a detail, obteve %v / %v", body["error"], body["detail"])
			}
		})
	}
}
